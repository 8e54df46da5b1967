package complaintsvc

import (
	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
)

// ScopeFilter trả về điều kiện phạm vi dữ liệu theo vai trò.
// Main Admin thấy toàn bộ; Lower Admin chỉ thấy phản ánh được giao cho mình.
func ScopeFilter(role string, workerID string) bson.M {
	if role == authmodels.RoleMainAdmin {
		return bson.M{}
	}
	return bson.M{"assignedTo": workerID}
}

// MergeFilter gộp filter nghiệp vụ với filter phạm vi (AND).
// Filter phạm vi luôn thắng: một bản ghi ngoài phạm vi coi như không tồn tại.
func MergeFilter(base bson.M, scope bson.M) bson.M {
	merged := bson.M{}
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range scope {
		merged[k] = v
	}
	return merged
}
