package complaintsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	models "github.com/Ujju04/smartjharkhand/internal/api/complaint/models"
)

// TestDepartmentStatsPipeline kiểm tra pipeline nhóm theo phòng ban:
// một stage $group đếm từng trạng thái bằng $cond, sắp xếp theo tên phòng ban
func TestDepartmentStatsPipeline(t *testing.T) {
	pipeline := DepartmentStatsPipeline()

	assert.Len(t, pipeline, 2)
	group, ok := pipeline[0]["$group"].(bson.M)
	assert.True(t, ok, "Stage đầu tiên phải là $group")
	assert.Equal(t, "$department", group["_id"])
	for _, field := range []string{"total", "pending", "inProgress", "completed"} {
		assert.Contains(t, group, field)
	}
	assert.Equal(t, bson.M{"_id": 1}, pipeline[1]["$sort"])
}

// TestResolutionTimePipeline kiểm tra pipeline chỉ tính trên phản ánh Completed
func TestResolutionTimePipeline(t *testing.T) {
	pipeline := ResolutionTimePipeline()

	assert.Equal(t, bson.M{"status": models.StatusCompleted}, pipeline[0]["$match"])
	group := pipeline[1]["$group"].(bson.M)
	assert.Contains(t, group, "avgMillis")
}

// TestBuildDepartmentStats kiểm tra chuyển kết quả aggregate (kiểu số
// lẫn lộn int32/int64 tùy driver) thành thống kê phòng ban
func TestBuildDepartmentStats(t *testing.T) {
	rows := []bson.M{
		{"_id": "Public Works", "total": int32(3), "pending": int32(1), "inProgress": int32(1), "completed": int32(1)},
		{"_id": "Waste Management", "total": int64(2), "pending": int64(2), "inProgress": int64(0), "completed": int64(0)},
	}

	stats := BuildDepartmentStats(rows)

	assert.Equal(t, []models.DepartmentStats{
		{Department: "Public Works", Total: 3, Pending: 1, InProgress: 1, Completed: 1},
		{Department: "Waste Management", Total: 2, Pending: 2, InProgress: 0, Completed: 0},
	}, stats)

	assert.Empty(t, BuildDepartmentStats(nil), "Không có dữ liệu thì trả về slice rỗng, không phải nil panic")
}

// TestFormatResolutionDuration kiểm tra định dạng "N.N days" và "N/A"
func TestFormatResolutionDuration(t *testing.T) {
	assert.Equal(t, "N/A", FormatResolutionDuration(0, false),
		"Chưa có phản ánh hoàn thành thì hiển thị N/A")

	// 2.5 ngày tính theo mili giây
	assert.Equal(t, "2.5 days", FormatResolutionDuration(2.5*millisPerDay, true))
	assert.Equal(t, "0.0 days", FormatResolutionDuration(0, true))
}
