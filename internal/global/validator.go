package global

import (
	"github.com/go-playground/validator/v10"

	authmodels "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	complaintmodels "github.com/Ujju04/smartjharkhand/internal/api/complaint/models"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("complaint_status", validateComplaintStatus)
	_ = Validate.RegisterValidation("complaint_priority", validateComplaintPriority)
	_ = Validate.RegisterValidation("admin_role", validateAdminRole)
}

// validateComplaintStatus kiểm tra giá trị trạng thái phản ánh hợp lệ
func validateComplaintStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case complaintmodels.StatusPending, complaintmodels.StatusInProgress, complaintmodels.StatusCompleted:
		return true
	}
	return false
}

// validateComplaintPriority kiểm tra giá trị mức độ ưu tiên hợp lệ
func validateComplaintPriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case complaintmodels.PriorityCritical, complaintmodels.PriorityHigh,
		complaintmodels.PriorityMedium, complaintmodels.PriorityLow:
		return true
	}
	return false
}

// validateAdminRole kiểm tra giá trị vai trò quản trị hợp lệ
func validateAdminRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case authmodels.RoleMainAdmin, authmodels.RoleLowerAdmin:
		return true
	}
	return false
}
