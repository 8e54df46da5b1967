// Package models - model tài khoản quản trị (AdminUser) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò quản trị của hệ thống
const (
	RoleMainAdmin  = "Main Admin"  // Quản trị viên chính, toàn quyền
	RoleLowerAdmin = "Lower Admin" // Nhân viên xử lý, chỉ thấy phản ánh được giao
)

// AdminUser định nghĩa mô hình tài khoản quản trị.
// WorkerID là mã tuần tự sinh từ counter (worker005, ...), dùng làm khóa nghiệp vụ
// khi gán phản ánh (assignedTo trỏ về WorkerID, không phải ObjectID).
type AdminUser struct {
	ID                  primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	WorkerID            string             `json:"id" bson:"id" index:"unique"`
	Username            string             `json:"username" bson:"username" index:"unique"`
	Password            string             `json:"-" bson:"password"`
	Name                string             `json:"name" bson:"name"`
	Role                string             `json:"role" bson:"role"`
	Department          string             `json:"department,omitempty" bson:"department,omitempty"`
	Email               string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone               string             `json:"phone,omitempty" bson:"phone,omitempty"`
	AssignedComplaints  int64              `json:"assignedComplaints" bson:"assignedComplaints"`
	CompletedComplaints int64              `json:"completedComplaints" bson:"completedComplaints"`
	IsActive            bool               `json:"isActive" bson:"isActive"`
	CreatedAt           int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt           int64              `json:"updatedAt" bson:"updatedAt"`
}
