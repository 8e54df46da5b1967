// Package models - model phản ánh (Complaint) và các giá trị vocab của domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái xử lý của phản ánh. Giá trị lưu đúng định dạng hiển thị,
// "In Progress" có khoảng trắng.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Mức độ ưu tiên của phản ánh
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

// Departments là danh sách phòng ban tiếp nhận xử lý
var Departments = []string{
	"Public Works",
	"Water Supply",
	"Electricity",
	"Waste Management",
	"Healthcare",
	"Education",
	"Transport",
	"Police",
}

// Categories là danh sách loại phản ánh mà người dân có thể gửi
var Categories = []string{
	"Roads & Infrastructure",
	"Water Supply",
	"Electricity",
	"Sanitation & Waste",
	"Street Lighting",
	"Public Health",
	"Education",
	"Transportation",
	"Law & Order",
	"Other",
}

// IsValidDepartment kiểm tra phòng ban có trong danh sách hợp lệ
func IsValidDepartment(department string) bool {
	for _, d := range Departments {
		if d == department {
			return true
		}
	}
	return false
}

// Complaint định nghĩa mô hình phản ánh của người dân.
// ComplaintID là mã tuần tự sinh từ counter (CMP006, ...). AssignedTo lưu WorkerID
// của nhân viên xử lý, rỗng/null khi chưa được giao.
type Complaint struct {
	ID             primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ComplaintID    string             `json:"id" bson:"id" index:"unique"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description" bson:"description"`
	Category       string             `json:"category" bson:"category"`
	Department     string             `json:"department" bson:"department" index:"single"`
	Priority       string             `json:"priority" bson:"priority"`
	Status         string             `json:"status" bson:"status" index:"single"`
	Location       string             `json:"location,omitempty" bson:"location,omitempty"`
	UserID         string             `json:"userId" bson:"userId" index:"single"`
	UserName       string             `json:"userName" bson:"userName"`
	UserEmail      string             `json:"userEmail" bson:"userEmail"`
	AssignedTo     *string            `json:"assignedTo" bson:"assignedTo"`
	AssignedWorker *string            `json:"assignedWorker" bson:"assignedWorker"`
	Remarks        string             `json:"remarks,omitempty" bson:"remarks,omitempty"`
	ProofImages    []string           `json:"proofImages" bson:"proofImages"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt" index:"single"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// DepartmentStats là thống kê phản ánh theo phòng ban
type DepartmentStats struct {
	Department string `json:"department" bson:"_id"`
	Total      int64  `json:"total" bson:"total"`
	Pending    int64  `json:"pending" bson:"pending"`
	InProgress int64  `json:"inProgress" bson:"inProgress"`
	Completed  int64  `json:"completed" bson:"completed"`
}

// Analytics là kết quả tổng hợp cho dashboard của Main Admin
type Analytics struct {
	Total                 int64             `json:"total"`
	Pending               int64             `json:"pending"`
	InProgress            int64             `json:"inProgress"`
	Completed             int64             `json:"completed"`
	Critical              int64             `json:"critical"`
	DepartmentStats       []DepartmentStats `json:"departmentStats"`
	AverageResolutionTime string            `json:"averageResolutionTime"`
}
