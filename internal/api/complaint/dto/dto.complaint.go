// Package complaintdto - các DTO cho domain complaint.
package complaintdto

import (
	models "github.com/Ujju04/smartjharkhand/internal/api/complaint/models"
)

// ListQuery là các điều kiện lọc danh sách phản ánh.
// Các filter AND với nhau; Search là tìm kiếm OR trên title/id/userEmail/description.
type ListQuery struct {
	Status     string `json:"status" validate:"omitempty,complaint_status"`
	Priority   string `json:"priority" validate:"omitempty,complaint_priority"`
	Department string `json:"department" validate:"omitempty"`
	Search     string `json:"search" validate:"omitempty,max=200"`
}

// ListResult là kết quả danh sách phản ánh có phân trang
type ListResult struct {
	Complaints []models.Complaint `json:"complaints"`
	Total      int64              `json:"total"`
	Page       int64              `json:"page"`
	Pages      int64              `json:"pages"`
}

// CreateInput là dữ liệu tạo phản ánh mới thay mặt người dân
type CreateInput struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1,max=5000"`
	Category    string `json:"category" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Priority    string `json:"priority" validate:"required,complaint_priority"`
	Location    string `json:"location" validate:"omitempty,max=500"`
	UserID      string `json:"userId" validate:"required"`
}

// AssignInput là dữ liệu giao phản ánh cho một nhân viên xử lý
type AssignInput struct {
	WorkerID   string `json:"workerId" validate:"required"`
	Department string `json:"department" validate:"required"`
}

// TransferInput là dữ liệu chuyển phản ánh sang phòng ban khác
type TransferInput struct {
	Department string `json:"department" validate:"required"`
}

// StatusUpdateInput là dữ liệu cập nhật tiến độ xử lý
type StatusUpdateInput struct {
	Status      string   `json:"status" validate:"required,complaint_status"`
	Remarks     string   `json:"remarks" validate:"omitempty,max=5000"`
	ProofImages []string `json:"proofImages" validate:"omitempty,dive,max=500"`
}
