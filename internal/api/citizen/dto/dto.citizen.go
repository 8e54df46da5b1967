// Package citizendto - các DTO cho danh bạ người dân.
package citizendto

import (
	models "github.com/Ujju04/smartjharkhand/internal/api/citizen/models"
)

// ListQuery là điều kiện tìm kiếm người dân theo tên, email hoặc mã
type ListQuery struct {
	Search string `json:"search" validate:"omitempty,max=200"`
}

// ListResult là kết quả danh sách người dân có phân trang
type ListResult struct {
	Users []models.Citizen `json:"users"`
	Total int64            `json:"total"`
	Page  int64            `json:"page"`
	Pages int64            `json:"pages"`
}

// CreateInput là dữ liệu đăng ký người dân mới vào danh bạ
type CreateInput struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Address string `json:"address" validate:"omitempty,max=500"`
}
