// Package authdto - các DTO cho domain auth.
package authdto

// LoginInput là dữ liệu đăng nhập của tài khoản quản trị.
// Role là một phần của bộ thông tin đăng nhập: sai role cũng là sai credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
	Role     string `json:"role" validate:"required,admin_role"`
}

// LoginResult trả về sau khi đăng nhập thành công
type LoginResult struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// WorkerCreateInput là dữ liệu tạo tài khoản nhân viên xử lý (Lower Admin)
type WorkerCreateInput struct {
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=6,max=100"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Department string `json:"department" validate:"required"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,max=20"`
}
