// Package authhdl xử lý các request xác thực và quản lý tài khoản quản trị.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "github.com/Ujju04/smartjharkhand/internal/api/auth/dto"
	models "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	authsvc "github.com/Ujju04/smartjharkhand/internal/api/auth/service"
	basehdl "github.com/Ujju04/smartjharkhand/internal/api/base/handler"
	"github.com/Ujju04/smartjharkhand/internal/api/middleware"
	"github.com/Ujju04/smartjharkhand/internal/common"
)

// AuthHandler xử lý đăng nhập, profile và quản lý nhân viên
type AuthHandler struct {
	basehdl.BaseHandler
	adminService *authsvc.AdminService
}

// NewAuthHandler tạo instance mới của AuthHandler
func NewAuthHandler() (*AuthHandler, error) {
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	return &AuthHandler{
		adminService: adminService,
	}, nil
}

// workerFromLocals lấy worker đã được AuthMiddleware resolve
func workerFromLocals(c fiber.Ctx) (*models.AdminUser, error) {
	worker, ok := c.Locals(middleware.LocalWorker).(*models.AdminUser)
	if !ok || worker == nil {
		return nil, common.NewError(common.ErrCodeAuth, common.MsgUnauthorized, common.StatusUnauthorized, nil)
	}
	return worker, nil
}

// sanitize xóa các trường nhạy cảm trước khi trả về client
func sanitize(worker models.AdminUser) models.AdminUser {
	worker.Password = ""
	return worker
}

// HandleLogin xử lý đăng nhập với bộ (username, password, role)
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.adminService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if worker, ok := result.User.(*models.AdminUser); ok {
			result.User = sanitize(*worker)
		}
		h.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleGetMe trả về thông tin worker đang đăng nhập
func (h *AuthHandler) HandleGetMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		worker, err := workerFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, sanitize(*worker), nil)
		return nil
	})
}

// HandleLogout xử lý đăng xuất.
// Access token là stateless nên server chỉ xác nhận; client tự hủy token.
func (h *AuthHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if _, err := workerFromLocals(c); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": "Đăng xuất thành công"}, nil)
		return nil
	})
}

// HandleListWorkers trả về danh sách nhân viên xử lý (Main Admin)
func (h *AuthHandler) HandleListWorkers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		workers, err := h.adminService.ListWorkers(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		sanitized := make([]models.AdminUser, 0, len(workers))
		for _, w := range workers {
			sanitized = append(sanitized, sanitize(w))
		}
		h.HandleResponse(c, sanitized, nil)
		return nil
	})
}

// HandleCreateWorker tạo tài khoản nhân viên xử lý mới (Main Admin)
func (h *AuthHandler) HandleCreateWorker(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.WorkerCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.adminService.CreateWorker(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, sanitize(*created), nil)
		return nil
	})
}
