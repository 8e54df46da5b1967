// Package router đăng ký các route thuộc domain complaint.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	complainthdl "github.com/Ujju04/smartjharkhand/internal/api/complaint/handler"
	"github.com/Ujju04/smartjharkhand/internal/api/middleware"
	apirouter "github.com/Ujju04/smartjharkhand/internal/api/router"
)

// Register đăng ký tất cả route complaint lên /api
func Register(api fiber.Router, r *apirouter.Router) error {
	complaintHandler, err := complainthdl.NewComplaintHandler()
	if err != nil {
		return fmt.Errorf("failed to create complaint handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware("")
	mainAdminMiddleware := middleware.AuthMiddleware(authmodels.RoleMainAdmin)

	// Danh sách, chi tiết và cập nhật tiến độ theo phạm vi vai trò
	apirouter.RegisterRouteWithMiddleware(api, "/complaints", "GET", "/", []fiber.Handler{authOnlyMiddleware}, complaintHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(api, "/complaints", "GET", "/:id", []fiber.Handler{authOnlyMiddleware}, complaintHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(api, "/complaints", "PUT", "/:id/status", []fiber.Handler{authOnlyMiddleware}, complaintHandler.HandleUpdateStatus)

	// Tạo, giao việc, chuyển phòng ban và thống kê chỉ dành cho Main Admin
	apirouter.RegisterRouteWithMiddleware(api, "/complaints", "POST", "/", []fiber.Handler{mainAdminMiddleware}, complaintHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(api, "/complaints", "PUT", "/:id/assign", []fiber.Handler{mainAdminMiddleware}, complaintHandler.HandleAssign)
	apirouter.RegisterRouteWithMiddleware(api, "/complaints", "PUT", "/:id/transfer", []fiber.Handler{mainAdminMiddleware}, complaintHandler.HandleTransfer)
	apirouter.RegisterRouteWithMiddleware(api, "/analytics", "GET", "/", []fiber.Handler{mainAdminMiddleware}, complaintHandler.HandleAnalytics)

	// Metadata cho form tạo phản ánh
	apirouter.RegisterRouteWithMiddleware(api, "/meta", "GET", "/departments", []fiber.Handler{authOnlyMiddleware}, complaintHandler.HandleListDepartments)
	apirouter.RegisterRouteWithMiddleware(api, "/meta", "GET", "/categories", []fiber.Handler{authOnlyMiddleware}, complaintHandler.HandleListCategories)

	return nil
}
