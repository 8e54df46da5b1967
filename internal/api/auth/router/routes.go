// Package router đăng ký các route thuộc domain auth: đăng nhập, profile, nhân viên.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/Ujju04/smartjharkhand/internal/api/auth/handler"
	authmodels "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	"github.com/Ujju04/smartjharkhand/internal/api/middleware"
	apirouter "github.com/Ujju04/smartjharkhand/internal/api/router"
)

// Register đăng ký tất cả route auth lên /api
func Register(api fiber.Router, r *apirouter.Router) error {
	authHandler, err := authhdl.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("failed to create auth handler: %w", err)
	}

	// Login công khai, không qua middleware
	api.Post("/auth/login", authHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(api, "/auth", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, authHandler.HandleGetMe)
	apirouter.RegisterRouteWithMiddleware(api, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, authHandler.HandleLogout)

	// Quản lý nhân viên chỉ dành cho Main Admin
	mainAdminMiddleware := middleware.AuthMiddleware(authmodels.RoleMainAdmin)
	apirouter.RegisterRouteWithMiddleware(api, "/admin", "GET", "/workers", []fiber.Handler{mainAdminMiddleware}, authHandler.HandleListWorkers)
	apirouter.RegisterRouteWithMiddleware(api, "/admin", "POST", "/workers", []fiber.Handler{mainAdminMiddleware}, authHandler.HandleCreateWorker)

	return nil
}
