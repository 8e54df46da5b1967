// Package router đăng ký các route danh bạ người dân, chỉ dành cho Main Admin.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	citizenhdl "github.com/Ujju04/smartjharkhand/internal/api/citizen/handler"
	"github.com/Ujju04/smartjharkhand/internal/api/middleware"
	apirouter "github.com/Ujju04/smartjharkhand/internal/api/router"
)

// Register đăng ký tất cả route danh bạ người dân lên /api
func Register(api fiber.Router, r *apirouter.Router) error {
	citizenHandler, err := citizenhdl.NewCitizenHandler()
	if err != nil {
		return fmt.Errorf("failed to create citizen handler: %w", err)
	}

	mainAdminMiddleware := middleware.AuthMiddleware(authmodels.RoleMainAdmin)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "GET", "/", []fiber.Handler{mainAdminMiddleware}, citizenHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "GET", "/:id", []fiber.Handler{mainAdminMiddleware}, citizenHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "POST", "/", []fiber.Handler{mainAdminMiddleware}, citizenHandler.HandleCreate)

	return nil
}
