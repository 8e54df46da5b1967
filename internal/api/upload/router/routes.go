// Package router đăng ký route upload file minh chứng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/Ujju04/smartjharkhand/internal/api/middleware"
	apirouter "github.com/Ujju04/smartjharkhand/internal/api/router"
	uploadhdl "github.com/Ujju04/smartjharkhand/internal/api/upload/handler"
)

// Register đăng ký route upload lên /api, yêu cầu đăng nhập
func Register(api fiber.Router, r *apirouter.Router) error {
	uploadHandler, err := uploadhdl.NewUploadHandler()
	if err != nil {
		return fmt.Errorf("failed to create upload handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(api, "/upload", "POST", "/proof", []fiber.Handler{authOnlyMiddleware}, uploadHandler.HandleUpload)

	return nil
}
