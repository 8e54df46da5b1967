package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authsvc "github.com/Ujju04/smartjharkhand/internal/api/auth/service"
	"github.com/Ujju04/smartjharkhand/internal/common"
	"github.com/Ujju04/smartjharkhand/internal/global"
	"github.com/Ujju04/smartjharkhand/internal/logger"
)

// Keys lưu principal vào Fiber Locals sau khi xác thực
const (
	LocalWorker   = "worker"    // *models.AdminUser của worker đang đăng nhập
	LocalWorkerID = "worker_id" // WorkerID (chuỗi, ví dụ worker001)
	LocalRole     = "role"      // Vai trò của worker
)

// AuthManager quản lý xác thực và phân quyền
type AuthManager struct {
	AdminSvc *authsvc.AdminService
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		adminSvc, err := authsvc.NewAdminService()
		if err != nil {
			panic(fmt.Sprintf("failed to create auth manager: %v", err))
		}
		authManagerInstance = &AuthManager{AdminSvc: adminSvc}
	})
	return authManagerInstance
}

// AuthMiddleware xác thực Bearer token và (tùy chọn) kiểm tra vai trò.
// requiredRole rỗng nghĩa là chấp nhận mọi worker đã đăng nhập;
// khác rỗng thì worker phải có đúng vai trò đó, sai vai trò trả về 403.
// Token hợp lệ nhưng worker đã bị xóa/khóa vẫn bị từ chối (resolve live worker).
func AuthMiddleware(requiredRole string) fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := authsvc.ParseAccessToken(parts[1], global.ServerConfig.JwtSecret)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		// Resolve worker đang active: token còn hạn nhưng tài khoản
		// đã bị xóa hoặc khóa thì vẫn bị từ chối
		worker, err := authManager.AdminSvc.ResolveLiveWorker(context.Background(), claims.UserID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":      c.Path(),
				"worker_id": claims.UserID,
			}).Warn("❌ [AUTH] Token hợp lệ nhưng worker không còn active")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if requiredRole != "" && worker.Role != requiredRole {
			HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}

		c.Locals(LocalWorker, worker)
		c.Locals(LocalWorkerID, worker.WorkerID)
		c.Locals(LocalRole, worker.Role)

		return c.Next()
	}
}
