package authsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	authdto "github.com/Ujju04/smartjharkhand/internal/api/auth/dto"
	models "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	basesvc "github.com/Ujju04/smartjharkhand/internal/api/base/service"
	complaintmodels "github.com/Ujju04/smartjharkhand/internal/api/complaint/models"
	countersvc "github.com/Ujju04/smartjharkhand/internal/api/counter/service"
	"github.com/Ujju04/smartjharkhand/internal/common"
	"github.com/Ujju04/smartjharkhand/internal/global"
	"github.com/Ujju04/smartjharkhand/internal/logger"
)

// adminStore là phần giao tiếp MongoDB mà AdminService cần.
// BaseServiceMongoImpl[models.AdminUser] thỏa mãn interface này.
type adminStore interface {
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.AdminUser, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.AdminUser, error)
	InsertOne(ctx context.Context, data models.AdminUser) (models.AdminUser, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// sequencer sinh mã tuần tự cho tài khoản mới
type sequencer interface {
	Next(ctx context.Context, collectionName string) (string, error)
}

// AdminService là cấu trúc chứa các phương thức liên quan đến tài khoản quản trị
type AdminService struct {
	admins  adminStore
	counter sequencer
}

// NewAdminService tạo mới AdminService từ registry collection
func NewAdminService() (*AdminService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AdminUsers)
	if !exist {
		return nil, fmt.Errorf("failed to get admin_users collection: %v", common.ErrNotFound)
	}

	counter, err := countersvc.NewCounterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create counter service: %v", err)
	}

	return &AdminService{
		admins:  basesvc.NewBaseServiceMongo[models.AdminUser](collection),
		counter: counter,
	}, nil
}

// Authenticate kiểm tra bộ (username, password, role) và trả về worker nếu hợp lệ.
// Mọi trường hợp thất bại (sai username, sai password, sai role, tài khoản bị khóa)
// đều trả về cùng ErrInvalidCredentials để không lộ thông tin tài khoản.
func (s *AdminService) Authenticate(ctx context.Context, input *authdto.LoginInput) (*models.AdminUser, error) {
	worker, err := s.admins.FindOne(ctx, bson.M{"username": input.Username}, nil)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(worker.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if worker.Role != input.Role || !worker.IsActive {
		return nil, common.ErrInvalidCredentials
	}

	return &worker, nil
}

// Login xác thực và phát hành access token cho worker
func (s *AdminService) Login(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginResult, error) {
	worker, err := s.Authenticate(ctx, input)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(global.ServerConfig.TokenTTLHours) * time.Hour
	token, err := CreateAccessToken(worker, global.ServerConfig.JwtSecret, ttl)
	if err != nil {
		logger.WithError(err).Error("Login: Lỗi ký access token")
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil)
	}

	logger.WithModule("auth").WithField("worker_id", worker.WorkerID).Info("Đăng nhập thành công")

	return &authdto.LoginResult{Token: token, User: worker}, nil
}

// ResolveLiveWorker tìm worker đang active theo WorkerID trong claims.
// Worker đã bị xóa hoặc khóa sẽ vô hiệu hóa token dù token còn hạn.
func (s *AdminService) ResolveLiveWorker(ctx context.Context, workerID string) (*models.AdminUser, error) {
	worker, err := s.admins.FindOne(ctx, bson.M{"id": workerID, "isActive": true}, nil)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}
	return &worker, nil
}

// ListWorkers trả về danh sách nhân viên xử lý (Lower Admin) với counter hiện tại
func (s *AdminService) ListWorkers(ctx context.Context) ([]models.AdminUser, error) {
	return s.admins.Find(ctx, bson.M{"role": models.RoleLowerAdmin}, nil)
}

// CreateWorker tạo tài khoản nhân viên xử lý mới với mã tuần tự từ counter
func (s *AdminService) CreateWorker(ctx context.Context, input *authdto.WorkerCreateInput) (*models.AdminUser, error) {
	if !complaintmodels.IsValidDepartment(input.Department) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Phòng ban không hợp lệ", common.StatusBadRequest, nil)
	}

	exists, err := s.admins.DocumentExists(ctx, bson.M{"username": input.Username})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrDuplicate
	}

	workerID, err := s.counter.Next(ctx, "admin_users")
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil)
	}

	worker := models.AdminUser{
		WorkerID:   workerID,
		Username:   input.Username,
		Password:   string(hash),
		Name:       input.Name,
		Role:       models.RoleLowerAdmin,
		Department: input.Department,
		Email:      input.Email,
		Phone:      input.Phone,
		IsActive:   true,
	}

	created, err := s.admins.InsertOne(ctx, worker)
	if err != nil {
		return nil, err
	}

	logger.WithModule("auth").WithField("worker_id", created.WorkerID).Info("Tạo tài khoản nhân viên mới")
	return &created, nil
}
