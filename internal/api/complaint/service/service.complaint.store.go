// Package complaintsvc chứa nghiệp vụ quản lý phản ánh của người dân:
// danh sách theo phạm vi vai trò, tạo mới, giao việc, chuyển phòng ban,
// cập nhật tiến độ và thống kê.
package complaintsvc

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	basemodels "github.com/Ujju04/smartjharkhand/internal/api/base/models"
	basesvc "github.com/Ujju04/smartjharkhand/internal/api/base/service"
	citizenmodels "github.com/Ujju04/smartjharkhand/internal/api/citizen/models"
	complaintdto "github.com/Ujju04/smartjharkhand/internal/api/complaint/dto"
	models "github.com/Ujju04/smartjharkhand/internal/api/complaint/models"
	countersvc "github.com/Ujju04/smartjharkhand/internal/api/counter/service"
	"github.com/Ujju04/smartjharkhand/internal/common"
	"github.com/Ujju04/smartjharkhand/internal/global"
	"github.com/Ujju04/smartjharkhand/internal/logger"
)

// complaintStore là phần giao tiếp MongoDB mà ComplaintService cần trên collection complaints.
// BaseServiceMongoImpl[models.Complaint] thỏa mãn interface này.
type complaintStore interface {
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.Complaint, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[models.Complaint], error)
	InsertOne(ctx context.Context, data models.Complaint) (models.Complaint, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (models.Complaint, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Aggregate(ctx context.Context, pipeline interface{}) ([]bson.M, error)
}

// workerStore là phần giao tiếp MongoDB trên collection admin_users
type workerStore interface {
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (authmodels.AdminUser, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (authmodels.AdminUser, error)
}

// citizenStore là phần giao tiếp MongoDB trên collection users
type citizenStore interface {
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (citizenmodels.Citizen, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (citizenmodels.Citizen, error)
}

// ComplaintService là cấu trúc chứa các phương thức nghiệp vụ trên phản ánh
type ComplaintService struct {
	complaints complaintStore
	workers    workerStore
	citizens   citizenStore
	counter    sequencer
}

// sequencer sinh mã tuần tự cho phản ánh mới
type sequencer interface {
	Next(ctx context.Context, collectionName string) (string, error)
}

// NewComplaintService tạo mới ComplaintService từ registry collection
func NewComplaintService() (*ComplaintService, error) {
	complaints, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Complaints)
	if !exist {
		return nil, fmt.Errorf("failed to get complaints collection: %v", common.ErrNotFound)
	}
	workers, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AdminUsers)
	if !exist {
		return nil, fmt.Errorf("failed to get admin_users collection: %v", common.ErrNotFound)
	}
	citizens, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	counter, err := countersvc.NewCounterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create counter service: %v", err)
	}

	return &ComplaintService{
		complaints: basesvc.NewBaseServiceMongo[models.Complaint](complaints),
		workers:    basesvc.NewBaseServiceMongo[authmodels.AdminUser](workers),
		citizens:   basesvc.NewBaseServiceMongo[citizenmodels.Citizen](citizens),
		counter:    counter,
	}, nil
}

// BuildListFilter dựng filter MongoDB từ điều kiện lọc và phạm vi vai trò.
// Các filter đơn AND với nhau; search là OR regex không phân biệt hoa thường
// trên title, id, userEmail và description.
func BuildListFilter(query *complaintdto.ListQuery, scope bson.M) bson.M {
	filter := bson.M{}

	if query != nil {
		if query.Status != "" {
			filter["status"] = query.Status
		}
		if query.Priority != "" {
			filter["priority"] = query.Priority
		}
		if query.Department != "" {
			filter["department"] = query.Department
		}
		if query.Search != "" {
			pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query.Search), Options: "i"}
			filter["$or"] = bson.A{
				bson.M{"title": pattern},
				bson.M{"id": pattern},
				bson.M{"userEmail": pattern},
				bson.M{"description": pattern},
			}
		}
	}

	return MergeFilter(filter, scope)
}

// List trả về danh sách phản ánh trong phạm vi của worker, mới nhất trước
func (s *ComplaintService) List(ctx context.Context, worker *authmodels.AdminUser, query *complaintdto.ListQuery, page, limit int64) (*complaintdto.ListResult, error) {
	filter := BuildListFilter(query, ScopeFilter(worker.Role, worker.WorkerID))

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	result, err := s.complaints.FindWithPagination(ctx, filter, page, limit, opts)
	if err != nil {
		return nil, err
	}

	return &complaintdto.ListResult{
		Complaints: result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Pages:      result.TotalPage,
	}, nil
}

// GetByID trả về một phản ánh theo mã nghiệp vụ, trong phạm vi của worker.
// Phản ánh ngoài phạm vi trả về ErrNotFound như thể không tồn tại.
func (s *ComplaintService) GetByID(ctx context.Context, worker *authmodels.AdminUser, complaintID string) (*models.Complaint, error) {
	filter := MergeFilter(bson.M{"id": complaintID}, ScopeFilter(worker.Role, worker.WorkerID))

	complaint, err := s.complaints.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// Create tạo phản ánh mới thay mặt người dân và tăng tổng số phản ánh của họ
func (s *ComplaintService) Create(ctx context.Context, input *complaintdto.CreateInput) (*models.Complaint, error) {
	if !models.IsValidDepartment(input.Department) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Phòng ban không hợp lệ", common.StatusBadRequest, nil)
	}

	citizen, err := s.citizens.FindOne(ctx, bson.M{"id": input.UserID}, nil)
	if err != nil {
		return nil, err
	}

	complaintID, err := s.counter.Next(ctx, global.MongoDB_ColNames.Complaints)
	if err != nil {
		return nil, err
	}

	created, err := s.complaints.InsertOne(ctx, models.Complaint{
		ComplaintID: complaintID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Department:  input.Department,
		Priority:    input.Priority,
		Status:      models.StatusPending,
		Location:    input.Location,
		UserID:      citizen.CitizenID,
		UserName:    citizen.Name,
		UserEmail:   citizen.Email,
	})
	if err != nil {
		return nil, err
	}

	_, err = s.citizens.UpdateOne(ctx, bson.M{"id": citizen.CitizenID},
		&basesvc.UpdateData{Inc: map[string]interface{}{"totalComplaints": 1}}, nil)
	if err != nil {
		logger.WithCollection(global.MongoDB_ColNames.Users).WithError(err).
			Warn("Không tăng được totalComplaints cho người dân " + citizen.CitizenID)
	}

	return &created, nil
}
