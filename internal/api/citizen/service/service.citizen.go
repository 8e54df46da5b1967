// Package citizensvc chứa nghiệp vụ danh bạ người dân gửi phản ánh.
package citizensvc

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/Ujju04/smartjharkhand/internal/api/base/models"
	basesvc "github.com/Ujju04/smartjharkhand/internal/api/base/service"
	citizendto "github.com/Ujju04/smartjharkhand/internal/api/citizen/dto"
	models "github.com/Ujju04/smartjharkhand/internal/api/citizen/models"
	countersvc "github.com/Ujju04/smartjharkhand/internal/api/counter/service"
	"github.com/Ujju04/smartjharkhand/internal/common"
	"github.com/Ujju04/smartjharkhand/internal/global"
)

// citizenStore là phần giao tiếp MongoDB mà CitizenService cần.
// BaseServiceMongoImpl[models.Citizen] thỏa mãn interface này.
type citizenStore interface {
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.Citizen, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[models.Citizen], error)
	InsertOne(ctx context.Context, data models.Citizen) (models.Citizen, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// sequencer sinh mã tuần tự cho người dân mới
type sequencer interface {
	Next(ctx context.Context, collectionName string) (string, error)
}

// CitizenService là cấu trúc chứa các phương thức trên danh bạ người dân
type CitizenService struct {
	citizens citizenStore
	counter  sequencer
}

// NewCitizenService tạo mới CitizenService từ registry collection
func NewCitizenService() (*CitizenService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	counter, err := countersvc.NewCounterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create counter service: %v", err)
	}

	return &CitizenService{
		citizens: basesvc.NewBaseServiceMongo[models.Citizen](collection),
		counter:  counter,
	}, nil
}

// BuildSearchFilter dựng filter tìm kiếm OR regex không phân biệt hoa thường
// trên tên, email và mã người dân. Search rỗng trả về filter rỗng.
func BuildSearchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"email": pattern},
		bson.M{"id": pattern},
	}}
}

// List trả về danh bạ người dân có phân trang, mới nhất trước
func (s *CitizenService) List(ctx context.Context, query *citizendto.ListQuery, page, limit int64) (*citizendto.ListResult, error) {
	search := ""
	if query != nil {
		search = query.Search
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	result, err := s.citizens.FindWithPagination(ctx, BuildSearchFilter(search), page, limit, opts)
	if err != nil {
		return nil, err
	}

	return &citizendto.ListResult{
		Users: result.Items,
		Total: result.Total,
		Page:  result.Page,
		Pages: result.TotalPage,
	}, nil
}

// GetByID trả về một người dân theo mã nghiệp vụ
func (s *CitizenService) GetByID(ctx context.Context, citizenID string) (*models.Citizen, error) {
	citizen, err := s.citizens.FindOne(ctx, bson.M{"id": citizenID}, nil)
	if err != nil {
		return nil, err
	}
	return &citizen, nil
}

// Create đăng ký người dân mới với mã USER tuần tự, email không được trùng
func (s *CitizenService) Create(ctx context.Context, input *citizendto.CreateInput) (*models.Citizen, error) {
	exists, err := s.citizens.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrDuplicate
	}

	citizenID, err := s.counter.Next(ctx, global.MongoDB_ColNames.Users)
	if err != nil {
		return nil, err
	}

	created, err := s.citizens.InsertOne(ctx, models.Citizen{
		CitizenID:  citizenID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		JoinedDate: time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
