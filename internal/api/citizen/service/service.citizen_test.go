package citizensvc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/Ujju04/smartjharkhand/internal/api/base/models"
	citizendto "github.com/Ujju04/smartjharkhand/internal/api/citizen/dto"
	models "github.com/Ujju04/smartjharkhand/internal/api/citizen/models"
	"github.com/Ujju04/smartjharkhand/internal/common"
)

// fakeCitizenDirectory mô phỏng collection users trên slice trong bộ nhớ
type fakeCitizenDirectory struct {
	citizens []models.Citizen
}

func (f *fakeCitizenDirectory) match(c *models.Citizen, filter bson.M) bool {
	for key, want := range filter {
		switch key {
		case "id":
			if c.CitizenID != want.(string) {
				return false
			}
		case "email":
			if c.Email != want.(string) {
				return false
			}
		}
	}
	return true
}

func (f *fakeCitizenDirectory) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.Citizen, error) {
	for i := range f.citizens {
		if f.match(&f.citizens[i], filter.(bson.M)) {
			return f.citizens[i], nil
		}
	}
	return models.Citizen{}, common.ErrNotFound
}

func (f *fakeCitizenDirectory) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[models.Citizen], error) {
	items := []models.Citizen{}
	for i := range f.citizens {
		if f.match(&f.citizens[i], filter.(bson.M)) {
			items = append(items, f.citizens[i])
		}
	}
	total := int64(len(items))
	return &basemodels.PaginateResult[models.Citizen]{
		Page: page, Limit: limit, Items: items,
		ItemCount: total, Total: total, TotalPage: (total + limit - 1) / limit,
	}, nil
}

func (f *fakeCitizenDirectory) InsertOne(ctx context.Context, data models.Citizen) (models.Citizen, error) {
	f.citizens = append(f.citizens, data)
	return data, nil
}

func (f *fakeCitizenDirectory) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	for i := range f.citizens {
		if f.match(&f.citizens[i], filter.(bson.M)) {
			return true, nil
		}
	}
	return false, nil
}

// fakeCitizenSequencer sinh mã USER tuần tự bắt đầu sau 5 bản ghi seed
type fakeCitizenSequencer struct {
	next int64
}

func (f *fakeCitizenSequencer) Next(ctx context.Context, collectionName string) (string, error) {
	f.next++
	return fmt.Sprintf("USER%03d", 5+f.next), nil
}

func newTestCitizenService() (*CitizenService, *fakeCitizenDirectory) {
	directory := &fakeCitizenDirectory{citizens: []models.Citizen{
		{CitizenID: "USER001", Name: "Ramesh Kumar", Email: "ramesh@example.com", TotalComplaints: 2},
		{CitizenID: "USER002", Name: "Priya Sharma", Email: "priya@example.com"},
	}}
	return &CitizenService{citizens: directory, counter: &fakeCitizenSequencer{}}, directory
}

// TestBuildSearchFilter kiểm tra filter tìm kiếm trên tên, email và mã
func TestBuildSearchFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildSearchFilter(""), "Search rỗng không được sinh điều kiện")

	filter := BuildSearchFilter("ramesh")
	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3, "Search phải phủ name, email và id")

	name := or[0].(bson.M)["name"].(primitive.Regex)
	assert.Equal(t, "ramesh", name.Pattern)
	assert.Equal(t, "i", name.Options, "Search phải không phân biệt hoa thường")
}

// TestCitizenList kiểm tra danh bạ có phân trang
func TestCitizenList(t *testing.T) {
	service, _ := newTestCitizenService()

	result, err := service.List(context.Background(), &citizendto.ListQuery{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, int64(1), result.Pages)
	assert.Len(t, result.Users, 2)
}

// TestCitizenCreate kiểm tra đăng ký người dân mới: mã USER tuần tự,
// ngày tham gia được ghi và bộ đếm khởi tạo bằng 0
func TestCitizenCreate(t *testing.T) {
	service, directory := newTestCitizenService()

	created, err := service.Create(context.Background(), &citizendto.CreateInput{
		Name:  "Anita Devi",
		Email: "anita@example.com",
		Phone: "9876500000",
	})
	require.NoError(t, err)

	assert.Equal(t, "USER006", created.CitizenID, "Người dân đầu tiên sau seed phải mang mã USER006")
	assert.NotEmpty(t, created.JoinedDate)
	assert.Equal(t, int64(0), created.TotalComplaints)
	assert.Equal(t, int64(0), created.ResolvedComplaints)
	assert.Len(t, directory.citizens, 3)
}

// TestCitizenCreateDuplicateEmail kiểm tra email trùng bị từ chối
func TestCitizenCreateDuplicateEmail(t *testing.T) {
	service, _ := newTestCitizenService()

	_, err := service.Create(context.Background(), &citizendto.CreateInput{
		Name:  "Người trùng email",
		Email: "ramesh@example.com",
	})
	assert.True(t, errors.Is(err, common.ErrDuplicate))
}

// TestCitizenGetByID kiểm tra tra cứu theo mã nghiệp vụ
func TestCitizenGetByID(t *testing.T) {
	service, _ := newTestCitizenService()

	citizen, err := service.GetByID(context.Background(), "USER001")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", citizen.Name)

	_, err = service.GetByID(context.Background(), "USER999")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
