// Package countersvc - service sinh mã tuần tự cho các collection.
package countersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Ujju04/smartjharkhand/internal/api/base/service"
	models "github.com/Ujju04/smartjharkhand/internal/api/counter/models"
	"github.com/Ujju04/smartjharkhand/internal/common"
	"github.com/Ujju04/smartjharkhand/internal/global"
)

// Prefix hiển thị cho mã của từng collection
var prefixes = map[string]string{
	"users":       "USER",
	"complaints":  "CMP",
	"admin_users": "worker",
}

// counterStore là phần giao tiếp MongoDB mà CounterService cần.
// BaseServiceMongoImpl[models.Counter] thỏa mãn interface này.
type counterStore interface {
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (models.Counter, error)
	Upsert(ctx context.Context, filter interface{}, data interface{}) (models.Counter, error)
}

// CounterService sinh mã tuần tự dạng {prefix}{n:03d} (CMP006, USER001, worker005).
// Mỗi lần Next là một findOneAndUpdate với $inc, atomic trên server nên
// các caller đồng thời không bao giờ trùng hoặc bỏ sót số.
type CounterService struct {
	counters counterStore
}

// NewCounterService tạo mới CounterService từ registry collection
func NewCounterService() (*CounterService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Counters)
	if !exist {
		return nil, fmt.Errorf("failed to get counters collection: %v", common.ErrNotFound)
	}

	return &CounterService{
		counters: basesvc.NewBaseServiceMongo[models.Counter](collection),
	}, nil
}

// Next tăng sequence của collection lên 1 và trả về mã đã format.
// Counter chưa tồn tại sẽ được upsert với sequence bắt đầu từ 1.
func (s *CounterService) Next(ctx context.Context, collectionName string) (string, error) {
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{"sequence": int64(1)},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	counter, err := s.counters.FindOneAndUpdate(ctx, bson.M{"_id": collectionName}, update, opts)
	if err != nil {
		return "", err
	}

	return FormatSequenceID(collectionName, counter.Sequence), nil
}

// Seed đặt giá trị sequence ban đầu cho collection nếu counter chưa tồn tại.
// Counter đã có giá trị sẽ không bị ghi đè.
func (s *CounterService) Seed(ctx context.Context, collectionName string, sequence int64) error {
	update := &basesvc.UpdateData{
		SetOnInsert: map[string]interface{}{"sequence": sequence},
	}
	_, err := s.counters.Upsert(ctx, bson.M{"_id": collectionName}, update)
	return err
}

// FormatSequenceID format mã theo {prefix}{n:03d}.
// Collection không có prefix đăng ký sẽ dùng chính tên collection làm prefix.
func FormatSequenceID(collectionName string, sequence int64) string {
	prefix, ok := prefixes[collectionName]
	if !ok {
		prefix = collectionName
	}
	return fmt.Sprintf("%s%03d", prefix, sequence)
}
