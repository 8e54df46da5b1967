package authsvc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	authdto "github.com/Ujju04/smartjharkhand/internal/api/auth/dto"
	models "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	"github.com/Ujju04/smartjharkhand/internal/common"
)

// fakeAdminStore mô phỏng collection admin_users cho các filter đơn giản
// (username, id + isActive) mà AdminService sử dụng.
type fakeAdminStore struct {
	workers []models.AdminUser
}

func (f *fakeAdminStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.AdminUser, error) {
	m := filter.(bson.M)
	for _, w := range f.workers {
		if username, ok := m["username"].(string); ok && w.Username != username {
			continue
		}
		if id, ok := m["id"].(string); ok && w.WorkerID != id {
			continue
		}
		if active, ok := m["isActive"].(bool); ok && w.IsActive != active {
			continue
		}
		return w, nil
	}
	return models.AdminUser{}, common.ErrNotFound
}

func (f *fakeAdminStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.AdminUser, error) {
	m := filter.(bson.M)
	out := []models.AdminUser{}
	for _, w := range f.workers {
		if role, ok := m["role"].(string); ok && w.Role != role {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeAdminStore) InsertOne(ctx context.Context, data models.AdminUser) (models.AdminUser, error) {
	f.workers = append(f.workers, data)
	return data, nil
}

func (f *fakeAdminStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	_, err := f.FindOne(ctx, filter, nil)
	if errors.Is(err, common.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// fakeSequencer sinh mã tuần tự trong bộ nhớ
type fakeSequencer struct {
	seq map[string]int64
}

func (f *fakeSequencer) Next(ctx context.Context, collectionName string) (string, error) {
	if f.seq == nil {
		f.seq = make(map[string]int64)
	}
	f.seq[collectionName]++
	if collectionName == "admin_users" {
		return fmt.Sprintf("worker%03d", f.seq[collectionName]), nil
	}
	return fmt.Sprintf("%s%03d", collectionName, f.seq[collectionName]), nil
}

func newTestAdminService(t *testing.T) (*AdminService, *fakeAdminStore) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Không hash được mật khẩu test: %v", err)
	}

	store := &fakeAdminStore{workers: []models.AdminUser{
		{WorkerID: "admin", Username: "admin", Password: string(hash), Role: models.RoleMainAdmin, IsActive: true},
		{WorkerID: "worker1", Username: "worker1", Password: string(hash), Role: models.RoleLowerAdmin, Department: "Public Works", IsActive: true},
		{WorkerID: "worker3", Username: "worker3", Password: string(hash), Role: models.RoleLowerAdmin, IsActive: false},
	}}

	return &AdminService{admins: store, counter: &fakeSequencer{}}, store
}

// TestAuthenticateSuccess kiểm tra đăng nhập hợp lệ với đúng bộ (username, password, role)
func TestAuthenticateSuccess(t *testing.T) {
	svc, _ := newTestAdminService(t)

	worker, err := svc.Authenticate(context.Background(), &authdto.LoginInput{
		Username: "admin", Password: "admin123", Role: models.RoleMainAdmin,
	})
	if err != nil {
		t.Fatalf("Authenticate hợp lệ bị lỗi: %v", err)
	}
	if worker.WorkerID != "admin" {
		t.Errorf("WorkerID = %q, mong đợi admin", worker.WorkerID)
	}
}

// TestAuthenticateFailuresIndistinguishable kiểm tra mọi trường hợp thất bại
// đều trả về cùng một lỗi ErrInvalidCredentials
func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input authdto.LoginInput
	}{
		{"username không tồn tại", authdto.LoginInput{Username: "ghost", Password: "admin123", Role: models.RoleMainAdmin}},
		{"sai mật khẩu", authdto.LoginInput{Username: "admin", Password: "wrong", Role: models.RoleMainAdmin}},
		{"sai role", authdto.LoginInput{Username: "admin", Password: "admin123", Role: models.RoleLowerAdmin}},
		{"tài khoản bị khóa", authdto.LoginInput{Username: "worker3", Password: "admin123", Role: models.RoleLowerAdmin}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Authenticate(ctx, &tc.input)
			if !errors.Is(err, common.ErrInvalidCredentials) {
				t.Errorf("Mong đợi ErrInvalidCredentials, nhận: %v", err)
			}
		})
	}
}

// TestResolveLiveWorker kiểm tra worker bị khóa vô hiệu hóa token
func TestResolveLiveWorker(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := context.Background()

	if _, err := svc.ResolveLiveWorker(ctx, "worker1"); err != nil {
		t.Errorf("Worker đang active phải resolve được, lỗi: %v", err)
	}

	if _, err := svc.ResolveLiveWorker(ctx, "worker3"); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Worker bị khóa phải trả về ErrTokenInvalid, nhận: %v", err)
	}

	if _, err := svc.ResolveLiveWorker(ctx, "deleted"); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Worker không tồn tại phải trả về ErrTokenInvalid, nhận: %v", err)
	}
}

// TestCreateWorker kiểm tra tạo nhân viên mới với mã tuần tự và mật khẩu đã hash
func TestCreateWorker(t *testing.T) {
	svc, store := newTestAdminService(t)
	ctx := context.Background()

	created, err := svc.CreateWorker(ctx, &authdto.WorkerCreateInput{
		Username: "worker_new", Password: "secret123", Name: "Nhân viên mới", Department: "Water Supply",
	})
	if err != nil {
		t.Fatalf("CreateWorker lỗi: %v", err)
	}

	if created.WorkerID != "worker001" {
		t.Errorf("WorkerID = %q, mong đợi worker001", created.WorkerID)
	}
	if created.Role != models.RoleLowerAdmin {
		t.Errorf("Role = %q, mong đợi Lower Admin", created.Role)
	}
	if created.Password == "secret123" {
		t.Error("Mật khẩu phải được hash, không lưu plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")); err != nil {
		t.Errorf("Hash mật khẩu không khớp: %v", err)
	}

	// Username trùng phải bị từ chối
	if _, err := svc.CreateWorker(ctx, &authdto.WorkerCreateInput{
		Username: "worker_new", Password: "secret123", Name: "Trùng", Department: "Water Supply",
	}); !errors.Is(err, common.ErrDuplicate) {
		t.Errorf("Username trùng phải trả về ErrDuplicate, nhận: %v", err)
	}

	_ = store
}
