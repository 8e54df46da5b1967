package complaintsvc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	basemodels "github.com/Ujju04/smartjharkhand/internal/api/base/models"
	basesvc "github.com/Ujju04/smartjharkhand/internal/api/base/service"
	citizenmodels "github.com/Ujju04/smartjharkhand/internal/api/citizen/models"
	complaintdto "github.com/Ujju04/smartjharkhand/internal/api/complaint/dto"
	models "github.com/Ujju04/smartjharkhand/internal/api/complaint/models"
	"github.com/Ujju04/smartjharkhand/internal/common"
)

// fakeComplaintStore mô phỏng collection complaints trên slice trong bộ nhớ,
// áp dụng $set/$push từ UpdateData lên bản ghi khớp filter.
type fakeComplaintStore struct {
	complaints []models.Complaint
}

func (f *fakeComplaintStore) match(c *models.Complaint, filter bson.M) bool {
	for key, want := range filter {
		switch key {
		case "id":
			if c.ComplaintID != want.(string) {
				return false
			}
		case "status":
			if c.Status != want.(string) {
				return false
			}
		case "assignedTo":
			if c.AssignedTo == nil || *c.AssignedTo != want.(string) {
				return false
			}
		}
	}
	return true
}

func (f *fakeComplaintStore) find(filter bson.M) *models.Complaint {
	for i := range f.complaints {
		if f.match(&f.complaints[i], filter) {
			return &f.complaints[i]
		}
	}
	return nil
}

func (f *fakeComplaintStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.Complaint, error) {
	if c := f.find(filter.(bson.M)); c != nil {
		return *c, nil
	}
	return models.Complaint{}, common.ErrNotFound
}

func (f *fakeComplaintStore) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[models.Complaint], error) {
	items := []models.Complaint{}
	for i := range f.complaints {
		if f.match(&f.complaints[i], filter.(bson.M)) {
			items = append(items, f.complaints[i])
		}
	}
	total := int64(len(items))
	return &basemodels.PaginateResult[models.Complaint]{
		Page: page, Limit: limit, Items: items,
		ItemCount: total, Total: total, TotalPage: (total + limit - 1) / limit,
	}, nil
}

func (f *fakeComplaintStore) InsertOne(ctx context.Context, data models.Complaint) (models.Complaint, error) {
	f.complaints = append(f.complaints, data)
	return data, nil
}

func (f *fakeComplaintStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (models.Complaint, error) {
	c := f.find(filter.(bson.M))
	if c == nil {
		return models.Complaint{}, common.ErrNotFound
	}

	updateData, err := basesvc.ToUpdateData(update)
	if err != nil {
		return models.Complaint{}, err
	}
	for key, value := range updateData.Set {
		switch key {
		case "status":
			c.Status = value.(string)
		case "department":
			c.Department = value.(string)
		case "remarks":
			c.Remarks = value.(string)
		case "assignedTo":
			c.AssignedTo = asOptionalString(value)
		case "assignedWorker":
			c.AssignedWorker = asOptionalString(value)
		}
	}
	if each, ok := updateData.Push["proofImages"]; ok {
		images := each.(bson.M)["$each"].([]string)
		c.ProofImages = append(c.ProofImages, images...)
	}
	return *c, nil
}

func (f *fakeComplaintStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count := int64(0)
	for i := range f.complaints {
		if f.match(&f.complaints[i], filter.(bson.M)) {
			count++
		}
	}
	return count, nil
}

func (f *fakeComplaintStore) Aggregate(ctx context.Context, pipeline interface{}) ([]bson.M, error) {
	return nil, nil
}

func asOptionalString(v interface{}) *string {
	if v == nil {
		return nil
	}
	s := v.(string)
	return &s
}

// fakeWorkerStore mô phỏng collection admin_users, hỗ trợ điều kiện
// {assignedComplaints: {$gt: 0}} dùng khi giảm bộ đếm.
type fakeWorkerStore struct {
	workers map[string]*authmodels.AdminUser
}

func (f *fakeWorkerStore) match(w *authmodels.AdminUser, filter bson.M) bool {
	for key, want := range filter {
		switch key {
		case "id":
			if w.WorkerID != want.(string) {
				return false
			}
		case "isActive":
			if w.IsActive != want.(bool) {
				return false
			}
		case "assignedComplaints":
			if gt, ok := want.(bson.M)["$gt"]; ok && w.AssignedComplaints <= int64(gt.(int)) {
				return false
			}
		}
	}
	return true
}

func (f *fakeWorkerStore) find(filter bson.M) *authmodels.AdminUser {
	for _, w := range f.workers {
		if f.match(w, filter) {
			return w
		}
	}
	return nil
}

func (f *fakeWorkerStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (authmodels.AdminUser, error) {
	if w := f.find(filter.(bson.M)); w != nil {
		return *w, nil
	}
	return authmodels.AdminUser{}, common.ErrNotFound
}

func (f *fakeWorkerStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (authmodels.AdminUser, error) {
	w := f.find(filter.(bson.M))
	if w == nil {
		return authmodels.AdminUser{}, common.ErrNotFound
	}

	updateData, err := basesvc.ToUpdateData(update)
	if err != nil {
		return authmodels.AdminUser{}, err
	}
	if inc, ok := updateData.Inc["assignedComplaints"]; ok {
		w.AssignedComplaints += int64(inc.(int))
	}
	if inc, ok := updateData.Inc["completedComplaints"]; ok {
		w.CompletedComplaints += int64(inc.(int))
	}
	return *w, nil
}

// fakeCitizenStore mô phỏng collection users
type fakeCitizenStore struct {
	citizens map[string]*citizenmodels.Citizen
}

func (f *fakeCitizenStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (citizenmodels.Citizen, error) {
	id, _ := filter.(bson.M)["id"].(string)
	if c, ok := f.citizens[id]; ok {
		return *c, nil
	}
	return citizenmodels.Citizen{}, common.ErrNotFound
}

func (f *fakeCitizenStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (citizenmodels.Citizen, error) {
	id, _ := filter.(bson.M)["id"].(string)
	c, ok := f.citizens[id]
	if !ok {
		return citizenmodels.Citizen{}, common.ErrNotFound
	}

	updateData, err := basesvc.ToUpdateData(update)
	if err != nil {
		return citizenmodels.Citizen{}, err
	}
	if inc, ok := updateData.Inc["totalComplaints"]; ok {
		c.TotalComplaints += int64(inc.(int))
	}
	if inc, ok := updateData.Inc["resolvedComplaints"]; ok {
		c.ResolvedComplaints += int64(inc.(int))
	}
	return *c, nil
}

// fakeComplaintSequencer sinh mã CMP tuần tự bắt đầu sau 5 bản ghi seed
type fakeComplaintSequencer struct {
	next int64
}

func (f *fakeComplaintSequencer) Next(ctx context.Context, collectionName string) (string, error) {
	f.next++
	return fmt.Sprintf("CMP%03d", 5+f.next), nil
}

func strPtr(s string) *string { return &s }

// newTestComplaintService dựng service với dữ liệu: worker1 (Public Works, đang xử lý 1 việc),
// worker2 (Waste Management, rảnh), worker3 (Public Works, bị khóa), một người dân
// và hai phản ánh - CMP001 đã giao cho worker1, CMP002 chưa giao.
func newTestComplaintService() (*ComplaintService, *fakeComplaintStore, *fakeWorkerStore, *fakeCitizenStore) {
	complaints := &fakeComplaintStore{complaints: []models.Complaint{
		{
			ComplaintID: "CMP001", Title: "Đường hỏng nặng", Department: "Public Works",
			Priority: models.PriorityHigh, Status: models.StatusInProgress,
			UserID: "USER001", UserEmail: "ramesh@example.com",
			AssignedTo: strPtr("worker001"), AssignedWorker: strPtr("Mike Wilson"),
		},
		{
			ComplaintID: "CMP002", Title: "Rác ứ đọng", Department: "Waste Management",
			Priority: models.PriorityMedium, Status: models.StatusPending,
			UserID: "USER001", UserEmail: "ramesh@example.com",
		},
	}}

	workers := &fakeWorkerStore{workers: map[string]*authmodels.AdminUser{
		"worker001": {WorkerID: "worker001", Name: "Mike Wilson", Role: authmodels.RoleLowerAdmin,
			Department: "Public Works", IsActive: true, AssignedComplaints: 1},
		"worker002": {WorkerID: "worker002", Name: "Lisa Chen", Role: authmodels.RoleLowerAdmin,
			Department: "Waste Management", IsActive: true},
		"worker003": {WorkerID: "worker003", Name: "Đã khóa", Role: authmodels.RoleLowerAdmin,
			Department: "Public Works", IsActive: false},
	}}

	citizens := &fakeCitizenStore{citizens: map[string]*citizenmodels.Citizen{
		"USER001": {CitizenID: "USER001", Name: "Ramesh Kumar", Email: "ramesh@example.com", TotalComplaints: 2},
	}}

	service := &ComplaintService{
		complaints: complaints,
		workers:    workers,
		citizens:   citizens,
		counter:    &fakeComplaintSequencer{},
	}
	return service, complaints, workers, citizens
}

func mainAdmin() *authmodels.AdminUser {
	return &authmodels.AdminUser{WorkerID: "admin001", Role: authmodels.RoleMainAdmin}
}

func lowerAdmin(workerID string) *authmodels.AdminUser {
	return &authmodels.AdminUser{WorkerID: workerID, Role: authmodels.RoleLowerAdmin}
}

// TestAssignComplaint kiểm tra giao việc: cập nhật phản ánh và tăng bộ đếm của nhân viên
func TestAssignComplaint(t *testing.T) {
	service, complaints, workers, _ := newTestComplaintService()

	updated, err := service.Assign(context.Background(), "CMP002",
		&complaintdto.AssignInput{WorkerID: "worker002", Department: "Waste Management"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusInProgress, updated.Status, "Giao việc phải chuyển trạng thái sang In Progress")
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, "worker002", *updated.AssignedTo)
	require.NotNil(t, updated.AssignedWorker)
	assert.Equal(t, "Lisa Chen", *updated.AssignedWorker)

	assert.Equal(t, int64(1), workers.workers["worker002"].AssignedComplaints,
		"Bộ đếm assignedComplaints của nhân viên mới phải tăng 1")
	assert.Equal(t, models.StatusInProgress, complaints.find(bson.M{"id": "CMP002"}).Status)
}

// TestAssignWorkerUnavailable kiểm tra nhân viên bị khóa, không tồn tại
// hoặc sai phòng ban đều không được giao việc
func TestAssignWorkerUnavailable(t *testing.T) {
	service, _, _, _ := newTestComplaintService()

	cases := []struct {
		name  string
		input complaintdto.AssignInput
	}{
		{"nhân viên bị khóa", complaintdto.AssignInput{WorkerID: "worker003", Department: "Public Works"}},
		{"nhân viên không tồn tại", complaintdto.AssignInput{WorkerID: "worker999", Department: "Public Works"}},
		{"sai phòng ban", complaintdto.AssignInput{WorkerID: "worker001", Department: "Waste Management"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Assign(context.Background(), "CMP002", &tc.input)
			assert.ErrorIs(t, err, common.ErrWorkerUnavailable)
		})
	}
}

// TestAssignMissingComplaint kiểm tra giao việc trên phản ánh không tồn tại
func TestAssignMissingComplaint(t *testing.T) {
	service, _, _, _ := newTestComplaintService()

	_, err := service.Assign(context.Background(), "CMP999",
		&complaintdto.AssignInput{WorkerID: "worker002", Department: "Waste Management"})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

// TestReassignDecrementsPreviousWorker kiểm tra giao lại: nhân viên cũ
// được giảm số việc trước khi nhân viên mới được tăng
func TestReassignDecrementsPreviousWorker(t *testing.T) {
	service, _, workers, _ := newTestComplaintService()

	// CMP001 đang thuộc worker001, giao lại cho worker002
	_, err := service.Assign(context.Background(), "CMP001",
		&complaintdto.AssignInput{WorkerID: "worker002", Department: "Waste Management"})
	require.NoError(t, err)

	assert.Equal(t, int64(0), workers.workers["worker001"].AssignedComplaints,
		"Nhân viên cũ phải được giảm số việc")
	assert.Equal(t, int64(1), workers.workers["worker002"].AssignedComplaints)
}

// TestDecrementNeverGoesNegative kiểm tra bộ đếm đã ở 0 thì giữ nguyên thay vì âm
func TestDecrementNeverGoesNegative(t *testing.T) {
	service, _, workers, _ := newTestComplaintService()
	workers.workers["worker001"].AssignedComplaints = 0

	_, err := service.Assign(context.Background(), "CMP001",
		&complaintdto.AssignInput{WorkerID: "worker002", Department: "Waste Management"})
	require.NoError(t, err, "Dữ liệu bộ đếm không nhất quán không được chặn việc giao lại")

	assert.Equal(t, int64(0), workers.workers["worker001"].AssignedComplaints,
		"Bộ đếm không bao giờ xuống dưới 0")
}

// TestTransferComplaint kiểm tra chuyển phòng ban: gỡ nhân viên cũ,
// đưa trạng thái về Pending chờ giao lại
func TestTransferComplaint(t *testing.T) {
	service, _, workers, _ := newTestComplaintService()

	updated, err := service.Transfer(context.Background(), "CMP001",
		&complaintdto.TransferInput{Department: "Water Supply"})
	require.NoError(t, err)

	assert.Equal(t, "Water Supply", updated.Department)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Nil(t, updated.AssignedTo, "Chuyển phòng ban phải gỡ nhân viên đang xử lý")
	assert.Nil(t, updated.AssignedWorker)
	assert.Equal(t, int64(0), workers.workers["worker001"].AssignedComplaints)
}

// TestTransferInvalidDepartment kiểm tra chuyển sang phòng ban không tồn tại
func TestTransferInvalidDepartment(t *testing.T) {
	service, _, _, _ := newTestComplaintService()

	_, err := service.Transfer(context.Background(), "CMP001",
		&complaintdto.TransferInput{Department: "Không tồn tại"})
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
}

// TestUpdateStatusOutOfScope kiểm tra Lower Admin không được cập nhật
// phản ánh chưa giao cho mình: trả về NotFound như thể không tồn tại
func TestUpdateStatusOutOfScope(t *testing.T) {
	service, _, _, _ := newTestComplaintService()

	_, err := service.UpdateStatus(context.Background(), lowerAdmin("worker002"), "CMP001",
		&complaintdto.StatusUpdateInput{Status: models.StatusCompleted})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

// TestCompleteCascade kiểm tra Lower Admin hoàn thành phản ánh:
// bộ đếm của nhân viên và người dân cập nhật đúng một lần
func TestCompleteCascade(t *testing.T) {
	service, _, workers, citizens := newTestComplaintService()

	updated, err := service.UpdateStatus(context.Background(), lowerAdmin("worker001"), "CMP001",
		&complaintdto.StatusUpdateInput{
			Status:      models.StatusCompleted,
			Remarks:     "Đã trải lại mặt đường",
			ProofImages: []string{"/uploads/truoc.jpg", "/uploads/sau.jpg"},
		})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, "Đã trải lại mặt đường", updated.Remarks)
	assert.Equal(t, []string{"/uploads/truoc.jpg", "/uploads/sau.jpg"}, updated.ProofImages)

	assert.Equal(t, int64(1), workers.workers["worker001"].CompletedComplaints)
	assert.Equal(t, int64(0), workers.workers["worker001"].AssignedComplaints)
	assert.Equal(t, int64(1), citizens.citizens["USER001"].ResolvedComplaints)
}

// TestCompleteCascadeExactlyOnce kiểm tra cập nhật lại phản ánh đã Completed
// không cộng dồn bộ đếm lần nữa
func TestCompleteCascadeExactlyOnce(t *testing.T) {
	service, _, workers, citizens := newTestComplaintService()
	actor := lowerAdmin("worker001")

	_, err := service.UpdateStatus(context.Background(), actor, "CMP001",
		&complaintdto.StatusUpdateInput{Status: models.StatusCompleted})
	require.NoError(t, err)

	_, err = service.UpdateStatus(context.Background(), actor, "CMP001",
		&complaintdto.StatusUpdateInput{Status: models.StatusCompleted, Remarks: "Bổ sung ghi chú"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), workers.workers["worker001"].CompletedComplaints,
		"Bộ đếm hoàn thành chỉ được cộng một lần")
	assert.Equal(t, int64(1), citizens.citizens["USER001"].ResolvedComplaints)
}

// TestCompleteByMainAdminNoCascade kiểm tra Main Admin đổi trạng thái
// không chạm vào bộ đếm của nhân viên
func TestCompleteByMainAdminNoCascade(t *testing.T) {
	service, _, workers, citizens := newTestComplaintService()

	_, err := service.UpdateStatus(context.Background(), mainAdmin(), "CMP001",
		&complaintdto.StatusUpdateInput{Status: models.StatusCompleted})
	require.NoError(t, err)

	assert.Equal(t, int64(0), workers.workers["worker001"].CompletedComplaints)
	assert.Equal(t, int64(1), workers.workers["worker001"].AssignedComplaints)
	assert.Equal(t, int64(0), citizens.citizens["USER001"].ResolvedComplaints)
}

// TestCreateComplaint kiểm tra tạo phản ánh mới: mã CMP tuần tự,
// thông tin người dân được gắn kèm và totalComplaints tăng 1
func TestCreateComplaint(t *testing.T) {
	service, _, _, citizens := newTestComplaintService()

	created, err := service.Create(context.Background(), &complaintdto.CreateInput{
		Title:       "Mất nước ba ngày",
		Description: "Khu phố 4 mất nước từ thứ hai",
		Category:    "Water Supply",
		Department:  "Water Supply",
		Priority:    models.PriorityHigh,
		UserID:      "USER001",
	})
	require.NoError(t, err)

	assert.Equal(t, "CMP006", created.ComplaintID, "Phản ánh đầu tiên sau seed phải mang mã CMP006")
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "Ramesh Kumar", created.UserName)
	assert.Equal(t, "ramesh@example.com", created.UserEmail)
	assert.Equal(t, int64(3), citizens.citizens["USER001"].TotalComplaints)
}

// TestCreateComplaintValidation kiểm tra phòng ban sai và người dân không tồn tại
func TestCreateComplaintValidation(t *testing.T) {
	service, _, _, _ := newTestComplaintService()

	_, err := service.Create(context.Background(), &complaintdto.CreateInput{
		Title: "x", Description: "x", Category: "Other",
		Department: "Không tồn tại", Priority: models.PriorityLow, UserID: "USER001",
	})
	require.Error(t, err, "Phòng ban không hợp lệ phải bị từ chối")

	_, err = service.Create(context.Background(), &complaintdto.CreateInput{
		Title: "x", Description: "x", Category: "Other",
		Department: "Public Works", Priority: models.PriorityLow, UserID: "USER999",
	})
	assert.True(t, errors.Is(err, common.ErrNotFound), "Người dân không tồn tại phải trả về NotFound")
}

// TestListScopedForLowerAdmin kiểm tra danh sách của Lower Admin
// chỉ gồm phản ánh được giao cho họ
func TestListScopedForLowerAdmin(t *testing.T) {
	service, _, _, _ := newTestComplaintService()

	result, err := service.List(context.Background(), lowerAdmin("worker001"), nil, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Complaints, 1)
	assert.Equal(t, "CMP001", result.Complaints[0].ComplaintID)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, int64(1), result.Pages)

	all, err := service.List(context.Background(), mainAdmin(), nil, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total, "Main Admin phải thấy toàn bộ phản ánh")
}
