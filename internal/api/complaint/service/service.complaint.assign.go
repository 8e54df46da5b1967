package complaintsvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	basesvc "github.com/Ujju04/smartjharkhand/internal/api/base/service"
	complaintdto "github.com/Ujju04/smartjharkhand/internal/api/complaint/dto"
	models "github.com/Ujju04/smartjharkhand/internal/api/complaint/models"
	"github.com/Ujju04/smartjharkhand/internal/common"
	"github.com/Ujju04/smartjharkhand/internal/global"
	"github.com/Ujju04/smartjharkhand/internal/logger"
)

// Assign giao phản ánh cho một nhân viên xử lý và chuyển trạng thái sang "In Progress".
// Nhân viên phải đang hoạt động và thuộc đúng phòng ban được giao.
// Nếu phản ánh đã được giao trước đó, nhân viên cũ được giảm số việc trước khi giao lại.
func (s *ComplaintService) Assign(ctx context.Context, complaintID string, input *complaintdto.AssignInput) (*models.Complaint, error) {
	complaint, err := s.complaints.FindOne(ctx, bson.M{"id": complaintID}, nil)
	if err != nil {
		return nil, err
	}

	worker, err := s.workers.FindOne(ctx, bson.M{"id": input.WorkerID, "isActive": true}, nil)
	if err != nil || worker.Department != input.Department {
		return nil, common.ErrWorkerUnavailable
	}

	if complaint.AssignedTo != nil {
		s.decrementAssigned(ctx, *complaint.AssignedTo)
	}

	updated, err := s.complaints.UpdateOne(ctx, bson.M{"id": complaintID}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"assignedTo":     worker.WorkerID,
			"assignedWorker": worker.Name,
			"department":     input.Department,
			"status":         models.StatusInProgress,
		},
	}, nil)
	if err != nil {
		return nil, err
	}

	_, err = s.workers.UpdateOne(ctx, bson.M{"id": worker.WorkerID},
		&basesvc.UpdateData{Inc: map[string]interface{}{"assignedComplaints": 1}}, nil)
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"complaintId": complaintID,
		"workerId":    worker.WorkerID,
		"department":  input.Department,
	}).Info("Giao phản ánh cho nhân viên")

	return &updated, nil
}

// Transfer chuyển phản ánh sang phòng ban khác, gỡ nhân viên đang xử lý (nếu có)
// và đưa trạng thái về "Pending" chờ giao lại.
func (s *ComplaintService) Transfer(ctx context.Context, complaintID string, input *complaintdto.TransferInput) (*models.Complaint, error) {
	if !models.IsValidDepartment(input.Department) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Phòng ban không hợp lệ", common.StatusBadRequest, nil)
	}

	complaint, err := s.complaints.FindOne(ctx, bson.M{"id": complaintID}, nil)
	if err != nil {
		return nil, err
	}

	if complaint.AssignedTo != nil {
		s.decrementAssigned(ctx, *complaint.AssignedTo)
	}

	updated, err := s.complaints.UpdateOne(ctx, bson.M{"id": complaintID}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"department":     input.Department,
			"assignedTo":     nil,
			"assignedWorker": nil,
			"status":         models.StatusPending,
		},
	}, nil)
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"complaintId": complaintID,
		"department":  input.Department,
	}).Info("Chuyển phản ánh sang phòng ban khác")

	return &updated, nil
}

// UpdateStatus cập nhật tiến độ xử lý trong phạm vi của worker.
// Khi một Lower Admin chuyển phản ánh sang "Completed" lần đầu, bộ đếm
// của nhân viên và người dân được cập nhật đúng một lần.
func (s *ComplaintService) UpdateStatus(ctx context.Context, worker *authmodels.AdminUser, complaintID string, input *complaintdto.StatusUpdateInput) (*models.Complaint, error) {
	filter := MergeFilter(bson.M{"id": complaintID}, ScopeFilter(worker.Role, worker.WorkerID))

	existing, err := s.complaints.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": input.Status},
	}
	if input.Remarks != "" {
		update.Set["remarks"] = input.Remarks
	}
	if len(input.ProofImages) > 0 {
		update.Push = map[string]interface{}{
			"proofImages": bson.M{"$each": input.ProofImages},
		}
	}

	updated, err := s.complaints.UpdateOne(ctx, filter, update, nil)
	if err != nil {
		return nil, err
	}

	completing := input.Status == models.StatusCompleted &&
		existing.Status != models.StatusCompleted &&
		worker.Role == authmodels.RoleLowerAdmin
	if completing {
		s.applyCompletionCounters(ctx, worker.WorkerID, existing.UserID)
	}

	return &updated, nil
}

// applyCompletionCounters ghi nhận một phản ánh hoàn thành lên bộ đếm
// của nhân viên xử lý và người dân gửi phản ánh
func (s *ComplaintService) applyCompletionCounters(ctx context.Context, workerID string, citizenID string) {
	_, err := s.workers.UpdateOne(ctx, bson.M{"id": workerID},
		&basesvc.UpdateData{Inc: map[string]interface{}{"completedComplaints": 1}}, nil)
	if err != nil {
		logger.WithCollection(global.MongoDB_ColNames.AdminUsers).WithError(err).
			Warn("Không tăng được completedComplaints cho nhân viên " + workerID)
	}

	s.decrementAssigned(ctx, workerID)

	_, err = s.citizens.UpdateOne(ctx, bson.M{"id": citizenID},
		&basesvc.UpdateData{Inc: map[string]interface{}{"resolvedComplaints": 1}}, nil)
	if err != nil {
		logger.WithCollection(global.MongoDB_ColNames.Users).WithError(err).
			Warn("Không tăng được resolvedComplaints cho người dân " + citizenID)
	}
}

// decrementAssigned giảm assignedComplaints của nhân viên đi 1, không bao giờ xuống dưới 0.
// Bộ đếm đã ở 0 nghĩa là dữ liệu không nhất quán: ghi log cảnh báo và bỏ qua.
func (s *ComplaintService) decrementAssigned(ctx context.Context, workerID string) {
	filter := bson.M{"id": workerID, "assignedComplaints": bson.M{"$gt": 0}}
	_, err := s.workers.UpdateOne(ctx, filter,
		&basesvc.UpdateData{Inc: map[string]interface{}{"assignedComplaints": -1}}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			logger.WithCollection(global.MongoDB_ColNames.AdminUsers).
				Warn("Bộ đếm assignedComplaints của nhân viên " + workerID + " đã ở 0, bỏ qua giảm")
			return
		}
		logger.WithCollection(global.MongoDB_ColNames.AdminUsers).WithError(err).
			Warn("Không giảm được assignedComplaints cho nhân viên " + workerID)
	}
}
