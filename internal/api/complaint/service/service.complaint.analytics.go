package complaintsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	models "github.com/Ujju04/smartjharkhand/internal/api/complaint/models"
)

// millisPerDay dùng để quy đổi thời gian xử lý từ mili giây sang ngày
const millisPerDay = float64(24 * 60 * 60 * 1000)

// DepartmentStatsPipeline dựng pipeline nhóm phản ánh theo phòng ban,
// đếm từng trạng thái bằng $cond trong một lần quét.
func DepartmentStatsPipeline() []bson.M {
	countByStatus := func(status string) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{
			bson.M{"$eq": bson.A{"$status", status}}, 1, 0,
		}}}
	}

	return []bson.M{
		{"$group": bson.M{
			"_id":        "$department",
			"total":      bson.M{"$sum": 1},
			"pending":    countByStatus(models.StatusPending),
			"inProgress": countByStatus(models.StatusInProgress),
			"completed":  countByStatus(models.StatusCompleted),
		}},
		{"$sort": bson.M{"_id": 1}},
	}
}

// ResolutionTimePipeline dựng pipeline tính thời gian xử lý trung bình (mili giây)
// của các phản ánh đã hoàn thành, dựa trên khoảng cách createdAt và updatedAt.
func ResolutionTimePipeline() []bson.M {
	return []bson.M{
		{"$match": bson.M{"status": models.StatusCompleted}},
		{"$group": bson.M{
			"_id":       nil,
			"avgMillis": bson.M{"$avg": bson.M{"$subtract": bson.A{"$updatedAt", "$createdAt"}}},
		}},
	}
}

// BuildDepartmentStats chuyển kết quả aggregate thành danh sách thống kê phòng ban
func BuildDepartmentStats(rows []bson.M) []models.DepartmentStats {
	stats := make([]models.DepartmentStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, models.DepartmentStats{
			Department: asString(row["_id"]),
			Total:      asInt64(row["total"]),
			Pending:    asInt64(row["pending"]),
			InProgress: asInt64(row["inProgress"]),
			Completed:  asInt64(row["completed"]),
		})
	}
	return stats
}

// FormatResolutionDuration định dạng thời gian xử lý trung bình dạng "N.N days".
// Chưa có phản ánh nào hoàn thành thì trả về "N/A".
func FormatResolutionDuration(avgMillis float64, hasCompleted bool) string {
	if !hasCompleted {
		return "N/A"
	}
	return fmt.Sprintf("%.1f days", avgMillis/millisPerDay)
}

// Analytics tổng hợp số liệu toàn hệ thống cho dashboard của Main Admin
func (s *ComplaintService) Analytics(ctx context.Context) (*models.Analytics, error) {
	total, err := s.complaints.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	pending, err := s.complaints.CountDocuments(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		return nil, err
	}
	inProgress, err := s.complaints.CountDocuments(ctx, bson.M{"status": models.StatusInProgress})
	if err != nil {
		return nil, err
	}
	completed, err := s.complaints.CountDocuments(ctx, bson.M{"status": models.StatusCompleted})
	if err != nil {
		return nil, err
	}
	critical, err := s.complaints.CountDocuments(ctx, bson.M{"priority": models.PriorityCritical})
	if err != nil {
		return nil, err
	}

	deptRows, err := s.complaints.Aggregate(ctx, DepartmentStatsPipeline())
	if err != nil {
		return nil, err
	}

	avgRows, err := s.complaints.Aggregate(ctx, ResolutionTimePipeline())
	if err != nil {
		return nil, err
	}
	avgMillis := float64(0)
	hasCompleted := false
	if len(avgRows) > 0 {
		if v, ok := avgRows[0]["avgMillis"]; ok && v != nil {
			avgMillis = asFloat64(v)
			hasCompleted = true
		}
	}

	return &models.Analytics{
		Total:                 total,
		Pending:               pending,
		InProgress:            inProgress,
		Completed:             completed,
		Critical:              critical,
		DepartmentStats:       BuildDepartmentStats(deptRows),
		AverageResolutionTime: FormatResolutionDuration(avgMillis, hasCompleted),
	}, nil
}

// asString/asInt64/asFloat64 đọc giá trị từ bson.M, vốn có thể về dưới
// nhiều kiểu số khác nhau tùy driver giải mã.
func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func asFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}
