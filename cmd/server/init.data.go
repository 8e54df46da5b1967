package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	authmodels "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	basesvc "github.com/Ujju04/smartjharkhand/internal/api/base/service"
	citizenmodels "github.com/Ujju04/smartjharkhand/internal/api/citizen/models"
	complaintmodels "github.com/Ujju04/smartjharkhand/internal/api/complaint/models"
	countersvc "github.com/Ujju04/smartjharkhand/internal/api/counter/service"
	"github.com/Ujju04/smartjharkhand/internal/global"
	"github.com/Ujju04/smartjharkhand/internal/logger"
)

// InitDefaultData nạp dữ liệu mẫu khi chạy ở chế độ INITMODE.
// Counter luôn được seed (không ghi đè giá trị đã có); fixture chỉ nạp
// khi collection tương ứng đang rỗng.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.ServerConfig.InitMode {
		log.Info("INITMODE tắt, bỏ qua nạp dữ liệu mẫu")
		return
	}

	ctx := context.Background()

	counterService, err := countersvc.NewCounterService()
	if err != nil {
		log.Fatalf("Failed to initialize counter service: %v", err)
	}

	// Seed counter khớp với số bản ghi fixture của từng collection
	seeds := map[string]int64{
		global.MongoDB_ColNames.Users:      5,
		global.MongoDB_ColNames.Complaints: 5,
		global.MongoDB_ColNames.AdminUsers: 4,
	}
	for name, value := range seeds {
		if err := counterService.Seed(ctx, name, value); err != nil {
			log.Fatalf("Failed to seed counter %s: %v", name, err)
		}
	}
	log.Info("Seeded sequence counters")

	if err := seedAdminUsers(ctx); err != nil {
		log.Fatalf("Failed to seed admin users: %v", err)
	}
	if err := seedCitizens(ctx); err != nil {
		log.Fatalf("Failed to seed citizens: %v", err)
	}
	if err := seedComplaints(ctx); err != nil {
		log.Fatalf("Failed to seed complaints: %v", err)
	}

	log.Info("Default data initialized")
}

// seedAdminUsers nạp tài khoản quản trị mặc định: một Main Admin và ba nhân viên.
// Bộ đếm assignedComplaints/completedComplaints khớp với fixture complaints.
func seedAdminUsers(ctx context.Context) error {
	collection, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.AdminUsers)
	store := basesvc.NewBaseServiceMongo[authmodels.AdminUser](collection)

	count, err := store.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.GetAppLogger().Info("Collection admin_users đã có dữ liệu, bỏ qua fixture")
		return nil
	}

	adminPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	workerPassword, err := bcrypt.GenerateFromPassword([]byte("worker123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	fixtures := []authmodels.AdminUser{
		{
			WorkerID: "admin001", Username: "admin", Password: string(adminPassword),
			Name: "Rajesh Verma", Role: authmodels.RoleMainAdmin,
			Email: "admin@smartjharkhand.gov.in", Phone: "9430100001", IsActive: true,
		},
		{
			WorkerID: "worker001", Username: "worker1", Password: string(workerPassword),
			Name: "Mike Wilson", Role: authmodels.RoleLowerAdmin, Department: "Public Works",
			Email: "mike.wilson@smartjharkhand.gov.in", Phone: "9430100002", IsActive: true,
			AssignedComplaints: 1, CompletedComplaints: 1,
		},
		{
			WorkerID: "worker002", Username: "worker2", Password: string(workerPassword),
			Name: "Lisa Chen", Role: authmodels.RoleLowerAdmin, Department: "Waste Management",
			Email: "lisa.chen@smartjharkhand.gov.in", Phone: "9430100003", IsActive: true,
			AssignedComplaints: 1,
		},
		{
			WorkerID: "worker003", Username: "worker3", Password: string(workerPassword),
			Name: "David Brown", Role: authmodels.RoleLowerAdmin, Department: "Electricity",
			Email: "david.brown@smartjharkhand.gov.in", Phone: "9430100004", IsActive: true,
		},
	}

	if _, err := store.InsertMany(ctx, fixtures); err != nil {
		return err
	}
	logger.GetAppLogger().Infof("Seeded %d admin users", len(fixtures))
	return nil
}

// seedCitizens nạp danh bạ người dân mẫu USER001..USER005
func seedCitizens(ctx context.Context) error {
	collection, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	store := basesvc.NewBaseServiceMongo[citizenmodels.Citizen](collection)

	count, err := store.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.GetAppLogger().Info("Collection users đã có dữ liệu, bỏ qua fixture")
		return nil
	}

	fixtures := []citizenmodels.Citizen{
		{CitizenID: "USER001", Name: "Ramesh Kumar", Email: "ramesh.kumar@example.com", Phone: "9430200001",
			Address: "Lalpur, Ranchi", JoinedDate: "2025-11-03", TotalComplaints: 1},
		{CitizenID: "USER002", Name: "Priya Sharma", Email: "priya.sharma@example.com", Phone: "9430200002",
			Address: "Sakchi, Jamshedpur", JoinedDate: "2025-11-12", TotalComplaints: 1},
		{CitizenID: "USER003", Name: "Amit Singh", Email: "amit.singh@example.com", Phone: "9430200003",
			Address: "Sector 4, Bokaro", JoinedDate: "2025-12-01", TotalComplaints: 1, ResolvedComplaints: 1},
		{CitizenID: "USER004", Name: "Sunita Devi", Email: "sunita.devi@example.com", Phone: "9430200004",
			Address: "Hirapur, Dhanbad", JoinedDate: "2026-01-18", TotalComplaints: 1},
		{CitizenID: "USER005", Name: "Vikash Oraon", Email: "vikash.oraon@example.com", Phone: "9430200005",
			Address: "Morabadi, Ranchi", JoinedDate: "2026-02-09", TotalComplaints: 1},
	}

	if _, err := store.InsertMany(ctx, fixtures); err != nil {
		return err
	}
	logger.GetAppLogger().Infof("Seeded %d citizens", len(fixtures))
	return nil
}

// seedComplaints nạp phản ánh mẫu CMP001..CMP005 với trạng thái và phân công
// khớp bộ đếm trong fixture admin users và citizens
func seedComplaints(ctx context.Context) error {
	collection, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Complaints)
	store := basesvc.NewBaseServiceMongo[complaintmodels.Complaint](collection)

	count, err := store.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.GetAppLogger().Info("Collection complaints đã có dữ liệu, bỏ qua fixture")
		return nil
	}

	worker1 := "worker001"
	worker1Name := "Mike Wilson"
	worker2 := "worker002"
	worker2Name := "Lisa Chen"

	fixtures := []complaintmodels.Complaint{
		{
			ComplaintID: "CMP001", Title: "Ổ gà lớn trên đường chính",
			Description: "Đoạn đường trước chợ Lalpur có nhiều ổ gà gây nguy hiểm cho xe máy.",
			Category: "Roads & Infrastructure", Department: "Public Works",
			Priority: complaintmodels.PriorityHigh, Status: complaintmodels.StatusInProgress,
			Location: "Lalpur, Ranchi", UserID: "USER001", UserName: "Ramesh Kumar",
			UserEmail: "ramesh.kumar@example.com", AssignedTo: &worker1, AssignedWorker: &worker1Name,
		},
		{
			ComplaintID: "CMP002", Title: "Rác không được thu gom một tuần",
			Description: "Bãi rác khu Sakchi ứ đọng, bốc mùi ảnh hưởng cả khu phố.",
			Category: "Sanitation & Waste", Department: "Waste Management",
			Priority: complaintmodels.PriorityMedium, Status: complaintmodels.StatusInProgress,
			Location: "Sakchi, Jamshedpur", UserID: "USER002", UserName: "Priya Sharma",
			UserEmail: "priya.sharma@example.com", AssignedTo: &worker2, AssignedWorker: &worker2Name,
		},
		{
			ComplaintID: "CMP003", Title: "Vỉa hè bị sụt lún",
			Description: "Vỉa hè trước trường học Sector 4 sụt lún sau mưa lớn.",
			Category: "Roads & Infrastructure", Department: "Public Works",
			Priority: complaintmodels.PriorityMedium, Status: complaintmodels.StatusCompleted,
			Location: "Sector 4, Bokaro", UserID: "USER003", UserName: "Amit Singh",
			UserEmail: "amit.singh@example.com", AssignedTo: &worker1, AssignedWorker: &worker1Name,
			Remarks: "Đã sửa xong và nghiệm thu",
		},
		{
			ComplaintID: "CMP004", Title: "Mất điện liên tục khu Hirapur",
			Description: "Khu Hirapur mất điện 4-5 lần mỗi ngày trong tuần qua.",
			Category: "Electricity", Department: "Electricity",
			Priority: complaintmodels.PriorityCritical, Status: complaintmodels.StatusPending,
			Location: "Hirapur, Dhanbad", UserID: "USER004", UserName: "Sunita Devi",
			UserEmail: "sunita.devi@example.com",
		},
		{
			ComplaintID: "CMP005", Title: "Nước máy đục màu vàng",
			Description: "Nước máy khu Morabadi đục màu vàng từ ba ngày nay.",
			Category: "Water Supply", Department: "Water Supply",
			Priority: complaintmodels.PriorityLow, Status: complaintmodels.StatusPending,
			Location: "Morabadi, Ranchi", UserID: "USER005", UserName: "Vikash Oraon",
			UserEmail: "vikash.oraon@example.com",
		},
	}

	if _, err := store.InsertMany(ctx, fixtures); err != nil {
		return err
	}
	logger.GetAppLogger().Infof("Seeded %d complaints", len(fixtures))
	return nil
}
