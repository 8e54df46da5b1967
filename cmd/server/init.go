package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Ujju04/smartjharkhand/config"
	authmodels "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	citizenmodels "github.com/Ujju04/smartjharkhand/internal/api/citizen/models"
	complaintmodels "github.com/Ujju04/smartjharkhand/internal/api/complaint/models"
	countermodels "github.com/Ujju04/smartjharkhand/internal/api/counter/models"
	"github.com/Ujju04/smartjharkhand/internal/database"
	"github.com/Ujju04/smartjharkhand/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.AdminUsers = "admin_users"
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Complaints = "complaints"
	global.MongoDB_ColNames.Counters = "counters"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator với các custom validators của domain
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo tag index của model
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AdminUsers), authmodels.AdminUser{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), citizenmodels.Citizen{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Complaints), complaintmodels.Complaint{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Counters), countermodels.Counter{})
}
