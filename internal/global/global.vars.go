package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ujju04/smartjharkhand/config"
	"github.com/Ujju04/smartjharkhand/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	AdminUsers string // Tên collection cho tài khoản quản trị (Main Admin / Lower Admin)
	Users      string // Tên collection cho người dân gửi phản ánh
	Complaints string // Tên collection cho phản ánh
	Counters   string // Tên collection cho bộ đếm sinh mã tuần tự
}

// Các biến toàn cục
var Validate *validator.Validate              // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client             // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration        // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName   // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
