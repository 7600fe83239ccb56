package global

import (
	"creator_panel/config"
	"creator_panel/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	// People Collections (hồ sơ người nhận tiền)
	PeopleStreamers   string // Tên collection cho streamer
	PeopleCreators    string // Tên collection cho người sáng tạo nội dung
	PeopleVoiceActors string // Tên collection cho giọng đọc
	PeopleTeamMembers string // Tên collection cho thành viên đội sản xuất

	// Content Production Collections
	ContentRegistry string // Tên collection cho sổ đăng ký nội dung sản xuất

	// Voiceover Pipeline Collections
	VoiceoverScripts   string // Tên collection cho kịch bản lồng tiếng
	VoiceoverEditPacks string // Tên collection cho gói bàn giao dựng phim

	// Finance Collections
	FinanceStreams      string // Tên collection cho dòng doanh thu stream
	FinancePayments     string // Tên collection cho khoản phải trả streamer
	FinanceTeamPayments string // Tên collection cho khoản phải trả thành viên đội
	FinanceRecords      string // Tên collection cho bút toán thu chi thủ công

	// Audit Collections
	AuditLogs string // Tên collection cho nhật ký thao tác
}

// Các biến toàn cục
var Validate *validator.Validate                                                // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                               // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                  // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)      // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
