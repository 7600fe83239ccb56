package main

import (
	"context"

	"creator_panel/config"
	"creator_panel/internal/api/actor"
	auditmodels "creator_panel/internal/api/audit/models"
	basesvc "creator_panel/internal/api/base/service"
	contentmodels "creator_panel/internal/api/content/models"
	financemodels "creator_panel/internal/api/finance/models"
	peoplemodels "creator_panel/internal/api/people/models"
	voiceovermodels "creator_panel/internal/api/voiceover/models"
	"creator_panel/internal/database"
	"creator_panel/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database

	// Đăng ký hook để tầng base service nhận biết actor ADMIN từ context
	basesvc.SetIsAdminFromContextFunc(actor.IsAdminFromContext)
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// People (hồ sơ người nhận tiền)
	global.MongoDB_ColNames.PeopleStreamers = "people_streamers"
	global.MongoDB_ColNames.PeopleCreators = "people_creators"
	global.MongoDB_ColNames.PeopleVoiceActors = "people_voice_actors"
	global.MongoDB_ColNames.PeopleTeamMembers = "people_team_members"

	// Content Production
	global.MongoDB_ColNames.ContentRegistry = "content_registry"

	// Voiceover Pipeline
	global.MongoDB_ColNames.VoiceoverScripts = "voiceover_scripts"
	global.MongoDB_ColNames.VoiceoverEditPacks = "voiceover_edit_packs"

	// Finance
	global.MongoDB_ColNames.FinanceStreams = "finance_streams"
	global.MongoDB_ColNames.FinancePayments = "finance_payments"
	global.MongoDB_ColNames.FinanceTeamPayments = "finance_team_payments"
	global.MongoDB_ColNames.FinanceRecords = "finance_records"

	// Audit
	global.MongoDB_ColNames.AuditLogs = "audit_logs"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator và đăng ký các custom validation
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index khai báo qua tag trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)

	// People
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PeopleStreamers), peoplemodels.Streamer{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PeopleCreators), peoplemodels.ContentCreator{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PeopleVoiceActors), peoplemodels.VoiceActor{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PeopleTeamMembers), peoplemodels.TeamMember{})

	// Content Production
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ContentRegistry), contentmodels.ContentItem{})

	// Voiceover Pipeline
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.VoiceoverScripts), voiceovermodels.VoiceScript{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.VoiceoverEditPacks), voiceovermodels.EditPack{})

	// Finance
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.FinanceStreams), financemodels.Stream{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.FinancePayments), financemodels.Payment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.FinanceTeamPayments), financemodels.TeamPayment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.FinanceRecords), financemodels.FinanceRecord{})

	// Audit
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AuditLogs), auditmodels.AuditLog{})

	// Index compound bổ sung không khai báo được qua tag trên model
	if err := database.CreateDomainIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create domain indexes: %v", err)
	}
	logrus.Info("Created indexes") // Ghi log thông báo đã tạo index cho các collection
}
