package main

import (
	"creator_panel/config"
	"creator_panel/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {

	logrus.Info("Initialized registry") // Ghi log thông báo đã khởi tạo registry

	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.PeopleStreamers,
		global.MongoDB_ColNames.PeopleCreators,
		global.MongoDB_ColNames.PeopleVoiceActors,
		global.MongoDB_ColNames.PeopleTeamMembers,
		global.MongoDB_ColNames.ContentRegistry,
		global.MongoDB_ColNames.VoiceoverScripts,
		global.MongoDB_ColNames.VoiceoverEditPacks,
		global.MongoDB_ColNames.FinanceStreams,
		global.MongoDB_ColNames.FinancePayments,
		global.MongoDB_ColNames.FinanceTeamPayments,
		global.MongoDB_ColNames.FinanceRecords,
		global.MongoDB_ColNames.AuditLogs,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}

	}

	return nil
}
