// Package auditsvc - Service nhật ký thao tác (audit_logs).
package auditsvc

import (
	"context"
	"fmt"
	"time"

	auditmodels "creator_panel/internal/api/audit/models"
	basesvc "creator_panel/internal/api/base/service"
	"creator_panel/internal/common"
	"creator_panel/internal/global"
	"creator_panel/internal/logger"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// AuditLogService ghi và truy vấn nhật ký thao tác.
type AuditLogService struct {
	*basesvc.BaseServiceMongoImpl[auditmodels.AuditLog]
}

// NewAuditLogService tạo AuditLogService mới.
func NewAuditLogService() (*AuditLogService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AuditLogs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.AuditLogs, common.ErrNotFound)
	}
	return &AuditLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[auditmodels.AuditLog](coll),
	}, nil
}

// Record ghi một bản ghi nhật ký. Best-effort: lỗi ghi DB chỉ được log ra audit logger,
// không trả về cho caller để không làm hỏng thao tác chính.
func (s *AuditLogService) Record(ctx context.Context, entry auditmodels.AuditLog) {
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().UnixMilli()
	}

	// Ghi song song ra audit log channel (file) để có dấu vết ngay cả khi DB lỗi
	logger.GetAuditLogger().WithFields(logrus.Fields{
		"actor_id":    entry.ActorID,
		"actor_role":  entry.ActorRole,
		"action":      entry.Action,
		"entity_type": entry.EntityType,
		"entity_id":   entry.EntityID,
		"details":     entry.Details,
	}).Info("audit")

	if _, err := s.InsertOne(ctx, entry); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"action":      entry.Action,
			"entity_type": entry.EntityType,
			"entity_id":   entry.EntityID,
			"error":       err.Error(),
		}).Warn("Không ghi được audit log vào database")
	}
}

// FindByEntity trả về nhật ký của một entity (mới nhất trước).
func (s *AuditLogService) FindByEntity(ctx context.Context, entityType, entityID string, limit int64) ([]auditmodels.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	filter := bson.M{"entityType": entityType, "entityId": entityID}
	opts := mongoopts.Find().SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}
