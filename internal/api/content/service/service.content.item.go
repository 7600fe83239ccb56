package contentsvc

import (
	"context"
	"fmt"
	"time"

	"creator_panel/internal/api/actor"
	auditmodels "creator_panel/internal/api/audit/models"
	auditsvc "creator_panel/internal/api/audit/service"
	basesvc "creator_panel/internal/api/base/service"
	contentmodels "creator_panel/internal/api/content/models"
	"creator_panel/internal/common"
	"creator_panel/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentItemService xử lý logic cho sổ đăng ký nội dung
type ContentItemService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.ContentItem]
	auditService *auditsvc.AuditLogService
}

// NewContentItemService tạo mới ContentItemService
func NewContentItemService() (*ContentItemService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ContentRegistry)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.ContentRegistry)
	}
	auditService, err := auditsvc.NewAuditLogService()
	if err != nil {
		return nil, fmt.Errorf("tạo AuditLogService: %w", err)
	}
	return &ContentItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.ContentItem](collection),
		auditService:         auditService,
	}, nil
}

// Transition chuyển trạng thái một mục nội dung theo yêu cầu của actor.
// Chỉ ghi trạng thái mới (và publishedAt khi sang PUBLISHED), không đụng tới field khác.
func (s *ContentItemService) Transition(ctx context.Context, a actor.Actor, itemID primitive.ObjectID, target string) (*contentmodels.ContentItem, error) {
	item, err := s.BaseServiceMongoImpl.FindOneById(ctx, itemID)
	if err != nil {
		return nil, common.ErrNotFound
	}

	if err := CanTransition(a, &item, target); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":    target,
			"updatedAt": now,
		},
	}
	if target == contentmodels.ContentStatusPublished && item.PublishedAt == 0 {
		update.Set["publishedAt"] = now
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, itemID, update)
	if err != nil {
		return nil, err
	}

	s.auditService.Record(ctx, auditmodels.AuditLog{
		ActorID:    a.ID,
		ActorName:  a.Name,
		ActorRole:  a.Role,
		Action:     "content.transition",
		EntityType: "content_item",
		EntityID:   itemID.Hex(),
		OldValue:   map[string]interface{}{"status": item.Status},
		NewValue:   map[string]interface{}{"status": target},
	})

	return &updated, nil
}
