package voiceoversvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	basesvc "creator_panel/internal/api/base/service"
	voiceovermodels "creator_panel/internal/api/voiceover/models"
	"creator_panel/internal/common"
	"creator_panel/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EditPackService xử lý logic cho gói bàn giao dựng phim
type EditPackService struct {
	*basesvc.BaseServiceMongoImpl[voiceovermodels.EditPack]
}

// NewEditPackService tạo mới EditPackService
func NewEditPackService() (*EditPackService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.VoiceoverEditPacks)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.VoiceoverEditPacks)
	}
	return &EditPackService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[voiceovermodels.EditPack](collection),
	}, nil
}

// FindByVoiceoverID tìm gói bàn giao theo id kịch bản. Trả về nil nếu chưa có.
func (s *EditPackService) FindByVoiceoverID(ctx context.Context, voiceoverID primitive.ObjectID) (*voiceovermodels.EditPack, error) {
	pack, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"voiceoverId": voiceoverID}, nil)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pack, nil
}

// CreateForScript tạo gói bàn giao cho một kịch bản nếu chưa có (idempotent).
// Token được sinh lại tối đa tokenMaxAttempts lần khi trùng với token đã tồn tại;
// kiểm tra trùng chạy trên toàn bộ không gian token trước khi insert.
func (s *EditPackService) CreateForScript(ctx context.Context, voiceoverID primitive.ObjectID) (*voiceovermodels.EditPack, error) {
	existing, err := s.FindByVoiceoverID(ctx, voiceoverID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	var token string
	for attempt := 0; attempt < tokenMaxAttempts; attempt++ {
		candidate, err := GenerateEditPackToken()
		if err != nil {
			return nil, err
		}
		count, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"token": candidate})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			token = candidate
			break
		}
	}
	if token == "" {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không sinh được token duy nhất cho gói bàn giao", common.StatusInternalServerError, nil)
	}

	now := time.Now()
	ttlDays := global.MongoDB_ServerConfig.EditPackTTLDays
	if ttlDays <= 0 {
		ttlDays = 7
	}
	pack := voiceovermodels.EditPack{
		ID:          primitive.NewObjectID(),
		VoiceoverID: voiceoverID,
		Token:       token,
		ExpiresAt:   now.AddDate(0, 0, ttlDays).UnixMilli(),
		CreatedAt:   now.UnixMilli(),
		UpdatedAt:   now.UnixMilli(),
	}
	inserted, err := s.BaseServiceMongoImpl.InsertOne(ctx, pack)
	if err != nil {
		// Thua race với một lần tạo song song: unique index trên voiceoverId,
		// đọc lại bản ghi thắng cuộc.
		if IsEditPackRace(err) {
			winner, findErr := s.FindByVoiceoverID(ctx, voiceoverID)
			if findErr == nil && winner != nil {
				return winner, nil
			}
		}
		return nil, err
	}
	return &inserted, nil
}

// IsEditPackRace nhận diện lỗi insert do thua race tạo gói bàn giao: unique index
// trên voiceoverId (hoặc token) từ chối bản ghi thứ hai bằng duplicate key.
func IsEditPackRace(err error) bool {
	if err == nil {
		return false
	}
	return mongo.IsDuplicateKeyError(err) || errors.Is(err, common.ErrMongoDuplicate)
}

// ShareURL dựng link chia sẻ gói bàn giao từ cấu hình EditPackBaseURL.
// Trả về chuỗi rỗng nếu chưa cấu hình base URL.
func (s *EditPackService) ShareURL(pack *voiceovermodels.EditPack) string {
	base := strings.TrimRight(global.MongoDB_ServerConfig.EditPackBaseURL, "/")
	if base == "" || pack == nil {
		return ""
	}
	return base + "/" + pack.Token
}

// GetByToken tra cứu gói bàn giao theo token chia sẻ.
// Token không tồn tại trả NotFound; token quá hạn trả Gone.
func (s *EditPackService) GetByToken(ctx context.Context, token string) (*voiceovermodels.EditPack, error) {
	pack, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		return nil, common.ErrNotFound
	}
	if pack.IsExpired(time.Now().UnixMilli()) {
		return nil, common.NewError(common.ErrCodeBusinessState, "Link bàn giao đã hết hạn", common.StatusGone, nil)
	}
	return &pack, nil
}

// UpdateNotesByToken cập nhật ghi chú và tài nguyên của editor qua token chia sẻ.
func (s *EditPackService) UpdateNotesByToken(ctx context.Context, token string, editorNote string, assetLinks []string) (*voiceovermodels.EditPack, error) {
	pack, err := s.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{"updatedAt": time.Now().UnixMilli()}
	if editorNote != "" {
		set["editorNote"] = editorNote
	}
	if assetLinks != nil {
		set["assetLinks"] = assetLinks
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, pack.ID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
