package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EditPack là gói bàn giao cho editor, quan hệ 1:1 với một kịch bản đã được producer duyệt.
// Token là duy nhất toàn cục; editor truy cập qua link chứa token, không cần đăng nhập.
type EditPack struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	VoiceoverID primitive.ObjectID `json:"voiceoverId" bson:"voiceoverId" index:"unique"`
	Token       string             `json:"token" bson:"token" index:"unique"`

	// Hết hạn = thời điểm tạo + số ngày cấu hình (mặc định 7 ngày).
	ExpiresAt int64 `json:"expiresAt" bson:"expiresAt"` // Unix ms

	// Ghi chú và tài nguyên editor đính kèm trong quá trình dựng.
	EditorNote string   `json:"editorNote,omitempty" bson:"editorNote,omitempty"`
	AssetLinks []string `json:"assetLinks,omitempty" bson:"assetLinks,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// IsExpired kiểm tra gói bàn giao đã quá hạn tại thời điểm nowMs chưa.
func (p *EditPack) IsExpired(nowMs int64) bool {
	return p.ExpiresAt > 0 && nowMs > p.ExpiresAt
}
