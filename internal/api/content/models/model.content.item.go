// Package models - Mục nội dung trong sổ đăng ký sản xuất (content_registry).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của một mục nội dung trong quy trình sản xuất.
const (
	ContentStatusDraft       = "DRAFT"
	ContentStatusScriptReady = "SCRIPT_READY"
	ContentStatusVoiceReady  = "VOICE_READY"
	ContentStatusEditing     = "EDITING"
	ContentStatusReview      = "REVIEW"
	ContentStatusPublished   = "PUBLISHED"
	ContentStatusArchived    = "ARCHIVED"
)

// StatusTransitions là bảng cạnh chuyển trạng thái cho phép.
// Không có trạng thái nào là điểm chết: PUBLISHED vẫn archive được, ARCHIVED mở lại về DRAFT.
var StatusTransitions = map[string][]string{
	ContentStatusDraft:       {ContentStatusScriptReady, ContentStatusArchived},
	ContentStatusScriptReady: {ContentStatusVoiceReady, ContentStatusDraft, ContentStatusArchived},
	ContentStatusVoiceReady:  {ContentStatusEditing, ContentStatusScriptReady, ContentStatusArchived},
	ContentStatusEditing:     {ContentStatusReview, ContentStatusVoiceReady, ContentStatusArchived},
	ContentStatusReview:      {ContentStatusPublished, ContentStatusEditing, ContentStatusArchived},
	ContentStatusPublished:   {ContentStatusArchived},
	ContentStatusArchived:    {ContentStatusDraft},
}

// AllowedTargets trả về danh sách trạng thái đích hợp lệ từ trạng thái hiện tại.
func AllowedTargets(from string) []string {
	return StatusTransitions[from]
}

// IsValidTransition kiểm tra cạnh (from, to) có nằm trong bảng chuyển trạng thái không.
func IsValidTransition(from, to string) bool {
	for _, target := range StatusTransitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

// ContentItem đại diện một mục nội dung trong content_registry.
// Không xóa cứng trong luồng bình thường, chỉ chuyển sang ARCHIVED.
type ContentItem struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title       string `json:"title" bson:"title" index:"text"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Status      string `json:"status" bson:"status" index:"single:1" default:"DRAFT"`

	// Các bên được gán vào mục nội dung. Rỗng = chưa gán.
	ProducerID   primitive.ObjectID `json:"producerId,omitempty" bson:"producerId,omitempty" index:"single:1"`
	VoiceActorID primitive.ObjectID `json:"voiceActorId,omitempty" bson:"voiceActorId,omitempty" index:"single:1"`
	EditorID     primitive.ObjectID `json:"editorId,omitempty" bson:"editorId,omitempty" index:"single:1"`

	// Kịch bản lồng tiếng gắn với mục này (nếu đã có).
	ScriptID primitive.ObjectID `json:"scriptId,omitempty" bson:"scriptId,omitempty"`

	Deadline int64 `json:"deadline,omitempty" bson:"deadline,omitempty"` // Unix ms

	// Giá công lồng tiếng và dựng phim cùng cờ đã thanh toán.
	VoicePrice float64 `json:"voicePrice,omitempty" bson:"voicePrice,omitempty"`
	VoicePaid  bool    `json:"voicePaid" bson:"voicePaid"`
	EditPrice  float64 `json:"editPrice,omitempty" bson:"editPrice,omitempty"`
	EditPaid   bool    `json:"editPaid" bson:"editPaid"`

	PublishedAt int64 `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
