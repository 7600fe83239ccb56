// Package models - Kịch bản lồng tiếng và gói bàn giao dựng phim.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của một kịch bản lồng tiếng.
const (
	ScriptStatusWaitingVoice  = "WAITING_VOICE"
	ScriptStatusVoiceUploaded = "VOICE_UPLOADED"
	ScriptStatusApproved      = "APPROVED"
	ScriptStatusPaid          = "PAID"
	ScriptStatusRejected      = "REJECTED"
	ScriptStatusArchived      = "ARCHIVED"
)

// VoiceScript đại diện một kịch bản lồng tiếng (voiceover_scripts).
// Price và adminApproved chỉ ghi được bởi ADMIN; producerApproved bởi producer được gán.
type VoiceScript struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title  string `json:"title" bson:"title" index:"text"`
	Body   string `json:"body,omitempty" bson:"body,omitempty"`
	Status string `json:"status" bson:"status" index:"single:1" default:"WAITING_VOICE"`

	// Producer tạo kịch bản; voice actor nhận việc qua claim.
	ProducerID   primitive.ObjectID `json:"producerId,omitempty" bson:"producerId,omitempty" index:"single:1"`
	VoiceActorID primitive.ObjectID `json:"voiceActorId,omitempty" bson:"voiceActorId,omitempty" index:"single:1"`

	// Link file ghi âm đã upload. Rỗng = chưa có giọng.
	VoiceLink string `json:"voiceLink,omitempty" bson:"voiceLink,omitempty"`

	// Giá công lồng tiếng, chỉ ADMIN được đặt. Phải > 0 trước khi APPROVED.
	Price float64 `json:"price,omitempty" bson:"price,omitempty"`

	// Hai mốc duyệt độc lập. adminApproved yêu cầu producerApproved đã true.
	ProducerApproved   bool               `json:"producerApproved" bson:"producerApproved"`
	ProducerApprovedAt int64              `json:"producerApprovedAt,omitempty" bson:"producerApprovedAt,omitempty"`
	AdminApproved      bool               `json:"adminApproved" bson:"adminApproved"`
	AdminApprovedAt    int64              `json:"adminApprovedAt,omitempty" bson:"adminApprovedAt,omitempty"`
	AdminApprovedBy    primitive.ObjectID `json:"adminApprovedBy,omitempty" bson:"adminApprovedBy,omitempty"`

	RejectReason string `json:"rejectReason,omitempty" bson:"rejectReason,omitempty"`

	PaidAt int64 `json:"paidAt,omitempty" bson:"paidAt,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
