// Package models - Hồ sơ người nhận tiền thuộc domain people.
// Bốn loại người nhận tiền độc lập: Streamer, ContentCreator, VoiceActor, TeamMember.
// Các loại này không bao giờ được merge; mọi truy vấn sổ cái luôn scope theo đúng (loại, id).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Streamer lưu hồ sơ streamer (people_streamers).
type Streamer struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name     string `json:"name" bson:"name"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Platform string `json:"platform,omitempty" bson:"platform,omitempty"` // vd: twitch, youtube, kick
	Channel  string `json:"channel,omitempty" bson:"channel,omitempty"`
	Iban     string `json:"iban,omitempty" bson:"iban,omitempty"`
	Note     string `json:"note,omitempty" bson:"note,omitempty"`
	IsActive bool   `json:"isActive" bson:"isActive" default:"true"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// ContentCreator lưu hồ sơ nhà sản xuất nội dung (people_creators).
type ContentCreator struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name     string `json:"name" bson:"name"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Iban     string `json:"iban,omitempty" bson:"iban,omitempty"`
	Note     string `json:"note,omitempty" bson:"note,omitempty"`
	IsActive bool   `json:"isActive" bson:"isActive" default:"true"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// VoiceActor lưu hồ sơ giọng đọc (people_voice_actors).
type VoiceActor struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name       string  `json:"name" bson:"name"`
	Email      string  `json:"email,omitempty" bson:"email,omitempty"`
	Phone      string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Iban       string  `json:"iban,omitempty" bson:"iban,omitempty"`
	UnitPrice  float64 `json:"unitPrice,omitempty" bson:"unitPrice,omitempty"` // Giá gợi ý cho mỗi kịch bản
	SampleLink string  `json:"sampleLink,omitempty" bson:"sampleLink,omitempty"`
	Note       string  `json:"note,omitempty" bson:"note,omitempty"`
	IsActive   bool    `json:"isActive" bson:"isActive" default:"true"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// TeamMember lưu hồ sơ thành viên đội sản xuất, gồm cả editor (people_team_members).
type TeamMember struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name     string `json:"name" bson:"name"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Position string `json:"position,omitempty" bson:"position,omitempty"` // vd: editor, designer
	Iban     string `json:"iban,omitempty" bson:"iban,omitempty"`
	Note     string `json:"note,omitempty" bson:"note,omitempty"`
	IsActive bool   `json:"isActive" bson:"isActive" default:"true"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
