// Package dto - DTO cho domain content.
package dto

// ContentItemCreateInput dữ liệu tạo mục nội dung mới.
type ContentItemCreateInput struct {
	Title        string  `json:"title" bson:"title" validate:"required,no_xss"`
	Description  string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	ProducerID   string  `json:"producerId,omitempty" bson:"producerId,omitempty" transform:"str_objectid,optional"`
	VoiceActorID string  `json:"voiceActorId,omitempty" bson:"voiceActorId,omitempty" transform:"str_objectid,optional"`
	EditorID     string  `json:"editorId,omitempty" bson:"editorId,omitempty" transform:"str_objectid,optional"`
	Deadline     int64   `json:"deadline,omitempty" bson:"deadline,omitempty"`
	VoicePrice   float64 `json:"voicePrice,omitempty" bson:"voicePrice,omitempty" validate:"omitempty,gte=0"`
	EditPrice    float64 `json:"editPrice,omitempty" bson:"editPrice,omitempty" validate:"omitempty,gte=0"`
}

// ContentItemUpdateInput dữ liệu cập nhật mục nội dung.
// Không chứa status: mọi thay đổi trạng thái đi qua endpoint transition riêng.
type ContentItemUpdateInput struct {
	Title        string  `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,no_xss"`
	Description  string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	ProducerID   string  `json:"producerId,omitempty" bson:"producerId,omitempty" transform:"str_objectid,optional"`
	VoiceActorID string  `json:"voiceActorId,omitempty" bson:"voiceActorId,omitempty" transform:"str_objectid,optional"`
	EditorID     string  `json:"editorId,omitempty" bson:"editorId,omitempty" transform:"str_objectid,optional"`
	Deadline     int64   `json:"deadline,omitempty" bson:"deadline,omitempty"`
	VoicePrice   float64 `json:"voicePrice,omitempty" bson:"voicePrice,omitempty" validate:"omitempty,gte=0"`
	EditPrice    float64 `json:"editPrice,omitempty" bson:"editPrice,omitempty" validate:"omitempty,gte=0"`
}

// ContentItemTransitionInput dữ liệu yêu cầu chuyển trạng thái.
type ContentItemTransitionInput struct {
	Status string `json:"status" validate:"required,oneof=DRAFT SCRIPT_READY VOICE_READY EDITING REVIEW PUBLISHED ARCHIVED"`
}
