// Package dto - DTO cho domain voiceover.
package dto

// VoiceScriptCreateInput dữ liệu tạo kịch bản lồng tiếng mới.
// Giá không nằm trong input tạo: chỉ ADMIN đặt giá qua bước duyệt.
type VoiceScriptCreateInput struct {
	Title        string `json:"title" bson:"title" validate:"required,no_xss"`
	Body         string `json:"body,omitempty" bson:"body,omitempty" validate:"omitempty,no_sql_injection"`
	ProducerID   string `json:"producerId,omitempty" bson:"producerId,omitempty" transform:"str_objectid,optional"`
	VoiceActorID string `json:"voiceActorId,omitempty" bson:"voiceActorId,omitempty" transform:"str_objectid,optional"`
}

// VoiceScriptUpdateInput dữ liệu cập nhật nội dung kịch bản.
// Status, price và các mốc duyệt không sửa qua CRUD: đi qua endpoint nghiệp vụ riêng.
type VoiceScriptUpdateInput struct {
	Title string `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,no_xss"`
	Body  string `json:"body,omitempty" bson:"body,omitempty" validate:"omitempty,no_sql_injection"`
}

// AdminApproveInput dữ liệu duyệt cấp admin. Price = 0 dùng giá đã lưu trên kịch bản.
type AdminApproveInput struct {
	Price float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}

// RejectInput dữ liệu từ chối kịch bản, lý do bắt buộc.
type RejectInput struct {
	Reason string `json:"reason" validate:"required,no_xss"`
}

// VoiceLinkInput dữ liệu cập nhật link ghi âm.
type VoiceLinkInput struct {
	VoiceLink string `json:"voiceLink" validate:"required,url"`
}

// BulkActionInput dữ liệu thao tác hàng loạt trên danh sách kịch bản.
type BulkActionInput struct {
	IDs    []string `json:"ids" validate:"required,min=1,dive,required"`
	Action string   `json:"action" validate:"required,oneof=approve reject pay archive"`
	Price  float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Reason string   `json:"reason,omitempty" validate:"omitempty,no_xss"`
}

// EditPackNotesInput dữ liệu editor cập nhật qua link bàn giao.
type EditPackNotesInput struct {
	EditorNote string   `json:"editorNote,omitempty" validate:"omitempty,no_xss"`
	AssetLinks []string `json:"assetLinks,omitempty" validate:"omitempty,dive,url"`
}
