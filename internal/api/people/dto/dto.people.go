// Package dto - DTO cho domain people.
package dto

// StreamerCreateInput dữ liệu tạo streamer mới.
type StreamerCreateInput struct {
	Name     string `json:"name" bson:"name" validate:"required,no_xss"`
	Email    string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Platform string `json:"platform,omitempty" bson:"platform,omitempty"`
	Channel  string `json:"channel,omitempty" bson:"channel,omitempty"`
	Iban     string `json:"iban,omitempty" bson:"iban,omitempty"`
	Note     string `json:"note,omitempty" bson:"note,omitempty" validate:"omitempty,no_xss"`
}

// StreamerUpdateInput dữ liệu cập nhật streamer (partial update).
type StreamerUpdateInput struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Email    string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Platform string `json:"platform,omitempty" bson:"platform,omitempty"`
	Channel  string `json:"channel,omitempty" bson:"channel,omitempty"`
	Iban     string `json:"iban,omitempty" bson:"iban,omitempty"`
	Note     string `json:"note,omitempty" bson:"note,omitempty" validate:"omitempty,no_xss"`
	IsActive bool   `json:"isActive,omitempty" bson:"isActive,omitempty"`
}

// ContentCreatorCreateInput dữ liệu tạo nhà sản xuất nội dung mới.
type ContentCreatorCreateInput struct {
	Name  string `json:"name" bson:"name" validate:"required,no_xss"`
	Email string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	Iban  string `json:"iban,omitempty" bson:"iban,omitempty"`
	Note  string `json:"note,omitempty" bson:"note,omitempty" validate:"omitempty,no_xss"`
}

// ContentCreatorUpdateInput dữ liệu cập nhật nhà sản xuất nội dung.
type ContentCreatorUpdateInput struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Email    string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Iban     string `json:"iban,omitempty" bson:"iban,omitempty"`
	Note     string `json:"note,omitempty" bson:"note,omitempty" validate:"omitempty,no_xss"`
	IsActive bool   `json:"isActive,omitempty" bson:"isActive,omitempty"`
}

// VoiceActorCreateInput dữ liệu tạo giọng đọc mới.
type VoiceActorCreateInput struct {
	Name       string  `json:"name" bson:"name" validate:"required,no_xss"`
	Email      string  `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone      string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Iban       string  `json:"iban,omitempty" bson:"iban,omitempty"`
	UnitPrice  float64 `json:"unitPrice,omitempty" bson:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	SampleLink string  `json:"sampleLink,omitempty" bson:"sampleLink,omitempty" validate:"omitempty,url"`
	Note       string  `json:"note,omitempty" bson:"note,omitempty" validate:"omitempty,no_xss"`
}

// VoiceActorUpdateInput dữ liệu cập nhật giọng đọc.
type VoiceActorUpdateInput struct {
	Name       string  `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Email      string  `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone      string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Iban       string  `json:"iban,omitempty" bson:"iban,omitempty"`
	UnitPrice  float64 `json:"unitPrice,omitempty" bson:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	SampleLink string  `json:"sampleLink,omitempty" bson:"sampleLink,omitempty" validate:"omitempty,url"`
	Note       string  `json:"note,omitempty" bson:"note,omitempty" validate:"omitempty,no_xss"`
	IsActive   bool    `json:"isActive,omitempty" bson:"isActive,omitempty"`
}

// TeamMemberCreateInput dữ liệu tạo thành viên đội mới.
type TeamMemberCreateInput struct {
	Name     string `json:"name" bson:"name" validate:"required,no_xss"`
	Email    string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Position string `json:"position,omitempty" bson:"position,omitempty"`
	Iban     string `json:"iban,omitempty" bson:"iban,omitempty"`
	Note     string `json:"note,omitempty" bson:"note,omitempty" validate:"omitempty,no_xss"`
}

// TeamMemberUpdateInput dữ liệu cập nhật thành viên đội.
type TeamMemberUpdateInput struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Email    string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Position string `json:"position,omitempty" bson:"position,omitempty"`
	Iban     string `json:"iban,omitempty" bson:"iban,omitempty"`
	Note     string `json:"note,omitempty" bson:"note,omitempty" validate:"omitempty,no_xss"`
	IsActive bool   `json:"isActive,omitempty" bson:"isActive,omitempty"`
}
