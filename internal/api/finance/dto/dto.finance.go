// Package dto - DTO cho domain finance.
package dto

// StreamCreateInput dữ liệu tạo bản ghi doanh thu stream.
type StreamCreateInput struct {
	StreamerID  string  `json:"streamerId" bson:"streamerId" validate:"required" transform:"str_objectid"`
	Title       string  `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,no_xss"`
	Description string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	Amount      float64 `json:"amount" bson:"amount" validate:"required,gt=0"`
	Period      string  `json:"period,omitempty" bson:"period,omitempty" validate:"omitempty,len=7"`
}

// StreamUpdateInput dữ liệu cập nhật bản ghi doanh thu stream.
type StreamUpdateInput struct {
	Title       string  `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,no_xss"`
	Description string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	Amount      float64 `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,gt=0"`
	Period      string  `json:"period,omitempty" bson:"period,omitempty" validate:"omitempty,len=7"`
}

// PaymentCreateInput dữ liệu tạo khoản thanh toán chung.
type PaymentCreateInput struct {
	RecipientID   string  `json:"recipientId" bson:"recipientId" validate:"required" transform:"str_objectid"`
	RecipientType string  `json:"recipientType" bson:"recipientType" validate:"required,payee_type"`
	Title         string  `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,no_xss"`
	Description   string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	Amount        float64 `json:"amount" bson:"amount" validate:"required,gt=0"`
}

// PaymentUpdateInput dữ liệu cập nhật khoản thanh toán chung.
type PaymentUpdateInput struct {
	Title       string  `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,no_xss"`
	Description string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	Amount      float64 `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,gt=0"`
}

// TeamPaymentCreateInput dữ liệu tạo khoản trả thành viên đội.
type TeamPaymentCreateInput struct {
	TeamMemberID string  `json:"teamMemberId" bson:"teamMemberId" validate:"required" transform:"str_objectid"`
	Title        string  `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,no_xss"`
	Description  string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	Amount       float64 `json:"amount" bson:"amount" validate:"required,gt=0"`
	Period       string  `json:"period,omitempty" bson:"period,omitempty" validate:"omitempty,len=7"`
}

// TeamPaymentUpdateInput dữ liệu cập nhật khoản trả thành viên đội.
type TeamPaymentUpdateInput struct {
	Title       string  `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,no_xss"`
	Description string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	Amount      float64 `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,gt=0"`
	Period      string  `json:"period,omitempty" bson:"period,omitempty" validate:"omitempty,len=7"`
}

// FinanceRecordCreateInput dữ liệu tạo bút toán thu chi thủ công.
type FinanceRecordCreateInput struct {
	RecipientID   string  `json:"recipientId,omitempty" bson:"recipientId,omitempty" transform:"str_objectid,optional"`
	RecipientType string  `json:"recipientType,omitempty" bson:"recipientType,omitempty" validate:"omitempty,payee_type"`
	EntryType     string  `json:"entryType" bson:"entryType" validate:"required,oneof=expense income payout"`
	Direction     string  `json:"direction" bson:"direction" validate:"required,oneof=IN OUT"`
	Title         string  `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,no_xss"`
	Description   string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	Amount        float64 `json:"amount" bson:"amount" validate:"required,gt=0"`
}

// FinanceRecordUpdateInput dữ liệu cập nhật bút toán.
type FinanceRecordUpdateInput struct {
	Title       string  `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,no_xss"`
	Description string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	Amount      float64 `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,gt=0"`
}

// SettleInput dữ liệu yêu cầu quyết toán cho một người nhận.
type SettleInput struct {
	PayeeKind string  `json:"payeeKind" validate:"required,payee_type"`
	PayeeID   string  `json:"payeeId" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Period    string  `json:"period,omitempty" validate:"omitempty,len=7"`
	Note      string  `json:"note,omitempty" validate:"omitempty,no_xss"`
}
