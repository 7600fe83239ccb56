// Package models - Các bản ghi nghĩa vụ thanh toán và bút toán thu chi.
// Bốn nguồn độc lập cùng biểu diễn "tiền nợ hoặc đã trả": doanh thu stream,
// khoản thanh toán chung, khoản trả thành viên đội và bút toán thủ công.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại bút toán trên finance_records.
const (
	EntryTypeExpense = "expense"
	EntryTypeIncome  = "income"
	EntryTypePayout  = "payout"
)

// Chiều dòng tiền trên finance_records.
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// Trạng thái thanh toán chuẩn hóa.
const (
	PayStatusPaid    = "paid"
	PayStatusUnpaid  = "unpaid"
	PayStatusPartial = "partial"
)

// Stream là một bản ghi doanh thu stream của streamer (finance_streams).
type Stream struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	StreamerID  primitive.ObjectID `json:"streamerId" bson:"streamerId" index:"single:1"`
	Title       string             `json:"title,omitempty" bson:"title,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Amount      float64            `json:"amount" bson:"amount"`

	// Kỳ doanh thu dạng "2026-01", dùng để scope khi quyết toán theo tháng.
	Period string `json:"period,omitempty" bson:"period,omitempty" index:"single:1"`

	PaidAt int64 `json:"paidAt,omitempty" bson:"paidAt,omitempty"` // 0 = chưa trả

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Payment là một khoản thanh toán chung gắn với đúng một người nhận (finance_payments).
// Vừa là nguồn nghĩa vụ, vừa là bản ghi được tạo khi quyết toán.
type Payment struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	RecipientID   primitive.ObjectID `json:"recipientId" bson:"recipientId" index:"single:1"`
	RecipientType string             `json:"recipientType" bson:"recipientType" validate:"payee_type"`

	Title       string  `json:"title,omitempty" bson:"title,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Amount      float64 `json:"amount" bson:"amount"`

	PaidAt int64 `json:"paidAt,omitempty" bson:"paidAt,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// TeamPayment là một khoản phải trả cho thành viên đội sản xuất (finance_team_payments).
type TeamPayment struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	TeamMemberID primitive.ObjectID `json:"teamMemberId" bson:"teamMemberId" index:"single:1"`

	Title       string  `json:"title,omitempty" bson:"title,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Amount      float64 `json:"amount" bson:"amount"`
	Period      string  `json:"period,omitempty" bson:"period,omitempty" index:"single:1"`

	PaidAt int64 `json:"paidAt,omitempty" bson:"paidAt,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// FinanceRecord là bút toán thu chi thủ công (finance_records).
// Bút toán entryType=payout, direction=OUT luôn được coi là đã trả vì nó ghi lại
// một lần chuyển tiền ra đã hoàn tất.
type FinanceRecord struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	RecipientID   primitive.ObjectID `json:"recipientId,omitempty" bson:"recipientId,omitempty" index:"single:1"`
	RecipientType string             `json:"recipientType,omitempty" bson:"recipientType,omitempty" validate:"omitempty,payee_type"`

	EntryType string `json:"entryType" bson:"entryType" index:"single:1"`
	Direction string `json:"direction" bson:"direction"`

	Title       string  `json:"title,omitempty" bson:"title,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Amount      float64 `json:"amount" bson:"amount"`
	Status      string  `json:"status,omitempty" bson:"status,omitempty"` // paid | unpaid

	// Tham chiếu tới thực thể sinh ra bút toán (vd: kịch bản lồng tiếng).
	RefType string             `json:"refType,omitempty" bson:"refType,omitempty"`
	RefID   primitive.ObjectID `json:"refId,omitempty" bson:"refId,omitempty"`

	PaidAt int64 `json:"paidAt,omitempty" bson:"paidAt,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
