package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PayeeKind phân biệt bốn loại người nhận tiền. Không bao giờ merge giữa các loại.
type PayeeKind string

const (
	PayeeStreamer   PayeeKind = "streamer"
	PayeeCreator    PayeeKind = "creator"
	PayeeVoiceActor PayeeKind = "voice_actor"
	PayeeTeamMember PayeeKind = "team_member"
)

// IsValidPayeeKind kiểm tra chuỗi có phải một loại người nhận hợp lệ không.
func IsValidPayeeKind(kind string) bool {
	switch PayeeKind(kind) {
	case PayeeStreamer, PayeeCreator, PayeeVoiceActor, PayeeTeamMember:
		return true
	}
	return false
}

// Payee định danh một người nhận tiền: đúng một cặp (loại, id).
type Payee struct {
	Kind PayeeKind          `json:"kind"`
	ID   primitive.ObjectID `json:"id"`
}

// Nguồn của một dòng sao kê sau chuẩn hóa.
const (
	SourceStream      = "stream"
	SourceScript      = "script"
	SourcePayment     = "payment"
	SourceTeamPayment = "team_payment"
	SourcePayout      = "payout"
)

// LedgerEntry là một bản ghi nghĩa vụ sau khi chuẩn hóa về dạng chung.
// OccurredAt = paidAt nếu đã trả, ngược lại = createdAt.
type LedgerEntry struct {
	ID          string  `json:"id"`
	Source      string  `json:"source"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	OccurredAt  int64   `json:"occurredAt"`
	Status      string  `json:"status"` // paid | unpaid | partial
}

// LedgerRollup là phần tổng hợp của một sao kê.
type LedgerRollup struct {
	TotalPaid   float64            `json:"totalPaid"`
	TotalUnpaid float64            `json:"totalUnpaid"`
	BySource    map[string]float64 `json:"bySource"`
}
