package financesvc

import (
	"context"
	"fmt"
	"sort"

	basesvc "creator_panel/internal/api/base/service"
	financemodels "creator_panel/internal/api/finance/models"
	voiceovermodels "creator_panel/internal/api/voiceover/models"
	"creator_panel/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatementResponse là sao kê hợp nhất của một người nhận tiền.
type StatementResponse struct {
	Payments []financemodels.LedgerEntry `json:"payments"`
	Total    int64                       `json:"total"`
	Limit    int64                       `json:"limit"`
	Offset   int64                       `json:"offset"`
	HasMore  bool                        `json:"hasMore"`
	Rollup   financemodels.LedgerRollup  `json:"rollup"`
}

// payStatusFromPaidAt quy paidAt về trạng thái chuẩn hóa.
func payStatusFromPaidAt(paidAt int64) string {
	if paidAt > 0 {
		return financemodels.PayStatusPaid
	}
	return financemodels.PayStatusUnpaid
}

// occurredAt lấy paidAt nếu đã trả, ngược lại lấy createdAt.
func occurredAt(paidAt, createdAt int64) int64 {
	if paidAt > 0 {
		return paidAt
	}
	return createdAt
}

// NormalizeStream chuẩn hóa một bản ghi doanh thu stream.
func NormalizeStream(s financemodels.Stream) financemodels.LedgerEntry {
	return financemodels.LedgerEntry{
		ID:          s.ID.Hex(),
		Source:      financemodels.SourceStream,
		Title:       s.Title,
		Description: s.Description,
		Amount:      s.Amount,
		OccurredAt:  occurredAt(s.PaidAt, s.CreatedAt),
		Status:      payStatusFromPaidAt(s.PaidAt),
	}
}

// NormalizePayment chuẩn hóa một khoản thanh toán chung.
func NormalizePayment(p financemodels.Payment) financemodels.LedgerEntry {
	return financemodels.LedgerEntry{
		ID:          p.ID.Hex(),
		Source:      financemodels.SourcePayment,
		Title:       p.Title,
		Description: p.Description,
		Amount:      p.Amount,
		OccurredAt:  occurredAt(p.PaidAt, p.CreatedAt),
		Status:      payStatusFromPaidAt(p.PaidAt),
	}
}

// NormalizeTeamPayment chuẩn hóa một khoản trả thành viên đội.
func NormalizeTeamPayment(tp financemodels.TeamPayment) financemodels.LedgerEntry {
	return financemodels.LedgerEntry{
		ID:          tp.ID.Hex(),
		Source:      financemodels.SourceTeamPayment,
		Title:       tp.Title,
		Description: tp.Description,
		Amount:      tp.Amount,
		OccurredAt:  occurredAt(tp.PaidAt, tp.CreatedAt),
		Status:      payStatusFromPaidAt(tp.PaidAt),
	}
}

// NormalizeScript chuẩn hóa một kịch bản đã chốt giá thành nghĩa vụ trả công.
func NormalizeScript(s voiceovermodels.VoiceScript) financemodels.LedgerEntry {
	status := financemodels.PayStatusUnpaid
	if s.Status == voiceovermodels.ScriptStatusPaid {
		status = financemodels.PayStatusPaid
	}
	return financemodels.LedgerEntry{
		ID:         s.ID.Hex(),
		Source:     financemodels.SourceScript,
		Title:      s.Title,
		Amount:     s.Price,
		OccurredAt: occurredAt(s.PaidAt, s.CreatedAt),
		Status:     status,
	}
}

// NormalizePayoutRecord chuẩn hóa một bút toán payout. Luôn coi là đã trả
// bất kể field status, vì payout ghi lại một lần chuyển tiền ra đã hoàn tất.
func NormalizePayoutRecord(r financemodels.FinanceRecord) financemodels.LedgerEntry {
	return financemodels.LedgerEntry{
		ID:          r.ID.Hex(),
		Source:      financemodels.SourcePayout,
		Title:       r.Title,
		Description: r.Description,
		Amount:      r.Amount,
		OccurredAt:  occurredAt(r.PaidAt, r.CreatedAt),
		Status:      financemodels.PayStatusPaid,
	}
}

// MergeDesc trộn các bản ghi đã chuẩn hóa thành một dãy theo occurredAt giảm dần.
func MergeDesc(groups ...[]financemodels.LedgerEntry) []financemodels.LedgerEntry {
	merged := []financemodels.LedgerEntry{}
	for _, g := range groups {
		merged = append(merged, g...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].OccurredAt > merged[j].OccurredAt
	})
	return merged
}

// SortAsc sắp dãy theo occurredAt tăng dần, dùng cho quyết toán (tiêu nợ cũ trước).
func SortAsc(entries []financemodels.LedgerEntry) []financemodels.LedgerEntry {
	out := make([]financemodels.LedgerEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt < out[j].OccurredAt
	})
	return out
}

// Rollup tính tổng đã trả, chưa trả và tổng con theo từng nguồn.
func Rollup(entries []financemodels.LedgerEntry) financemodels.LedgerRollup {
	rollup := financemodels.LedgerRollup{BySource: map[string]float64{}}
	for _, e := range entries {
		rollup.BySource[e.Source] += e.Amount
		if e.Status == financemodels.PayStatusPaid {
			rollup.TotalPaid += e.Amount
		} else {
			rollup.TotalUnpaid += e.Amount
		}
	}
	return rollup
}

// Paginate cắt trang trên dãy ĐÃ trộn và sắp xếp. Không bao giờ phân trang
// theo từng nguồn riêng lẻ để thứ tự giữa các nguồn luôn chính xác.
func Paginate(entries []financemodels.LedgerEntry, limit, offset int64) ([]financemodels.LedgerEntry, bool) {
	total := int64(len(entries))
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []financemodels.LedgerEntry{}, false
	}
	if limit <= 0 {
		return entries[offset:], false
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return entries[offset:end], end < total
}

// LedgerService gom nghĩa vụ từ mọi nguồn có thể tham chiếu một người nhận
type LedgerService struct {
	streamService        *StreamService
	paymentService       *PaymentService
	teamPaymentService   *TeamPaymentService
	financeRecordService *FinanceRecordService
	scriptStore          *basesvc.BaseServiceMongoImpl[voiceovermodels.VoiceScript]
}

// NewLedgerService tạo mới LedgerService
func NewLedgerService() (*LedgerService, error) {
	streamService, err := NewStreamService()
	if err != nil {
		return nil, err
	}
	paymentService, err := NewPaymentService()
	if err != nil {
		return nil, err
	}
	teamPaymentService, err := NewTeamPaymentService()
	if err != nil {
		return nil, err
	}
	financeRecordService, err := NewFinanceRecordService()
	if err != nil {
		return nil, err
	}
	scriptCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.VoiceoverScripts)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.VoiceoverScripts)
	}
	return &LedgerService{
		streamService:        streamService,
		paymentService:       paymentService,
		teamPaymentService:   teamPaymentService,
		financeRecordService: financeRecordService,
		scriptStore:          basesvc.NewBaseServiceMongo[voiceovermodels.VoiceScript](scriptCollection),
	}, nil
}

// fetchEntries gom và chuẩn hóa mọi bản ghi nghĩa vụ của một người nhận.
// period khác rỗng giới hạn các nguồn có kỳ (stream, team_payment) theo tháng đó.
func (s *LedgerService) fetchEntries(ctx context.Context, payee financemodels.Payee, period string) ([]financemodels.LedgerEntry, error) {
	var groups [][]financemodels.LedgerEntry

	payoutFilter := bson.M{
		"recipientId":   payee.ID,
		"recipientType": string(payee.Kind),
		"entryType":     financemodels.EntryTypePayout,
	}
	payouts, err := s.financeRecordService.Find(ctx, payoutFilter, nil)
	if err != nil {
		return nil, err
	}
	payoutEntries := make([]financemodels.LedgerEntry, 0, len(payouts))
	for _, r := range payouts {
		payoutEntries = append(payoutEntries, NormalizePayoutRecord(r))
	}
	groups = append(groups, payoutEntries)

	switch payee.Kind {
	case financemodels.PayeeStreamer:
		streamFilter := bson.M{"streamerId": payee.ID}
		if period != "" {
			streamFilter["period"] = period
		}
		streams, err := s.streamService.Find(ctx, streamFilter, nil)
		if err != nil {
			return nil, err
		}
		entries := make([]financemodels.LedgerEntry, 0, len(streams))
		for _, st := range streams {
			entries = append(entries, NormalizeStream(st))
		}
		groups = append(groups, entries)
		payments, err := s.paymentEntries(ctx, payee)
		if err != nil {
			return nil, err
		}
		groups = append(groups, payments)

	case financemodels.PayeeVoiceActor:
		scripts, err := s.scriptStore.Find(ctx, ScriptObligationFilter(payee.ID), nil)
		if err != nil {
			return nil, err
		}
		entries := make([]financemodels.LedgerEntry, 0, len(scripts))
		for _, sc := range scripts {
			entries = append(entries, NormalizeScript(sc))
		}
		groups = append(groups, entries)
		payments, err := s.paymentEntries(ctx, payee)
		if err != nil {
			return nil, err
		}
		groups = append(groups, payments)

	case financemodels.PayeeTeamMember:
		tpFilter := bson.M{"teamMemberId": payee.ID}
		if period != "" {
			tpFilter["period"] = period
		}
		teamPayments, err := s.teamPaymentService.Find(ctx, tpFilter, nil)
		if err != nil {
			return nil, err
		}
		entries := make([]financemodels.LedgerEntry, 0, len(teamPayments))
		for _, tp := range teamPayments {
			entries = append(entries, NormalizeTeamPayment(tp))
		}
		groups = append(groups, entries)

	case financemodels.PayeeCreator:
		payments, err := s.paymentEntries(ctx, payee)
		if err != nil {
			return nil, err
		}
		groups = append(groups, payments)
	}

	return MergeDesc(groups...), nil
}

// ScriptObligationFilter dựng filter chọn kịch bản làm nghĩa vụ trả công cho một
// voice actor: đã admin duyệt, giá dương, và còn đang APPROVED hoặc đã PAID.
// Kịch bản bị từ chối hay lưu trữ sau khi duyệt không còn là nghĩa vụ, dù cờ
// adminApproved vẫn giữ nguyên trên document.
func ScriptObligationFilter(voiceActorID primitive.ObjectID) bson.M {
	return bson.M{
		"voiceActorId":  voiceActorID,
		"adminApproved": true,
		"price":         bson.M{"$gt": 0},
		"status": bson.M{"$in": []string{
			voiceovermodels.ScriptStatusApproved,
			voiceovermodels.ScriptStatusPaid,
		}},
	}
}

// paymentEntries gom các khoản thanh toán chung của một người nhận.
func (s *LedgerService) paymentEntries(ctx context.Context, payee financemodels.Payee) ([]financemodels.LedgerEntry, error) {
	payments, err := s.paymentService.Find(ctx, bson.M{
		"recipientId":   payee.ID,
		"recipientType": string(payee.Kind),
	}, nil)
	if err != nil {
		return nil, err
	}
	entries := make([]financemodels.LedgerEntry, 0, len(payments))
	for _, p := range payments {
		entries = append(entries, NormalizePayment(p))
	}
	return entries, nil
}

// GetStatement trả về sao kê hợp nhất của một người nhận, phân trang sau khi trộn.
func (s *LedgerService) GetStatement(ctx context.Context, payee financemodels.Payee, limit, offset int64) (*StatementResponse, error) {
	merged, err := s.fetchEntries(ctx, payee, "")
	if err != nil {
		return nil, err
	}

	page, hasMore := Paginate(merged, limit, offset)
	return &StatementResponse{
		Payments: page,
		Total:    int64(len(merged)),
		Limit:    limit,
		Offset:   offset,
		HasMore:  hasMore,
		Rollup:   Rollup(merged),
	}, nil
}
