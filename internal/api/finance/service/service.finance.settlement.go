package financesvc

import (
	"context"
	"errors"
	"time"

	"creator_panel/internal/api/actor"
	auditmodels "creator_panel/internal/api/audit/models"
	auditsvc "creator_panel/internal/api/audit/service"
	basesvc "creator_panel/internal/api/base/service"
	financemodels "creator_panel/internal/api/finance/models"
	voiceovermodels "creator_panel/internal/api/voiceover/models"
	"creator_panel/internal/common"
	"creator_panel/internal/logger"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SettlementPlan là kết quả thuần của bước lập kế hoạch quyết toán.
type SettlementPlan struct {
	Consumed      []financemodels.LedgerEntry `json:"consumed"`
	ConsumedTotal float64                     `json:"consumedTotal"`
	Remainder     float64                     `json:"remainder"`
}

// PlanSettlement tiêu số tiền đưa vào lên danh sách nghĩa vụ chưa trả, cũ nhất
// trước. Mỗi nghĩa vụ chỉ được tiêu TRỌN VẸN: gặp nghĩa vụ lớn hơn phần còn lại
// thì DỪNG, để nguyên nghĩa vụ đó thay vì trả dở. Vì vậy tổng tiền ghi nhận có
// thể không khớp đúng tập nghĩa vụ được đánh dấu đã trả khi số tiền không rơi
// đúng ranh giới nghĩa vụ; phần dư trả về trong Remainder.
func PlanSettlement(entries []financemodels.LedgerEntry, tendered float64) SettlementPlan {
	plan := SettlementPlan{Consumed: []financemodels.LedgerEntry{}, Remainder: tendered}
	if tendered <= 0 {
		return plan
	}
	for _, e := range SortAsc(entries) {
		if e.Status == financemodels.PayStatusPaid {
			continue
		}
		if e.Amount <= 0 {
			continue
		}
		if e.Amount > plan.Remainder {
			break
		}
		plan.Consumed = append(plan.Consumed, e)
		plan.ConsumedTotal += e.Amount
		plan.Remainder -= e.Amount
	}
	return plan
}

// SettlementResult là kết quả trả về cho client sau một lần quyết toán.
type SettlementResult struct {
	Plan      SettlementPlan `json:"plan"`
	PaymentID string         `json:"paymentId"`
	Tendered  float64        `json:"tendered"`
}

// SettlementService áp kế hoạch quyết toán lên dữ liệu
type SettlementService struct {
	ledgerService *LedgerService
	auditService  *auditsvc.AuditLogService
}

// NewSettlementService tạo mới SettlementService
func NewSettlementService() (*SettlementService, error) {
	ledgerService, err := NewLedgerService()
	if err != nil {
		return nil, err
	}
	auditService, err := auditsvc.NewAuditLogService()
	if err != nil {
		return nil, err
	}
	return &SettlementService{
		ledgerService: ledgerService,
		auditService:  auditService,
	}, nil
}

// Settle quyết toán một số tiền cho người nhận: lập kế hoạch tiêu nợ cũ trước,
// đánh dấu từng nghĩa vụ được tiêu là đã trả, rồi LUÔN ghi một bản ghi thanh toán
// cho trọn số tiền đưa vào kèm bút toán payout và một dòng audit.
// period khác rỗng giới hạn nghĩa vụ theo kỳ tháng (vd "2026-01").
func (s *SettlementService) Settle(ctx context.Context, a actor.Actor, payee financemodels.Payee, tendered float64, period string, note string) (*SettlementResult, error) {
	if !a.IsManagement() {
		return nil, common.ErrForbidden
	}
	if tendered <= 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Số tiền quyết toán phải dương", common.StatusBadRequest, nil)
	}

	entries, err := s.ledgerService.fetchEntries(ctx, payee, period)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, common.ErrNotFound
	}
	// Không bao giờ fail vì "thiếu tiền": số tiền do admin khẳng định,
	// không đối chiếu với số dư đang chạy.
	plan := PlanSettlement(entries, tendered)

	now := time.Now().UnixMilli()
	for _, e := range plan.Consumed {
		if err := s.markPaid(ctx, e, now); err != nil {
			return nil, err
		}
	}

	paymentID, err := s.writeSettlementPayment(ctx, payee, tendered, note, now)
	if err != nil {
		return nil, err
	}

	if _, payoutErr := s.ledgerService.financeRecordService.RecordPayout(ctx, payee.ID, string(payee.Kind), tendered, "Quyết toán"); payoutErr != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"payeeId": payee.ID.Hex(), "payeeKind": string(payee.Kind), "error": payoutErr.Error(),
		}).Error("Ghi bút toán payout khi quyết toán thất bại")
	}

	consumedIDs := make([]string, 0, len(plan.Consumed))
	for _, e := range plan.Consumed {
		consumedIDs = append(consumedIDs, e.Source+":"+e.ID)
	}
	s.auditService.Record(ctx, auditmodels.AuditLog{
		ActorID: a.ID, ActorName: a.Name, ActorRole: a.Role,
		Action: "finance.settle", EntityType: "payee", EntityID: payee.ID.Hex(),
		Details: map[string]interface{}{
			"payeeKind":     string(payee.Kind),
			"tendered":      tendered,
			"consumedTotal": plan.ConsumedTotal,
			"remainder":     plan.Remainder,
			"consumed":      consumedIDs,
			"paymentId":     paymentID,
			"period":        period,
			"note":          note,
		},
	})

	return &SettlementResult{Plan: plan, PaymentID: paymentID, Tendered: tendered}, nil
}

// markPaid đánh dấu một nghĩa vụ đã trả theo đúng nguồn của nó.
func (s *SettlementService) markPaid(ctx context.Context, entry financemodels.LedgerEntry, now int64) error {
	entryID, err := primitive.ObjectIDFromHex(entry.ID)
	if err != nil {
		return common.ErrInvalidFormat
	}

	paidSet := &basesvc.UpdateData{Set: map[string]interface{}{"paidAt": now, "updatedAt": now}}
	switch entry.Source {
	case financemodels.SourceStream:
		_, err = s.ledgerService.streamService.UpdateById(ctx, entryID, paidSet)
	case financemodels.SourcePayment:
		_, err = s.ledgerService.paymentService.UpdateById(ctx, entryID, paidSet)
	case financemodels.SourceTeamPayment:
		_, err = s.ledgerService.teamPaymentService.UpdateById(ctx, entryID, paidSet)
	case financemodels.SourceScript:
		// Kịch bản chỉ sang PAID từ APPROVED; nghĩa vụ script trong sổ cái luôn
		// đến từ kịch bản đã admin duyệt nên filter này giữ bất biến đó.
		_, err = s.ledgerService.scriptStore.FindOneAndUpdate(ctx,
			bson.M{"_id": entryID, "status": voiceovermodels.ScriptStatusApproved},
			&basesvc.UpdateData{Set: map[string]interface{}{
				"status": voiceovermodels.ScriptStatusPaid, "paidAt": now, "updatedAt": now,
			}}, nil)
		// Kịch bản đổi trạng thái giữa lúc lập kế hoạch và lúc ghi (bị từ chối hay
		// lưu trữ song song): bỏ qua nghĩa vụ đó thay vì hủy cả lần quyết toán,
		// bản ghi thanh toán và audit phía sau vẫn phải được ghi.
		if errors.Is(err, common.ErrNotFound) {
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"scriptId": entry.ID,
			}).Warn("Kịch bản không còn ở trạng thái APPROVED khi quyết toán, bỏ qua")
			return nil
		}
	case financemodels.SourcePayout:
		// payout không bao giờ là nghĩa vụ chưa trả, không có gì để đánh dấu
		return nil
	}
	return err
}

// writeSettlementPayment ghi bản ghi thanh toán cho trọn số tiền đưa vào:
// TeamPayment cho thành viên đội, Payment cho các loại người nhận còn lại.
func (s *SettlementService) writeSettlementPayment(ctx context.Context, payee financemodels.Payee, tendered float64, note string, now int64) (string, error) {
	if payee.Kind == financemodels.PayeeTeamMember {
		tp := financemodels.TeamPayment{
			ID:           primitive.NewObjectID(),
			TeamMemberID: payee.ID,
			Title:        "Quyết toán",
			Description:  note,
			Amount:       tendered,
			PaidAt:       now,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		inserted, err := s.ledgerService.teamPaymentService.InsertOne(ctx, tp)
		if err != nil {
			return "", err
		}
		return inserted.ID.Hex(), nil
	}

	p := financemodels.Payment{
		ID:            primitive.NewObjectID(),
		RecipientID:   payee.ID,
		RecipientType: string(payee.Kind),
		Title:         "Quyết toán",
		Description:   note,
		Amount:        tendered,
		PaidAt:        now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inserted, err := s.ledgerService.paymentService.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return inserted.ID.Hex(), nil
}
