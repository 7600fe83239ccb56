package voiceoversvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"creator_panel/internal/api/actor"
	auditmodels "creator_panel/internal/api/audit/models"
	auditsvc "creator_panel/internal/api/audit/service"
	basesvc "creator_panel/internal/api/base/service"
	financemodels "creator_panel/internal/api/finance/models"
	financesvc "creator_panel/internal/api/finance/service"
	voiceovermodels "creator_panel/internal/api/voiceover/models"
	"creator_panel/internal/common"
	"creator_panel/internal/global"
	"creator_panel/internal/logger"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Các action hợp lệ cho thao tác hàng loạt.
const (
	BulkActionApprove = "approve"
	BulkActionReject  = "reject"
	BulkActionPay     = "pay"
	BulkActionArchive = "archive"
)

// BulkFailure ghi lại một id thất bại cùng lý do trong thao tác hàng loạt.
type BulkFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BulkResult là kết quả hai danh sách của thao tác hàng loạt.
type BulkResult struct {
	Success []string      `json:"success"`
	Failed  []BulkFailure `json:"failed"`
}

// VoiceScriptService xử lý pipeline duyệt kịch bản lồng tiếng
type VoiceScriptService struct {
	*basesvc.BaseServiceMongoImpl[voiceovermodels.VoiceScript]
	editPackService      *EditPackService
	financeRecordService *financesvc.FinanceRecordService
	auditService         *auditsvc.AuditLogService
}

// NewVoiceScriptService tạo mới VoiceScriptService
func NewVoiceScriptService() (*VoiceScriptService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.VoiceoverScripts)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.VoiceoverScripts)
	}
	editPackService, err := NewEditPackService()
	if err != nil {
		return nil, fmt.Errorf("tạo EditPackService: %w", err)
	}
	financeRecordService, err := financesvc.NewFinanceRecordService()
	if err != nil {
		return nil, fmt.Errorf("tạo FinanceRecordService: %w", err)
	}
	auditService, err := auditsvc.NewAuditLogService()
	if err != nil {
		return nil, fmt.Errorf("tạo AuditLogService: %w", err)
	}
	return &VoiceScriptService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[voiceovermodels.VoiceScript](collection),
		editPackService:      editPackService,
		financeRecordService: financeRecordService,
		auditService:         auditService,
	}, nil
}

// EditPackService trả về service gói bàn giao dùng chung.
func (s *VoiceScriptService) EditPackService() *EditPackService {
	return s.editPackService
}

func (s *VoiceScriptService) loadScript(ctx context.Context, scriptID primitive.ObjectID) (*voiceovermodels.VoiceScript, error) {
	script, err := s.BaseServiceMongoImpl.FindOneById(ctx, scriptID)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return &script, nil
}

// ProducerApprove duyệt kịch bản ở cấp producer và tạo gói bàn giao trong cùng
// một giao dịch: cập nhật kịch bản và tạo EditPack cùng commit hoặc cùng rollback.
func (s *VoiceScriptService) ProducerApprove(ctx context.Context, a actor.Actor, scriptID primitive.ObjectID) (*voiceovermodels.VoiceScript, error) {
	script, err := s.loadScript(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if !Can(a, script, CapProducerApprove) {
		return nil, common.ErrForbidden
	}
	return s.applyProducerApprove(ctx, a, script)
}

// applyProducerApprove thực hiện bước duyệt producer, không kiểm tra quyền.
// Caller chịu trách nhiệm gate (route đơn lẻ qua Can, thao tác hàng loạt qua IsManagement).
func (s *VoiceScriptService) applyProducerApprove(ctx context.Context, a actor.Actor, script *voiceovermodels.VoiceScript) (*voiceovermodels.VoiceScript, error) {
	scriptID := script.ID
	if err := ValidateProducerApprove(script); err != nil {
		return nil, err
	}

	session, err := global.MongoDB_Session.StartSession()
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer session.EndSession(ctx)

	now := time.Now().UnixMilli()
	var updated voiceovermodels.VoiceScript
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		updated, err = s.BaseServiceMongoImpl.UpdateById(sessCtx, scriptID, &basesvc.UpdateData{
			Set: map[string]interface{}{
				"producerApproved":   true,
				"producerApprovedAt": now,
				"status":             voiceovermodels.ScriptStatusVoiceUploaded,
				"updatedAt":          now,
			},
		})
		if err != nil {
			return nil, err
		}
		if _, err := s.editPackService.CreateForScript(sessCtx, scriptID); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	s.auditService.Record(ctx, auditmodels.AuditLog{
		ActorID: a.ID, ActorName: a.Name, ActorRole: a.Role,
		Action: "voiceover.producer_approve", EntityType: "voice_script", EntityID: scriptID.Hex(),
		OldValue: map[string]interface{}{"status": script.Status},
		NewValue: map[string]interface{}{"status": voiceovermodels.ScriptStatusVoiceUploaded, "producerApproved": true},
	})
	return &updated, nil
}

// AdminApprove duyệt kịch bản ở cấp admin: chốt giá, stamp người duyệt và phát sinh
// một bút toán chi cho voice actor (không bao giờ cho producer vì producer nhận lương).
// Bút toán chi là best-effort: ghi lỗi vào log nhưng không rollback lần duyệt.
func (s *VoiceScriptService) AdminApprove(ctx context.Context, a actor.Actor, scriptID primitive.ObjectID, price float64) (*voiceovermodels.VoiceScript, error) {
	script, err := s.loadScript(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if !Can(a, script, CapAdminApprove) {
		return nil, common.ErrForbidden
	}
	return s.applyAdminApprove(ctx, a, script, price)
}

// applyAdminApprove thực hiện bước duyệt admin, không kiểm tra quyền.
func (s *VoiceScriptService) applyAdminApprove(ctx context.Context, a actor.Actor, script *voiceovermodels.VoiceScript, price float64) (*voiceovermodels.VoiceScript, error) {
	scriptID := script.ID
	effectivePrice, err := ValidateAdminApprove(script, price)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	set := map[string]interface{}{
		"status":          voiceovermodels.ScriptStatusApproved,
		"price":           effectivePrice,
		"adminApproved":   true,
		"adminApprovedAt": now,
		"updatedAt":       now,
	}
	if adminID, idErr := primitive.ObjectIDFromHex(a.ID); idErr == nil {
		set["adminApprovedBy"] = adminID
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, scriptID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}

	// Đường legacy: nếu producer-approve chưa kịp tạo gói bàn giao thì tạo bù ở đây.
	if _, packErr := s.editPackService.CreateForScript(ctx, scriptID); packErr != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"scriptId": scriptID.Hex(), "error": packErr.Error(),
		}).Warn("Tạo bù gói bàn giao khi admin duyệt thất bại")
	}

	auditEntry := auditmodels.AuditLog{
		ActorID: a.ID, ActorName: a.Name, ActorRole: a.Role,
		Action: "voiceover.admin_approve", EntityType: "voice_script", EntityID: scriptID.Hex(),
		OldValue: map[string]interface{}{"status": script.Status, "price": script.Price},
		NewValue: map[string]interface{}{"status": voiceovermodels.ScriptStatusApproved, "price": effectivePrice},
	}

	if !script.VoiceActorID.IsZero() {
		record, recErr := s.financeRecordService.RecordExpense(ctx, script.VoiceActorID, string(financemodels.PayeeVoiceActor), effectivePrice, "Công lồng tiếng: "+script.Title, "voice_script", scriptID)
		if recErr != nil {
			// Lần duyệt vẫn có hiệu lực; bút toán vắng mặt được phát hiện qua
			// audit log thiếu financialRecordId.
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"scriptId": scriptID.Hex(), "voiceActorId": script.VoiceActorID.Hex(), "error": recErr.Error(),
			}).Error("Ghi bút toán chi cho voice actor thất bại")
		} else {
			auditEntry.Details = map[string]interface{}{"financialRecordId": record.ID.Hex()}
		}
	}

	s.auditService.Record(ctx, auditEntry)
	return &updated, nil
}

// Reject từ chối kịch bản với lý do bắt buộc. Chỉ ADMIN. Đảo ngược được bằng cách upload lại.
func (s *VoiceScriptService) Reject(ctx context.Context, a actor.Actor, scriptID primitive.ObjectID, reason string) (*voiceovermodels.VoiceScript, error) {
	script, err := s.loadScript(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if !a.IsAdmin() {
		return nil, common.ErrForbidden
	}
	return s.applyReject(ctx, a, script, reason)
}

// applyReject thực hiện bước từ chối, không kiểm tra quyền.
func (s *VoiceScriptService) applyReject(ctx context.Context, a actor.Actor, script *voiceovermodels.VoiceScript, reason string) (*voiceovermodels.VoiceScript, error) {
	scriptID := script.ID
	if err := ValidateReject(reason); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, scriptID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       voiceovermodels.ScriptStatusRejected,
			"rejectReason": reason,
			"updatedAt":    now,
		},
	})
	if err != nil {
		return nil, err
	}

	s.auditService.Record(ctx, auditmodels.AuditLog{
		ActorID: a.ID, ActorName: a.Name, ActorRole: a.Role,
		Action: "voiceover.reject", EntityType: "voice_script", EntityID: scriptID.Hex(),
		OldValue: map[string]interface{}{"status": script.Status},
		NewValue: map[string]interface{}{"status": voiceovermodels.ScriptStatusRejected, "reason": reason},
	})
	return &updated, nil
}

// Archive lưu trữ kịch bản vô điều kiện. Chỉ ADMIN.
func (s *VoiceScriptService) Archive(ctx context.Context, a actor.Actor, scriptID primitive.ObjectID) (*voiceovermodels.VoiceScript, error) {
	script, err := s.loadScript(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if !a.IsAdmin() {
		return nil, common.ErrForbidden
	}
	return s.applyArchive(ctx, a, script)
}

// applyArchive thực hiện bước lưu trữ, không kiểm tra quyền.
func (s *VoiceScriptService) applyArchive(ctx context.Context, a actor.Actor, script *voiceovermodels.VoiceScript) (*voiceovermodels.VoiceScript, error) {
	scriptID := script.ID
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, scriptID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":    voiceovermodels.ScriptStatusArchived,
			"updatedAt": time.Now().UnixMilli(),
		},
	})
	if err != nil {
		return nil, err
	}

	s.auditService.Record(ctx, auditmodels.AuditLog{
		ActorID: a.ID, ActorName: a.Name, ActorRole: a.Role,
		Action: "voiceover.archive", EntityType: "voice_script", EntityID: scriptID.Hex(),
		OldValue: map[string]interface{}{"status": script.Status},
		NewValue: map[string]interface{}{"status": voiceovermodels.ScriptStatusArchived},
	})
	return &updated, nil
}

// Pay đánh dấu kịch bản đã trả công. Chỉ ADMIN, chỉ từ APPROVED với giá dương.
func (s *VoiceScriptService) Pay(ctx context.Context, a actor.Actor, scriptID primitive.ObjectID) (*voiceovermodels.VoiceScript, error) {
	script, err := s.loadScript(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if !Can(a, script, CapMarkPaid) {
		return nil, common.ErrForbidden
	}
	return s.applyPay(ctx, a, script)
}

// applyPay thực hiện bước đánh dấu đã trả công, không kiểm tra quyền.
func (s *VoiceScriptService) applyPay(ctx context.Context, a actor.Actor, script *voiceovermodels.VoiceScript) (*voiceovermodels.VoiceScript, error) {
	scriptID := script.ID
	if err := ValidatePay(script); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, scriptID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":    voiceovermodels.ScriptStatusPaid,
			"paidAt":    now,
			"updatedAt": now,
		},
	})
	if err != nil {
		return nil, err
	}

	// Đồng bộ bút toán chi đi kèm nếu có, best-effort.
	if _, markErr := s.financeRecordService.UpdateMany(ctx,
		bson.M{"refType": "voice_script", "refId": scriptID, "status": financemodels.PayStatusUnpaid},
		&basesvc.UpdateData{Set: map[string]interface{}{"status": financemodels.PayStatusPaid, "paidAt": now, "updatedAt": now}},
		nil,
	); markErr != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"scriptId": scriptID.Hex(), "error": markErr.Error(),
		}).Warn("Đồng bộ trạng thái bút toán chi thất bại")
	}

	s.auditService.Record(ctx, auditmodels.AuditLog{
		ActorID: a.ID, ActorName: a.Name, ActorRole: a.Role,
		Action: "voiceover.pay", EntityType: "voice_script", EntityID: scriptID.Hex(),
		OldValue: map[string]interface{}{"status": script.Status},
		NewValue: map[string]interface{}{"status": voiceovermodels.ScriptStatusPaid, "amount": script.Price},
	})
	return &updated, nil
}

// Claim gán voice actor đang gọi vào kịch bản chưa có người nhận.
// Kiểm tra tranh chấp nằm ngay trong filter ghi: chỉ ghi khi chưa gán hoặc đã gán
// cho chính người gọi, nên hai lần claim song song chỉ có một bên thắng.
func (s *VoiceScriptService) Claim(ctx context.Context, a actor.Actor, scriptID primitive.ObjectID) (*voiceovermodels.VoiceScript, error) {
	if a.Role != actor.RoleVoiceTalent && !a.IsAdmin() {
		return nil, common.ErrForbidden
	}
	callerID, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return nil, common.ErrInvalidInput
	}

	updated, err := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, ClaimFilter(scriptID, callerID), &basesvc.UpdateData{
		Set: map[string]interface{}{"voiceActorId": callerID, "updatedAt": time.Now().UnixMilli()},
	}, nil)
	if err == nil {
		return &updated, nil
	}

	// Không match: phân biệt kịch bản không tồn tại với kịch bản đã có người nhận khác.
	script, loadErr := s.loadScript(ctx, scriptID)
	if loadErr != nil {
		return nil, common.ErrNotFound
	}
	if claimErr := ClassifyClaim(script, callerID); claimErr != nil {
		return nil, claimErr
	}
	return nil, err
}

// ClaimFilter dựng filter ghi cho thao tác nhận kịch bản: chỉ match khi kịch bản
// chưa có người nhận hoặc đã gán cho chính người gọi. Hai lần claim song song vì
// vậy chỉ có một bên ghi được; bên thua được phân loại qua ClassifyClaim.
func ClaimFilter(scriptID, callerID primitive.ObjectID) bson.M {
	return bson.M{
		"_id": scriptID,
		"$or": []bson.M{
			{"voiceActorId": bson.M{"$exists": false}},
			{"voiceActorId": primitive.NilObjectID},
			{"voiceActorId": callerID},
		},
	}
}

// ClassifyClaim phán quyết quyền nhận kịch bản trên trạng thái hiện có: nil khi
// chưa gán hoặc đã gán cho chính người gọi (claim lặp lại vô hại), Conflict khi
// đã thuộc về voice actor khác. Bản gán hiện tại không bị thay đổi trong mọi trường hợp.
func ClassifyClaim(script *voiceovermodels.VoiceScript, callerID primitive.ObjectID) error {
	if !script.VoiceActorID.IsZero() && script.VoiceActorID != callerID {
		return common.NewError(common.ErrCodeBusinessOperation, "Kịch bản đã được voice actor khác nhận", common.StatusConflict, nil)
	}
	return nil
}

// UpdateVoiceLink cập nhật link ghi âm. Kịch bản đang REJECTED quay về WAITING_VOICE.
func (s *VoiceScriptService) UpdateVoiceLink(ctx context.Context, a actor.Actor, scriptID primitive.ObjectID, voiceLink string) (*voiceovermodels.VoiceScript, error) {
	script, err := s.loadScript(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if !Can(a, script, CapEditVoiceLink) {
		return nil, common.ErrForbidden
	}
	if voiceLink == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "voiceLink không được để trống", common.StatusBadRequest, nil)
	}

	set := map[string]interface{}{
		"voiceLink": voiceLink,
		"updatedAt": time.Now().UnixMilli(),
	}
	if script.Status == voiceovermodels.ScriptStatusRejected {
		set["status"] = voiceovermodels.ScriptStatusWaitingVoice
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, scriptID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ClearVoiceLink gỡ link ghi âm và đưa kịch bản về WAITING_VOICE.
func (s *VoiceScriptService) ClearVoiceLink(ctx context.Context, a actor.Actor, scriptID primitive.ObjectID) (*voiceovermodels.VoiceScript, error) {
	script, err := s.loadScript(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if !Can(a, script, CapEditVoiceLink) {
		return nil, common.ErrForbidden
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, scriptID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":    voiceovermodels.ScriptStatusWaitingVoice,
			"updatedAt": time.Now().UnixMilli(),
		},
		Unset: map[string]interface{}{"voiceLink": ""},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// BulkAction áp một action lên danh sách kịch bản. Từng id được xử lý độc lập,
// thất bại được gom theo id thay vì hủy cả lô. Mở cho ADMIN và MANAGER; gate
// nằm ở đây nên từng bước bên dưới chạy qua các hàm apply không kiểm tra lại quyền.
func (s *VoiceScriptService) BulkAction(ctx context.Context, a actor.Actor, ids []string, action string, price float64, reason string) (*BulkResult, error) {
	if !a.IsManagement() {
		return nil, common.ErrForbidden
	}

	result := &BulkResult{Success: []string{}, Failed: []BulkFailure{}}
	for _, rawID := range ids {
		scriptID, err := primitive.ObjectIDFromHex(rawID)
		if err != nil {
			result.Failed = append(result.Failed, BulkFailure{ID: rawID, Reason: "ID không hợp lệ"})
			continue
		}

		script, loadErr := s.loadScript(ctx, scriptID)
		if loadErr != nil {
			result.Failed = append(result.Failed, BulkFailure{ID: rawID, Reason: bulkFailureReason(loadErr)})
			continue
		}

		var opErr error
		switch action {
		case BulkActionApprove:
			// Duyệt hàng loạt gộp cả hai cấp: producer-approve trước nếu còn thiếu.
			if !script.ProducerApproved {
				var approved *voiceovermodels.VoiceScript
				if approved, opErr = s.applyProducerApprove(ctx, a, script); opErr != nil {
					break
				}
				script = approved
			}
			_, opErr = s.applyAdminApprove(ctx, a, script, price)
		case BulkActionReject:
			_, opErr = s.applyReject(ctx, a, script, reason)
		case BulkActionPay:
			_, opErr = s.applyPay(ctx, a, script)
		case BulkActionArchive:
			_, opErr = s.applyArchive(ctx, a, script)
		default:
			return nil, common.NewError(common.ErrCodeValidationInput, "Action không hợp lệ: "+action, common.StatusBadRequest, nil)
		}

		if opErr != nil {
			result.Failed = append(result.Failed, BulkFailure{ID: rawID, Reason: bulkFailureReason(opErr)})
			continue
		}
		result.Success = append(result.Success, rawID)
	}
	return result, nil
}

// bulkFailureReason rút thông báo ngắn gọn cho client từ lỗi của một item.
func bulkFailureReason(err error) string {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Lỗi hệ thống"
}
