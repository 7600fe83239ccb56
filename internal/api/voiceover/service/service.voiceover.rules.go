package voiceoversvc

import (
	voiceovermodels "creator_panel/internal/api/voiceover/models"
	"creator_panel/internal/common"
)

// MsgAudioMissing là thông báo client đã pin cứng, không được đổi chuỗi.
const MsgAudioMissing = "Ses dosyası yüklenmemiş"

// ValidateProducerApprove kiểm tra điều kiện tiên quyết cho duyệt cấp producer:
// file ghi âm phải đã được upload.
func ValidateProducerApprove(script *voiceovermodels.VoiceScript) error {
	if script.VoiceLink == "" {
		return common.NewError(common.ErrCodeWorkflowPrecondition, MsgAudioMissing, common.StatusPreconditionFailed, nil)
	}
	return nil
}

// ValidateAdminApprove kiểm tra điều kiện tiên quyết cho duyệt cấp admin:
// producer đã duyệt và giá dương (truyền vào hoặc đã lưu sẵn).
// Trả về giá hiệu lực sẽ được ghi lên kịch bản.
func ValidateAdminApprove(script *voiceovermodels.VoiceScript, price float64) (float64, error) {
	if !script.ProducerApproved {
		return 0, common.NewError(common.ErrCodeWorkflowPrecondition, "Kịch bản chưa được producer duyệt", common.StatusPreconditionFailed, nil)
	}
	effective := price
	if effective <= 0 {
		effective = script.Price
	}
	if effective <= 0 {
		return 0, common.NewError(common.ErrCodeWorkflowPrecondition, "Chưa có giá cho kịch bản", common.StatusPreconditionFailed, nil)
	}
	return effective, nil
}

// ValidatePay kiểm tra điều kiện tiên quyết cho đánh dấu đã trả:
// chỉ kịch bản APPROVED với giá dương mới chuyển sang PAID được.
func ValidatePay(script *voiceovermodels.VoiceScript) error {
	if script.Status != voiceovermodels.ScriptStatusApproved {
		return common.NewInvalidTransitionError(script.Status, voiceovermodels.ScriptStatusPaid, []string{voiceovermodels.ScriptStatusApproved})
	}
	if script.Price <= 0 {
		return common.NewError(common.ErrCodeWorkflowPrecondition, "Chưa có giá cho kịch bản", common.StatusPreconditionFailed, nil)
	}
	return nil
}

// ValidateReject kiểm tra lý do từ chối bắt buộc phải có.
func ValidateReject(reason string) error {
	if reason == "" {
		return common.NewError(common.ErrCodeValidationInput, "Lý do từ chối không được để trống", common.StatusBadRequest, nil)
	}
	return nil
}
