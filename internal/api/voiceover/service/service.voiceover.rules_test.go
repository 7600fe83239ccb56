// Package voiceoversvc - Test điều kiện tiên quyết của pipeline duyệt.
package voiceoversvc

import (
	"errors"
	"testing"

	voiceovermodels "creator_panel/internal/api/voiceover/models"
	"creator_panel/internal/common"
)

func TestValidateProducerApprove_ThieuFileGhiAm(t *testing.T) {
	script := &voiceovermodels.VoiceScript{Status: voiceovermodels.ScriptStatusWaitingVoice}
	err := ValidateProducerApprove(script)
	if err == nil {
		t.Fatal("kịch bản chưa có voiceLink phải bị chặn")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("phải nhận *common.Error, nhận: %v", err)
	}
	if appErr.Message != MsgAudioMissing {
		t.Errorf("thông báo phải là chuỗi client đã pin %q, nhận %q", MsgAudioMissing, appErr.Message)
	}
}

func TestValidateProducerApprove_CoFileGhiAm(t *testing.T) {
	script := &voiceovermodels.VoiceScript{VoiceLink: "http://x"}
	if err := ValidateProducerApprove(script); err != nil {
		t.Errorf("kịch bản có voiceLink phải qua được, nhận lỗi: %v", err)
	}
}

func TestValidateAdminApprove_ChuaProducerDuyet(t *testing.T) {
	script := &voiceovermodels.VoiceScript{ProducerApproved: false}
	// kể cả giá dương vẫn phải thất bại khi producer chưa duyệt
	for _, price := range []float64{0, 100, 150} {
		if _, err := ValidateAdminApprove(script, price); err == nil {
			t.Errorf("price=%v: producerApproved=false phải bị chặn", price)
		}
	}
}

func TestValidateAdminApprove_GiaHieuLuc(t *testing.T) {
	script := &voiceovermodels.VoiceScript{ProducerApproved: true, Price: 80}

	// giá truyền vào ghi đè giá đã lưu
	if got, err := ValidateAdminApprove(script, 150); err != nil || got != 150 {
		t.Errorf("mong giá 150, nhận %v (err=%v)", got, err)
	}
	// không truyền giá thì dùng giá đã lưu
	if got, err := ValidateAdminApprove(script, 0); err != nil || got != 80 {
		t.Errorf("mong giá 80, nhận %v (err=%v)", got, err)
	}

	// không có giá nào cả
	script.Price = 0
	if _, err := ValidateAdminApprove(script, 0); err == nil {
		t.Error("không có giá phải bị chặn")
	}
}

func TestValidatePay_ChiTuApproved(t *testing.T) {
	for _, status := range []string{
		voiceovermodels.ScriptStatusWaitingVoice,
		voiceovermodels.ScriptStatusVoiceUploaded,
		voiceovermodels.ScriptStatusRejected,
		voiceovermodels.ScriptStatusPaid,
		voiceovermodels.ScriptStatusArchived,
	} {
		script := &voiceovermodels.VoiceScript{Status: status, Price: 100}
		if err := ValidatePay(script); err == nil {
			t.Errorf("trạng thái %s không được chuyển sang PAID", status)
		}
	}

	ok := &voiceovermodels.VoiceScript{Status: voiceovermodels.ScriptStatusApproved, Price: 100}
	if err := ValidatePay(ok); err != nil {
		t.Errorf("APPROVED với giá dương phải qua được, nhận lỗi: %v", err)
	}

	noPrice := &voiceovermodels.VoiceScript{Status: voiceovermodels.ScriptStatusApproved, Price: 0}
	if err := ValidatePay(noPrice); err == nil {
		t.Error("APPROVED nhưng giá 0 phải bị chặn")
	}
}

func TestValidateReject_LyDoBatBuoc(t *testing.T) {
	if err := ValidateReject(""); err == nil {
		t.Error("lý do rỗng phải bị chặn")
	}
	if err := ValidateReject("chất lượng âm thanh kém"); err != nil {
		t.Errorf("lý do hợp lệ phải qua được, nhận lỗi: %v", err)
	}
}
