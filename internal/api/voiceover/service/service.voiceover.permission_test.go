// Package voiceoversvc - Test hàm quyết định quyền Can trên kịch bản lồng tiếng.
package voiceoversvc

import (
	"testing"

	"creator_panel/internal/api/actor"
	voiceovermodels "creator_panel/internal/api/voiceover/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCan_AdminDuocMoiThaoTac(t *testing.T) {
	admin := actor.Actor{ID: primitive.NewObjectID().Hex(), Role: actor.RoleAdmin}
	script := &voiceovermodels.VoiceScript{ID: primitive.NewObjectID()}
	for _, cap := range []Capability{CapView, CapEditVoiceLink, CapProducerApprove, CapAdminApprove, CapMarkPaid, CapDelete} {
		if !Can(admin, script, cap) {
			t.Errorf("ADMIN phải được phép %s", cap)
		}
	}
}

func TestCan_ProducerDuocGan(t *testing.T) {
	producerID := primitive.NewObjectID()
	producer := actor.Actor{ID: producerID.Hex(), Role: actor.RoleProducer}
	script := &voiceovermodels.VoiceScript{ID: primitive.NewObjectID(), ProducerID: producerID}

	if !Can(producer, script, CapView) {
		t.Error("producer được gán phải xem được kịch bản")
	}
	if !Can(producer, script, CapProducerApprove) {
		t.Error("producer được gán phải duyệt cấp producer được")
	}
	if Can(producer, script, CapAdminApprove) {
		t.Error("producer không bao giờ được duyệt cấp admin")
	}
	if Can(producer, script, CapEditVoiceLink) {
		t.Error("producer không được sửa link ghi âm")
	}
	if Can(producer, script, CapMarkPaid) {
		t.Error("producer không được đánh dấu đã trả")
	}
}

func TestCan_VoiceActorDuocGan(t *testing.T) {
	voiceID := primitive.NewObjectID()
	voice := actor.Actor{ID: voiceID.Hex(), Role: actor.RoleVoiceTalent}
	script := &voiceovermodels.VoiceScript{ID: primitive.NewObjectID(), VoiceActorID: voiceID}

	if !Can(voice, script, CapView) {
		t.Error("voice actor được gán phải xem được kịch bản")
	}
	if !Can(voice, script, CapEditVoiceLink) {
		t.Error("voice actor được gán phải sửa được link ghi âm")
	}
	// voice actor không bao giờ tự duyệt công của mình ở cấp admin
	if Can(voice, script, CapAdminApprove) {
		t.Error("voice actor không được duyệt cấp admin")
	}
	if Can(voice, script, CapProducerApprove) {
		t.Error("voice actor không được duyệt cấp producer")
	}
}

func TestCan_KhongDuocGanThiKhongCoQuyen(t *testing.T) {
	stranger := actor.Actor{ID: primitive.NewObjectID().Hex(), Role: actor.RoleProducer}
	script := &voiceovermodels.VoiceScript{ID: primitive.NewObjectID(), ProducerID: primitive.NewObjectID()}

	if Can(stranger, script, CapView) {
		t.Error("producer không được gán không được xem")
	}
	if Can(stranger, script, CapProducerApprove) {
		t.Error("producer không được gán không được duyệt")
	}
}

func TestCan_ViewerVaEditorKhongCoQuyenTrenKichBan(t *testing.T) {
	script := &voiceovermodels.VoiceScript{ID: primitive.NewObjectID()}
	for _, role := range []string{actor.RoleViewer, actor.RoleEditor} {
		a := actor.Actor{ID: primitive.NewObjectID().Hex(), Role: role}
		for _, cap := range []Capability{CapView, CapEditVoiceLink, CapProducerApprove, CapAdminApprove, CapMarkPaid, CapDelete} {
			if Can(a, script, cap) {
				t.Errorf("role %s không được phép %s", role, cap)
			}
		}
	}
}
