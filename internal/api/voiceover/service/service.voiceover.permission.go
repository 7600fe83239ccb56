// Package voiceoversvc xử lý pipeline duyệt kịch bản lồng tiếng.
package voiceoversvc

import (
	"creator_panel/internal/api/actor"
	voiceovermodels "creator_panel/internal/api/voiceover/models"
)

// Capability là một thao tác cụ thể trên kịch bản lồng tiếng.
type Capability string

const (
	CapView            Capability = "view"
	CapEditVoiceLink   Capability = "edit_voice_link"
	CapProducerApprove Capability = "producer_approve"
	CapAdminApprove    Capability = "admin_approve"
	CapMarkPaid        Capability = "mark_paid"
	CapDelete          Capability = "delete"
)

// Can là hàm quyết định thuần: ADMIN được mọi thao tác; các role khác chỉ được
// đúng thao tác gắn với khóa ngoại tương ứng trên kịch bản. Voice actor sửa được
// link ghi âm của mình nhưng không bao giờ tự duyệt ở cấp admin.
func Can(a actor.Actor, script *voiceovermodels.VoiceScript, cap Capability) bool {
	if a.IsAdmin() {
		return true
	}

	isProducer := a.Role == actor.RoleProducer && !script.ProducerID.IsZero() && script.ProducerID.Hex() == a.ID
	isVoiceActor := a.Role == actor.RoleVoiceTalent && !script.VoiceActorID.IsZero() && script.VoiceActorID.Hex() == a.ID

	switch cap {
	case CapView:
		return isProducer || isVoiceActor
	case CapEditVoiceLink:
		return isVoiceActor
	case CapProducerApprove:
		return isProducer
	case CapAdminApprove, CapMarkPaid, CapDelete:
		return false
	}
	return false
}
