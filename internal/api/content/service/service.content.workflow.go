// Package contentsvc xử lý quy trình trạng thái của mục nội dung.
package contentsvc

import (
	"creator_panel/internal/api/actor"
	contentmodels "creator_panel/internal/api/content/models"
	"creator_panel/internal/common"
	"creator_panel/internal/utility"
)

// roleTransitionTargets giới hạn trạng thái đích mà từng role được phép đặt.
// ADMIN không nằm trong bảng này vì được bỏ qua mọi ràng buộc.
var roleTransitionTargets = map[string][]string{
	actor.RoleProducer: {
		contentmodels.ContentStatusDraft,
		contentmodels.ContentStatusScriptReady,
	},
	actor.RoleVoiceTalent: {
		contentmodels.ContentStatusScriptReady,
		contentmodels.ContentStatusVoiceReady,
	},
	actor.RoleEditor: {
		contentmodels.ContentStatusVoiceReady,
		contentmodels.ContentStatusEditing,
		contentmodels.ContentStatusReview,
	},
}

// assignedPartyID trả về id của bên được gán tương ứng với role của actor.
func assignedPartyID(a actor.Actor, item *contentmodels.ContentItem) (string, bool) {
	switch a.Role {
	case actor.RoleProducer:
		return item.ProducerID.Hex(), !item.ProducerID.IsZero()
	case actor.RoleVoiceTalent:
		return item.VoiceActorID.Hex(), !item.VoiceActorID.IsZero()
	case actor.RoleEditor:
		return item.EditorID.Hex(), !item.EditorID.IsZero()
	}
	return "", false
}

// CanTransition là hàm quyết định thuần cho một lần chuyển trạng thái.
// ADMIN được chuyển tới bất kỳ trạng thái nào, kể cả ngoài bảng cạnh (lối thoát để sửa dữ liệu).
// Các role khác phải thỏa đủ ba điều kiện: trạng thái đích nằm trong phạm vi role,
// actor đúng là bên được gán trên mục nội dung, và cạnh (hiện tại, đích) hợp lệ.
func CanTransition(a actor.Actor, item *contentmodels.ContentItem, target string) error {
	if a.IsAdmin() {
		return nil
	}

	targets, ok := roleTransitionTargets[a.Role]
	if !ok || !utility.Contains(targets, target) {
		return common.ErrForbidden
	}

	assignedID, assigned := assignedPartyID(a, item)
	if !assigned || assignedID != a.ID {
		return common.ErrForbidden
	}

	if !contentmodels.IsValidTransition(item.Status, target) {
		return common.NewInvalidTransitionError(item.Status, target, contentmodels.AllowedTargets(item.Status))
	}
	return nil
}
