// Package contentsvc - Test hàm quyết định chuyển trạng thái CanTransition.
package contentsvc

import (
	"errors"
	"testing"

	"creator_panel/internal/api/actor"
	contentmodels "creator_panel/internal/api/content/models"
	"creator_panel/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newItem(status string) *contentmodels.ContentItem {
	return &contentmodels.ContentItem{ID: primitive.NewObjectID(), Status: status}
}

func TestCanTransition_AdminBoQuaMoiRangBuoc(t *testing.T) {
	admin := actor.Actor{ID: primitive.NewObjectID().Hex(), Role: actor.RoleAdmin}
	item := newItem(contentmodels.ContentStatusPublished)
	// PUBLISHED -> DRAFT không có trong bảng cạnh nhưng ADMIN vẫn được phép
	if err := CanTransition(admin, item, contentmodels.ContentStatusDraft); err != nil {
		t.Errorf("ADMIN phải được chuyển tới mọi trạng thái, nhận lỗi: %v", err)
	}
}

func TestCanTransition_ProducerDuocGanChuyenHopLe(t *testing.T) {
	producerID := primitive.NewObjectID()
	producer := actor.Actor{ID: producerID.Hex(), Role: actor.RoleProducer}
	item := newItem(contentmodels.ContentStatusDraft)
	item.ProducerID = producerID
	if err := CanTransition(producer, item, contentmodels.ContentStatusScriptReady); err != nil {
		t.Errorf("producer được gán phải chuyển DRAFT -> SCRIPT_READY được, nhận lỗi: %v", err)
	}
}

func TestCanTransition_ProducerKhongDuocGanBiTuChoi(t *testing.T) {
	producer := actor.Actor{ID: primitive.NewObjectID().Hex(), Role: actor.RoleProducer}
	item := newItem(contentmodels.ContentStatusDraft)
	item.ProducerID = primitive.NewObjectID() // gán cho người khác
	err := CanTransition(producer, item, contentmodels.ContentStatusScriptReady)
	if !errors.Is(err, common.ErrForbidden) {
		t.Errorf("producer không được gán phải nhận ErrForbidden, nhận: %v", err)
	}
}

func TestCanTransition_ProducerNgoaiPhamViRole(t *testing.T) {
	producerID := primitive.NewObjectID()
	producer := actor.Actor{ID: producerID.Hex(), Role: actor.RoleProducer}
	item := newItem(contentmodels.ContentStatusReview)
	item.ProducerID = producerID
	// PUBLISHED nằm ngoài phạm vi role producer dù REVIEW -> PUBLISHED là cạnh hợp lệ
	err := CanTransition(producer, item, contentmodels.ContentStatusPublished)
	if !errors.Is(err, common.ErrForbidden) {
		t.Errorf("producer đặt PUBLISHED phải nhận ErrForbidden, nhận: %v", err)
	}
}

func TestCanTransition_CanhKhongHopLe(t *testing.T) {
	voiceID := primitive.NewObjectID()
	voice := actor.Actor{ID: voiceID.Hex(), Role: actor.RoleVoiceTalent}
	item := newItem(contentmodels.ContentStatusVoiceReady)
	item.VoiceActorID = voiceID
	// VOICE_READY -> VOICE_READY không phải cạnh hợp lệ dù nằm trong phạm vi role
	err := CanTransition(voice, item, contentmodels.ContentStatusVoiceReady)
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("phải nhận *common.Error, nhận: %v", err)
	}
	if appErr.Code != common.ErrCodeWorkflowTransition {
		t.Errorf("mã lỗi phải là workflow transition, nhận: %v", appErr.Code)
	}
	details, ok := appErr.Details.(map[string]interface{})
	if !ok {
		t.Fatal("Details phải là map chứa allowedTransitions")
	}
	if _, ok := details["allowedTransitions"]; !ok {
		t.Error("Details thiếu allowedTransitions")
	}
}

func TestCanTransition_EditorPhamViRole(t *testing.T) {
	editorID := primitive.NewObjectID()
	editor := actor.Actor{ID: editorID.Hex(), Role: actor.RoleEditor}
	item := newItem(contentmodels.ContentStatusEditing)
	item.EditorID = editorID
	if err := CanTransition(editor, item, contentmodels.ContentStatusReview); err != nil {
		t.Errorf("editor được gán phải chuyển EDITING -> REVIEW được, nhận lỗi: %v", err)
	}
	if err := CanTransition(editor, item, contentmodels.ContentStatusArchived); !errors.Is(err, common.ErrForbidden) {
		t.Errorf("editor đặt ARCHIVED phải nhận ErrForbidden, nhận: %v", err)
	}
}

func TestCanTransition_ViewerLuonBiTuChoi(t *testing.T) {
	viewer := actor.Actor{ID: primitive.NewObjectID().Hex(), Role: actor.RoleViewer}
	item := newItem(contentmodels.ContentStatusDraft)
	err := CanTransition(viewer, item, contentmodels.ContentStatusScriptReady)
	if !errors.Is(err, common.ErrForbidden) {
		t.Errorf("viewer phải nhận ErrForbidden, nhận: %v", err)
	}
}

func TestStatusTransitions_KhongCoTrangThaiDiemChet(t *testing.T) {
	for _, status := range []string{
		contentmodels.ContentStatusDraft, contentmodels.ContentStatusScriptReady,
		contentmodels.ContentStatusVoiceReady, contentmodels.ContentStatusEditing,
		contentmodels.ContentStatusReview, contentmodels.ContentStatusPublished,
		contentmodels.ContentStatusArchived,
	} {
		if len(contentmodels.AllowedTargets(status)) == 0 {
			t.Errorf("trạng thái %s không có cạnh đi ra", status)
		}
	}
}
