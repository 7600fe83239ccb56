// Package voiceoverhdl - Handler cho pipeline duyệt kịch bản lồng tiếng.
package voiceoverhdl

import (
	"fmt"

	"creator_panel/internal/api/actor"
	basehdl "creator_panel/internal/api/base/handler"
	voiceoverdto "creator_panel/internal/api/voiceover/dto"
	voiceovermodels "creator_panel/internal/api/voiceover/models"
	voiceoversvc "creator_panel/internal/api/voiceover/service"
	"creator_panel/internal/common"
	"creator_panel/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VoiceScriptHandler xử lý các route CRUD và nghiệp vụ duyệt cho kịch bản lồng tiếng
type VoiceScriptHandler struct {
	*basehdl.BaseHandler[voiceovermodels.VoiceScript, voiceoverdto.VoiceScriptCreateInput, voiceoverdto.VoiceScriptUpdateInput]
	ScriptService *voiceoversvc.VoiceScriptService
}

// NewVoiceScriptHandler tạo mới VoiceScriptHandler
func NewVoiceScriptHandler() (*VoiceScriptHandler, error) {
	scriptService, err := voiceoversvc.NewVoiceScriptService()
	if err != nil {
		return nil, fmt.Errorf("failed to create voice script service: %w", err)
	}
	return &VoiceScriptHandler{
		BaseHandler:   basehdl.NewBaseHandler[voiceovermodels.VoiceScript, voiceoverdto.VoiceScriptCreateInput, voiceoverdto.VoiceScriptUpdateInput](scriptService),
		ScriptService: scriptService,
	}, nil
}

// actorAndScriptID rút actor và id kịch bản từ request, dùng chung cho các route nghiệp vụ.
func (h *VoiceScriptHandler) actorAndScriptID(c fiber.Ctx) (actor.Actor, primitive.ObjectID, error) {
	a, ok := actor.FromFiber(c)
	if !ok {
		return actor.Actor{}, primitive.NilObjectID, common.ErrUnauthorized
	}
	scriptID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return actor.Actor{}, primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "ID không hợp lệ", common.StatusBadRequest, nil)
	}
	return a, scriptID, nil
}

// HandleProducerApprove xử lý POST /voice-scripts/:id/producer-approve.
func (h *VoiceScriptHandler) HandleProducerApprove(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, scriptID, err := h.actorAndScriptID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		updated, err := h.ScriptService.ProducerApprove(h.ActorContext(c), a, scriptID)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleAdminApprove xử lý POST /voice-scripts/:id/admin-approve.
func (h *VoiceScriptHandler) HandleAdminApprove(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, scriptID, err := h.actorAndScriptID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input voiceoverdto.AdminApproveInput
		if err := c.Bind().Body(&input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		updated, err := h.ScriptService.AdminApprove(h.ActorContext(c), a, scriptID, input.Price)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleReject xử lý POST /voice-scripts/:id/reject.
func (h *VoiceScriptHandler) HandleReject(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, scriptID, err := h.actorAndScriptID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input voiceoverdto.RejectInput
		if err := c.Bind().Body(&input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Lý do từ chối không được để trống", common.StatusBadRequest, nil))
			return nil
		}
		updated, err := h.ScriptService.Reject(h.ActorContext(c), a, scriptID, input.Reason)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleArchive xử lý POST /voice-scripts/:id/archive.
func (h *VoiceScriptHandler) HandleArchive(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, scriptID, err := h.actorAndScriptID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		updated, err := h.ScriptService.Archive(h.ActorContext(c), a, scriptID)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandlePay xử lý POST /voice-scripts/:id/pay.
func (h *VoiceScriptHandler) HandlePay(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, scriptID, err := h.actorAndScriptID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		updated, err := h.ScriptService.Pay(h.ActorContext(c), a, scriptID)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleClaim xử lý POST /voice-scripts/:id/claim.
func (h *VoiceScriptHandler) HandleClaim(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, scriptID, err := h.actorAndScriptID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		updated, err := h.ScriptService.Claim(h.ActorContext(c), a, scriptID)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleUpdateVoiceLink xử lý PUT /voice-scripts/:id/voice-link.
func (h *VoiceScriptHandler) HandleUpdateVoiceLink(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, scriptID, err := h.actorAndScriptID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input voiceoverdto.VoiceLinkInput
		if err := c.Bind().Body(&input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "voiceLink phải là URL hợp lệ", common.StatusBadRequest, nil))
			return nil
		}
		updated, err := h.ScriptService.UpdateVoiceLink(h.ActorContext(c), a, scriptID, input.VoiceLink)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleClearVoiceLink xử lý DELETE /voice-scripts/:id/voice-link.
func (h *VoiceScriptHandler) HandleClearVoiceLink(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, scriptID, err := h.actorAndScriptID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		updated, err := h.ScriptService.ClearVoiceLink(h.ActorContext(c), a, scriptID)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleBulkAction xử lý POST /voice-scripts/bulk-action.
func (h *VoiceScriptHandler) HandleBulkAction(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, ok := actor.FromFiber(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrUnauthorized)
			return nil
		}
		var input voiceoverdto.BulkActionInput
		if err := c.Bind().Body(&input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Dữ liệu thao tác hàng loạt không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}
		result, err := h.ScriptService.BulkAction(h.ActorContext(c), a, input.IDs, input.Action, input.Price, input.Reason)
		h.HandleResponse(c, result, err)
		return nil
	})
}
