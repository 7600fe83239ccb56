package voiceoverhdl

import (
	"fmt"

	"creator_panel/internal/api/actor"
	basehdl "creator_panel/internal/api/base/handler"
	voiceoverdto "creator_panel/internal/api/voiceover/dto"
	voiceoversvc "creator_panel/internal/api/voiceover/service"
	"creator_panel/internal/common"
	"creator_panel/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EditPackHandler xử lý các route truy cập gói bàn giao qua token chia sẻ.
// Editor không có tài khoản: định danh duy nhất là token trong link.
type EditPackHandler struct {
	EditPackService *voiceoversvc.EditPackService
}

// NewEditPackHandler tạo mới EditPackHandler
func NewEditPackHandler() (*EditPackHandler, error) {
	editPackService, err := voiceoversvc.NewEditPackService()
	if err != nil {
		return nil, fmt.Errorf("failed to create edit pack service: %w", err)
	}
	return &EditPackHandler{EditPackService: editPackService}, nil
}

// HandleGetForScript xử lý GET /voice-scripts/:id/edit-pack.
// PRODUCER hoặc ADMIN lấy gói bàn giao của kịch bản kèm link chia sẻ để gửi editor.
func (h *EditPackHandler) HandleGetForScript(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, ok := actor.FromFiber(c)
		if !ok {
			basehdl.HandleErrorResponse(c, common.ErrUnauthorized)
			return nil
		}
		if !a.IsAdmin() && a.Role != actor.RoleProducer {
			basehdl.HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}
		scriptID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			basehdl.HandleErrorResponse(c, common.ErrInvalidFormat)
			return nil
		}
		pack, err := h.EditPackService.FindByVoiceoverID(c.UserContext(), scriptID)
		if err != nil {
			basehdl.HandleErrorResponse(c, err)
			return nil
		}
		if pack == nil {
			basehdl.HandleErrorResponse(c, common.ErrNotFound)
			return nil
		}
		basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"code":    common.StatusOK,
			"message": common.MsgSuccess,
			"data": fiber.Map{
				"pack":     pack,
				"shareUrl": h.EditPackService.ShareURL(pack),
			},
			"status": "success",
		})
		return nil
	})
}

// HandleGetByToken xử lý GET /edit-packs/:token.
// Token không tồn tại trả 404, token quá hạn trả 410.
func (h *EditPackHandler) HandleGetByToken(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		token := c.Params("token")
		if token == "" {
			basehdl.JSONResponse(c, common.StatusBadRequest, fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": "Thiếu token", "status": "error",
			})
			return nil
		}
		pack, err := h.EditPackService.GetByToken(c.UserContext(), token)
		if err != nil {
			basehdl.HandleErrorResponse(c, err)
			return nil
		}
		basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": pack, "status": "success",
		})
		return nil
	})
}

// HandleUpdateNotesByToken xử lý PUT /edit-packs/:token/notes.
func (h *EditPackHandler) HandleUpdateNotesByToken(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		token := c.Params("token")
		if token == "" {
			basehdl.JSONResponse(c, common.StatusBadRequest, fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": "Thiếu token", "status": "error",
			})
			return nil
		}
		var input voiceoverdto.EditPackNotesInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleErrorResponse(c, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Dữ liệu ghi chú không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}
		pack, err := h.EditPackService.UpdateNotesByToken(c.UserContext(), token, input.EditorNote, input.AssetLinks)
		if err != nil {
			basehdl.HandleErrorResponse(c, err)
			return nil
		}
		basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": pack, "status": "success",
		})
		return nil
	})
}
