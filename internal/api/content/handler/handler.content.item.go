// Package contenthdl - Handler cho sổ đăng ký nội dung.
package contenthdl

import (
	"fmt"

	"creator_panel/internal/api/actor"
	basehdl "creator_panel/internal/api/base/handler"
	contentdto "creator_panel/internal/api/content/dto"
	contentmodels "creator_panel/internal/api/content/models"
	contentsvc "creator_panel/internal/api/content/service"
	"creator_panel/internal/common"
	"creator_panel/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentItemHandler xử lý các route CRUD và chuyển trạng thái cho mục nội dung
type ContentItemHandler struct {
	*basehdl.BaseHandler[contentmodels.ContentItem, contentdto.ContentItemCreateInput, contentdto.ContentItemUpdateInput]
	ContentService *contentsvc.ContentItemService
}

// NewContentItemHandler tạo mới ContentItemHandler
func NewContentItemHandler() (*ContentItemHandler, error) {
	contentService, err := contentsvc.NewContentItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create content item service: %w", err)
	}
	return &ContentItemHandler{
		BaseHandler:    basehdl.NewBaseHandler[contentmodels.ContentItem, contentdto.ContentItemCreateInput, contentdto.ContentItemUpdateInput](contentService),
		ContentService: contentService,
	}, nil
}

// HandleTransition xử lý POST /content-items/:id/transition.
func (h *ContentItemHandler) HandleTransition(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, ok := actor.FromFiber(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrUnauthorized)
			return nil
		}

		itemID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "ID không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		var input contentdto.ContentItemTransitionInput
		if err := c.Bind().Body(&input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Trạng thái yêu cầu không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		updated, err := h.ContentService.Transition(h.ActorContext(c), a, itemID, input.Status)
		h.HandleResponse(c, updated, err)
		return nil
	})
}
