package financehdl

import (
	"fmt"
	"strconv"

	"creator_panel/internal/api/actor"
	basehdl "creator_panel/internal/api/base/handler"
	financedto "creator_panel/internal/api/finance/dto"
	financemodels "creator_panel/internal/api/finance/models"
	financesvc "creator_panel/internal/api/finance/service"
	"creator_panel/internal/common"
	"creator_panel/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LedgerHandler xử lý các route sao kê và quyết toán
type LedgerHandler struct {
	LedgerService     *financesvc.LedgerService
	SettlementService *financesvc.SettlementService
}

// NewLedgerHandler tạo mới LedgerHandler
func NewLedgerHandler() (*LedgerHandler, error) {
	ledgerService, err := financesvc.NewLedgerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger service: %w", err)
	}
	settlementService, err := financesvc.NewSettlementService()
	if err != nil {
		return nil, fmt.Errorf("failed to create settlement service: %w", err)
	}
	return &LedgerHandler{LedgerService: ledgerService, SettlementService: settlementService}, nil
}

func parsePagination(c fiber.Ctx) (limit, offset int64) {
	limit = 50
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	if s := c.Query("offset"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

func parsePayee(kind, rawID string) (financemodels.Payee, error) {
	if !financemodels.IsValidPayeeKind(kind) {
		return financemodels.Payee{}, common.NewError(common.ErrCodeValidationInput, "Loại người nhận không hợp lệ: "+kind, common.StatusBadRequest, nil)
	}
	payeeID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return financemodels.Payee{}, common.NewError(common.ErrCodeValidationInput, "ID người nhận không hợp lệ", common.StatusBadRequest, nil)
	}
	return financemodels.Payee{Kind: financemodels.PayeeKind(kind), ID: payeeID}, nil
}

// HandleGetStatement xử lý GET /finance/statements/:kind/:id.
// ADMIN xem sao kê của bất kỳ ai; người nhận đã đăng nhập chỉ xem được của chính mình.
func (h *LedgerHandler) HandleGetStatement(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, ok := actor.FromFiber(c)
		if !ok {
			basehdl.HandleErrorResponse(c, common.ErrUnauthorized)
			return nil
		}
		payee, err := parsePayee(c.Params("kind"), c.Params("id"))
		if err != nil {
			basehdl.HandleErrorResponse(c, err)
			return nil
		}
		if !a.IsAdmin() && a.ID != payee.ID.Hex() {
			basehdl.HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}

		limit, offset := parsePagination(c)
		statement, err := h.LedgerService.GetStatement(c.UserContext(), payee, limit, offset)
		if err != nil {
			basehdl.HandleErrorResponse(c, err)
			return nil
		}
		basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": statement, "status": "success",
		})
		return nil
	})
}

// HandleMyStatement xử lý GET /finance/my-statement?kind=...
// Id người nhận lấy từ chính actor đang đăng nhập.
func (h *LedgerHandler) HandleMyStatement(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, ok := actor.FromFiber(c)
		if !ok {
			basehdl.HandleErrorResponse(c, common.ErrUnauthorized)
			return nil
		}
		payee, err := parsePayee(c.Query("kind"), a.ID)
		if err != nil {
			basehdl.HandleErrorResponse(c, err)
			return nil
		}

		limit, offset := parsePagination(c)
		statement, err := h.LedgerService.GetStatement(c.UserContext(), payee, limit, offset)
		if err != nil {
			basehdl.HandleErrorResponse(c, err)
			return nil
		}
		basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": statement, "status": "success",
		})
		return nil
	})
}

// HandleSettle xử lý POST /finance/settle.
func (h *LedgerHandler) HandleSettle(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		a, ok := actor.FromFiber(c)
		if !ok {
			basehdl.HandleErrorResponse(c, common.ErrUnauthorized)
			return nil
		}
		var input financedto.SettleInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleErrorResponse(c, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Dữ liệu quyết toán không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}
		payee, err := parsePayee(input.PayeeKind, input.PayeeID)
		if err != nil {
			basehdl.HandleErrorResponse(c, err)
			return nil
		}

		result, err := h.SettlementService.Settle(actor.ToContext(c.UserContext(), a), a, payee, input.Amount, input.Period, input.Note)
		if err != nil {
			basehdl.HandleErrorResponse(c, err)
			return nil
		}
		basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": result, "status": "success",
		})
		return nil
	})
}
