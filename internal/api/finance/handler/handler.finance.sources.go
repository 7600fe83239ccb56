// Package financehdl - Handler cho sổ cái và quyết toán.
package financehdl

import (
	"fmt"

	basehdl "creator_panel/internal/api/base/handler"
	financedto "creator_panel/internal/api/finance/dto"
	financemodels "creator_panel/internal/api/finance/models"
	financesvc "creator_panel/internal/api/finance/service"
)

// StreamHandler xử lý các route CRUD cho bản ghi doanh thu stream
type StreamHandler struct {
	*basehdl.BaseHandler[financemodels.Stream, financedto.StreamCreateInput, financedto.StreamUpdateInput]
}

// NewStreamHandler tạo mới StreamHandler
func NewStreamHandler() (*StreamHandler, error) {
	streamService, err := financesvc.NewStreamService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stream service: %w", err)
	}
	return &StreamHandler{
		BaseHandler: basehdl.NewBaseHandler[financemodels.Stream, financedto.StreamCreateInput, financedto.StreamUpdateInput](streamService),
	}, nil
}

// PaymentHandler xử lý các route CRUD cho khoản thanh toán chung
type PaymentHandler struct {
	*basehdl.BaseHandler[financemodels.Payment, financedto.PaymentCreateInput, financedto.PaymentUpdateInput]
}

// NewPaymentHandler tạo mới PaymentHandler
func NewPaymentHandler() (*PaymentHandler, error) {
	paymentService, err := financesvc.NewPaymentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %w", err)
	}
	return &PaymentHandler{
		BaseHandler: basehdl.NewBaseHandler[financemodels.Payment, financedto.PaymentCreateInput, financedto.PaymentUpdateInput](paymentService),
	}, nil
}

// TeamPaymentHandler xử lý các route CRUD cho khoản trả thành viên đội
type TeamPaymentHandler struct {
	*basehdl.BaseHandler[financemodels.TeamPayment, financedto.TeamPaymentCreateInput, financedto.TeamPaymentUpdateInput]
}

// NewTeamPaymentHandler tạo mới TeamPaymentHandler
func NewTeamPaymentHandler() (*TeamPaymentHandler, error) {
	teamPaymentService, err := financesvc.NewTeamPaymentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create team payment service: %w", err)
	}
	return &TeamPaymentHandler{
		BaseHandler: basehdl.NewBaseHandler[financemodels.TeamPayment, financedto.TeamPaymentCreateInput, financedto.TeamPaymentUpdateInput](teamPaymentService),
	}, nil
}

// FinanceRecordHandler xử lý các route CRUD cho bút toán thu chi
type FinanceRecordHandler struct {
	*basehdl.BaseHandler[financemodels.FinanceRecord, financedto.FinanceRecordCreateInput, financedto.FinanceRecordUpdateInput]
}

// NewFinanceRecordHandler tạo mới FinanceRecordHandler
func NewFinanceRecordHandler() (*FinanceRecordHandler, error) {
	financeRecordService, err := financesvc.NewFinanceRecordService()
	if err != nil {
		return nil, fmt.Errorf("failed to create finance record service: %w", err)
	}
	return &FinanceRecordHandler{
		BaseHandler: basehdl.NewBaseHandler[financemodels.FinanceRecord, financedto.FinanceRecordCreateInput, financedto.FinanceRecordUpdateInput](financeRecordService),
	}, nil
}
