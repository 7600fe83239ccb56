// Package router đăng ký các route thuộc domain finance: nguồn nghĩa vụ, sao kê và quyết toán.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"creator_panel/internal/api/actor"
	financehdl "creator_panel/internal/api/finance/handler"
	"creator_panel/internal/api/middleware"
	apirouter "creator_panel/internal/api/router"
)

// Register đăng ký tất cả route finance lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	streamHandler, err := financehdl.NewStreamHandler()
	if err != nil {
		return fmt.Errorf("tạo StreamHandler: %w", err)
	}
	paymentHandler, err := financehdl.NewPaymentHandler()
	if err != nil {
		return fmt.Errorf("tạo PaymentHandler: %w", err)
	}
	teamPaymentHandler, err := financehdl.NewTeamPaymentHandler()
	if err != nil {
		return fmt.Errorf("tạo TeamPaymentHandler: %w", err)
	}
	financeRecordHandler, err := financehdl.NewFinanceRecordHandler()
	if err != nil {
		return fmt.Errorf("tạo FinanceRecordHandler: %w", err)
	}
	ledgerHandler, err := financehdl.NewLedgerHandler()
	if err != nil {
		return fmt.Errorf("tạo LedgerHandler: %w", err)
	}

	authMiddleware := middleware.RequireAuth()
	managementOnly := middleware.RequireRoles(actor.RoleManager) // ADMIN luôn qua, MANAGER được phép

	// Nguồn nghĩa vụ: chỉ ADMIN được ghi
	r.RegisterCRUDRoutes(v1, "/finance/streams", streamHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/finance/payments", paymentHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/finance/team-payments", teamPaymentHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/finance/records", financeRecordHandler, apirouter.ReadWriteConfig)

	// GET /finance/statements/:kind/:id — sao kê hợp nhất của một người nhận.
	// Quyền "tự xem của mình" kiểm tra trong handler, không chặn ở middleware.
	apirouter.RegisterRouteWithMiddleware(v1, "/finance", "GET", "/statements/:kind/:id", []fiber.Handler{authMiddleware}, ledgerHandler.HandleGetStatement)
	// GET /finance/my-statement — sao kê của chính actor đang đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/finance", "GET", "/my-statement", []fiber.Handler{authMiddleware}, ledgerHandler.HandleMyStatement)
	// POST /finance/settle — quyết toán, cấp quản lý (ADMIN hoặc MANAGER)
	apirouter.RegisterRouteWithMiddleware(v1, "/finance", "POST", "/settle", []fiber.Handler{authMiddleware, managementOnly}, ledgerHandler.HandleSettle)

	return nil
}
