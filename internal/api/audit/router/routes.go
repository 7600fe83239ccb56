// Package router đăng ký các route thuộc domain audit: đọc nhật ký thao tác (chỉ ADMIN).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	audithdl "creator_panel/internal/api/audit/handler"
	"creator_panel/internal/api/middleware"
	apirouter "creator_panel/internal/api/router"
)

// Register đăng ký tất cả route audit lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	auditHandler, err := audithdl.NewAuditLogHandler()
	if err != nil {
		return fmt.Errorf("tạo AuditLogHandler: %w", err)
	}

	authMiddleware := middleware.RequireAuth()
	adminOnly := middleware.RequireRoles() // danh sách rỗng = chỉ ADMIN

	// GET /audit-logs/find-with-pagination — đọc nhật ký có phân trang
	apirouter.RegisterRouteWithMiddleware(v1, "/audit-logs", "GET", "/find-with-pagination", []fiber.Handler{authMiddleware, adminOnly}, auditHandler.FindWithPagination)
	// GET /audit-logs/find — đọc nhật ký theo filter
	apirouter.RegisterRouteWithMiddleware(v1, "/audit-logs", "GET", "/find", []fiber.Handler{authMiddleware, adminOnly}, auditHandler.Find)
	// GET /audit-logs/count
	apirouter.RegisterRouteWithMiddleware(v1, "/audit-logs", "GET", "/count", []fiber.Handler{authMiddleware, adminOnly}, auditHandler.CountDocuments)

	return nil
}
