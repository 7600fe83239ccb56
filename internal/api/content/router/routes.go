// Package router đăng ký các route thuộc domain content: sổ đăng ký nội dung và chuyển trạng thái.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"creator_panel/internal/api/actor"
	contenthdl "creator_panel/internal/api/content/handler"
	"creator_panel/internal/api/middleware"
	apirouter "creator_panel/internal/api/router"
)

// Register đăng ký tất cả route content lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	contentHandler, err := contenthdl.NewContentItemHandler()
	if err != nil {
		return fmt.Errorf("tạo ContentItemHandler: %w", err)
	}

	authMiddleware := middleware.RequireAuth()

	// CRUD cơ bản: ADMIN và PRODUCER được ghi, mọi role đã đăng nhập được đọc
	r.RegisterCRUDRoutes(v1, "/content-items", contentHandler, apirouter.ReadWriteConfig, actor.RoleAdmin, actor.RoleProducer)

	// POST /content-items/:id/transition — chuyển trạng thái theo quy trình sản xuất.
	// Kiểm tra role và bên được gán nằm trong service, không chặn ở middleware.
	apirouter.RegisterRouteWithMiddleware(v1, "/content-items", "POST", "/:id/transition", []fiber.Handler{authMiddleware}, contentHandler.HandleTransition)

	return nil
}
