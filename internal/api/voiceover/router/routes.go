// Package router đăng ký các route thuộc domain voiceover: kịch bản lồng tiếng và gói bàn giao.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"creator_panel/internal/api/actor"
	"creator_panel/internal/api/middleware"
	apirouter "creator_panel/internal/api/router"
	voiceoverhdl "creator_panel/internal/api/voiceover/handler"
)

// Register đăng ký tất cả route voiceover lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	scriptHandler, err := voiceoverhdl.NewVoiceScriptHandler()
	if err != nil {
		return fmt.Errorf("tạo VoiceScriptHandler: %w", err)
	}
	editPackHandler, err := voiceoverhdl.NewEditPackHandler()
	if err != nil {
		return fmt.Errorf("tạo EditPackHandler: %w", err)
	}

	authMiddleware := middleware.RequireAuth()
	adminOnly := middleware.RequireRoles() // danh sách rỗng = chỉ ADMIN
	managementOnly := middleware.RequireRoles(actor.RoleManager)

	// CRUD cơ bản: ADMIN và PRODUCER được ghi
	r.RegisterCRUDRoutes(v1, "/voice-scripts", scriptHandler, apirouter.ReadWriteConfig, actor.RoleAdmin, actor.RoleProducer)

	// Các bước nghiệp vụ của pipeline duyệt. Quyền theo tài nguyên (đúng người được gán)
	// kiểm tra trong service; middleware chỉ chặn tầng role thô.
	apirouter.RegisterRouteWithMiddleware(v1, "/voice-scripts", "POST", "/:id/producer-approve", []fiber.Handler{authMiddleware}, scriptHandler.HandleProducerApprove)
	apirouter.RegisterRouteWithMiddleware(v1, "/voice-scripts", "POST", "/:id/admin-approve", []fiber.Handler{authMiddleware, adminOnly}, scriptHandler.HandleAdminApprove)
	apirouter.RegisterRouteWithMiddleware(v1, "/voice-scripts", "POST", "/:id/reject", []fiber.Handler{authMiddleware, adminOnly}, scriptHandler.HandleReject)
	apirouter.RegisterRouteWithMiddleware(v1, "/voice-scripts", "POST", "/:id/archive", []fiber.Handler{authMiddleware, adminOnly}, scriptHandler.HandleArchive)
	apirouter.RegisterRouteWithMiddleware(v1, "/voice-scripts", "POST", "/:id/pay", []fiber.Handler{authMiddleware, adminOnly}, scriptHandler.HandlePay)
	apirouter.RegisterRouteWithMiddleware(v1, "/voice-scripts", "POST", "/:id/claim", []fiber.Handler{authMiddleware}, scriptHandler.HandleClaim)
	apirouter.RegisterRouteWithMiddleware(v1, "/voice-scripts", "PUT", "/:id/voice-link", []fiber.Handler{authMiddleware}, scriptHandler.HandleUpdateVoiceLink)
	apirouter.RegisterRouteWithMiddleware(v1, "/voice-scripts", "DELETE", "/:id/voice-link", []fiber.Handler{authMiddleware}, scriptHandler.HandleClearVoiceLink)
	apirouter.RegisterRouteWithMiddleware(v1, "/voice-scripts", "POST", "/bulk-action", []fiber.Handler{authMiddleware, managementOnly}, scriptHandler.HandleBulkAction)
	apirouter.RegisterRouteWithMiddleware(v1, "/voice-scripts", "GET", "/:id/edit-pack", []fiber.Handler{authMiddleware}, editPackHandler.HandleGetForScript)

	// Gói bàn giao truy cập công khai qua token, không yêu cầu đăng nhập.
	apirouter.RegisterRouteWithMiddleware(v1, "/edit-packs", "GET", "/:token", nil, editPackHandler.HandleGetByToken)
	apirouter.RegisterRouteWithMiddleware(v1, "/edit-packs", "PUT", "/:token/notes", nil, editPackHandler.HandleUpdateNotesByToken)

	return nil
}
