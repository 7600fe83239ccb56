// Package router đăng ký các route thuộc domain people: quản lý hồ sơ người nhận tiền.
// Mọi role đã đăng nhập đều đọc được; ghi chỉ dành cho ADMIN.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	peoplehdl "creator_panel/internal/api/people/handler"
	apirouter "creator_panel/internal/api/router"
)

// Register đăng ký tất cả route people lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	streamerHandler, err := peoplehdl.NewStreamerHandler()
	if err != nil {
		return fmt.Errorf("tạo StreamerHandler: %w", err)
	}
	creatorHandler, err := peoplehdl.NewContentCreatorHandler()
	if err != nil {
		return fmt.Errorf("tạo ContentCreatorHandler: %w", err)
	}
	voiceActorHandler, err := peoplehdl.NewVoiceActorHandler()
	if err != nil {
		return fmt.Errorf("tạo VoiceActorHandler: %w", err)
	}
	teamMemberHandler, err := peoplehdl.NewTeamMemberHandler()
	if err != nil {
		return fmt.Errorf("tạo TeamMemberHandler: %w", err)
	}

	// writeRoles rỗng = chỉ ADMIN được ghi
	r.RegisterCRUDRoutes(v1, "/streamers", streamerHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/creators", creatorHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/voice-actors", voiceActorHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/team-members", teamMemberHandler, apirouter.ReadWriteConfig)

	return nil
}
