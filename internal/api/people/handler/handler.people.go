package peoplehdl

import (
	"fmt"

	basehdl "creator_panel/internal/api/base/handler"
	peopledto "creator_panel/internal/api/people/dto"
	peoplemodels "creator_panel/internal/api/people/models"
	peoplesvc "creator_panel/internal/api/people/service"
)

// StreamerHandler xử lý các route CRUD cho streamer
type StreamerHandler struct {
	*basehdl.BaseHandler[peoplemodels.Streamer, peopledto.StreamerCreateInput, peopledto.StreamerUpdateInput]
}

// NewStreamerHandler tạo mới StreamerHandler
func NewStreamerHandler() (*StreamerHandler, error) {
	streamerService, err := peoplesvc.NewStreamerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create streamer service: %w", err)
	}
	return &StreamerHandler{
		BaseHandler: basehdl.NewBaseHandler[peoplemodels.Streamer, peopledto.StreamerCreateInput, peopledto.StreamerUpdateInput](streamerService),
	}, nil
}

// ContentCreatorHandler xử lý các route CRUD cho nhà sản xuất nội dung
type ContentCreatorHandler struct {
	*basehdl.BaseHandler[peoplemodels.ContentCreator, peopledto.ContentCreatorCreateInput, peopledto.ContentCreatorUpdateInput]
}

// NewContentCreatorHandler tạo mới ContentCreatorHandler
func NewContentCreatorHandler() (*ContentCreatorHandler, error) {
	creatorService, err := peoplesvc.NewContentCreatorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create content creator service: %w", err)
	}
	return &ContentCreatorHandler{
		BaseHandler: basehdl.NewBaseHandler[peoplemodels.ContentCreator, peopledto.ContentCreatorCreateInput, peopledto.ContentCreatorUpdateInput](creatorService),
	}, nil
}

// VoiceActorHandler xử lý các route CRUD cho giọng đọc
type VoiceActorHandler struct {
	*basehdl.BaseHandler[peoplemodels.VoiceActor, peopledto.VoiceActorCreateInput, peopledto.VoiceActorUpdateInput]
}

// NewVoiceActorHandler tạo mới VoiceActorHandler
func NewVoiceActorHandler() (*VoiceActorHandler, error) {
	voiceActorService, err := peoplesvc.NewVoiceActorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create voice actor service: %w", err)
	}
	return &VoiceActorHandler{
		BaseHandler: basehdl.NewBaseHandler[peoplemodels.VoiceActor, peopledto.VoiceActorCreateInput, peopledto.VoiceActorUpdateInput](voiceActorService),
	}, nil
}

// TeamMemberHandler xử lý các route CRUD cho thành viên đội
type TeamMemberHandler struct {
	*basehdl.BaseHandler[peoplemodels.TeamMember, peopledto.TeamMemberCreateInput, peopledto.TeamMemberUpdateInput]
}

// NewTeamMemberHandler tạo mới TeamMemberHandler
func NewTeamMemberHandler() (*TeamMemberHandler, error) {
	teamMemberService, err := peoplesvc.NewTeamMemberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create team member service: %w", err)
	}
	return &TeamMemberHandler{
		BaseHandler: basehdl.NewBaseHandler[peoplemodels.TeamMember, peopledto.TeamMemberCreateInput, peopledto.TeamMemberUpdateInput](teamMemberService),
	}, nil
}
