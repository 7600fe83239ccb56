package peoplesvc

import (
	"context"
	"fmt"

	basesvc "creator_panel/internal/api/base/service"
	peoplemodels "creator_panel/internal/api/people/models"
	"creator_panel/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StreamerService xử lý logic cho hồ sơ streamer
type StreamerService struct {
	*basesvc.BaseServiceMongoImpl[peoplemodels.Streamer]
}

// NewStreamerService tạo mới StreamerService
func NewStreamerService() (*StreamerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PeopleStreamers)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.PeopleStreamers)
	}
	return &StreamerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[peoplemodels.Streamer](collection),
	}, nil
}

// DeleteById xóa streamer sau khi kiểm tra không còn dữ liệu tài chính tham chiếu
func (s *StreamerService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := basesvc.ValidateBeforeDeleteStreamer(ctx, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// ContentCreatorService xử lý logic cho hồ sơ nhà sản xuất nội dung
type ContentCreatorService struct {
	*basesvc.BaseServiceMongoImpl[peoplemodels.ContentCreator]
}

// NewContentCreatorService tạo mới ContentCreatorService
func NewContentCreatorService() (*ContentCreatorService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PeopleCreators)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.PeopleCreators)
	}
	return &ContentCreatorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[peoplemodels.ContentCreator](collection),
	}, nil
}

// DeleteById xóa creator sau khi kiểm tra các tham chiếu liên quan
func (s *ContentCreatorService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := basesvc.ValidateBeforeDeleteCreator(ctx, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// VoiceActorService xử lý logic cho hồ sơ giọng đọc
type VoiceActorService struct {
	*basesvc.BaseServiceMongoImpl[peoplemodels.VoiceActor]
}

// NewVoiceActorService tạo mới VoiceActorService
func NewVoiceActorService() (*VoiceActorService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PeopleVoiceActors)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.PeopleVoiceActors)
	}
	return &VoiceActorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[peoplemodels.VoiceActor](collection),
	}, nil
}

// DeleteById xóa voice actor sau khi kiểm tra không còn kịch bản hay bản ghi chi phí tham chiếu
func (s *VoiceActorService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := basesvc.ValidateBeforeDeleteVoiceActor(ctx, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// TeamMemberService xử lý logic cho hồ sơ thành viên đội
type TeamMemberService struct {
	*basesvc.BaseServiceMongoImpl[peoplemodels.TeamMember]
}

// NewTeamMemberService tạo mới TeamMemberService
func NewTeamMemberService() (*TeamMemberService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PeopleTeamMembers)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.PeopleTeamMembers)
	}
	return &TeamMemberService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[peoplemodels.TeamMember](collection),
	}, nil
}

// DeleteById xóa thành viên đội sau khi kiểm tra không còn khoản chi tham chiếu
func (s *TeamMemberService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := basesvc.ValidateBeforeDeleteTeamMember(ctx, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
