// Package voiceoversvc - Test nhận kịch bản và phục hồi race tạo gói bàn giao.
package voiceoversvc

import (
	"context"
	"errors"
	"testing"

	"creator_panel/internal/api/actor"
	voiceovermodels "creator_panel/internal/api/voiceover/models"
	"creator_panel/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestClassifyClaim_DaThuocNguoiKhacLaConflict(t *testing.T) {
	actorA := primitive.NewObjectID()
	actorB := primitive.NewObjectID()
	script := &voiceovermodels.VoiceScript{ID: primitive.NewObjectID(), VoiceActorID: actorA}

	err := ClassifyClaim(script, actorB)
	require.Error(t, err, "B nhận kịch bản đã thuộc về A phải bị từ chối")

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusConflict, appErr.StatusCode)
	assert.Equal(t, actorA, script.VoiceActorID, "bản gán vẫn phải thuộc về A")
}

func TestClassifyClaim_ChuaGanHoacChinhMinh(t *testing.T) {
	caller := primitive.NewObjectID()

	unassigned := &voiceovermodels.VoiceScript{ID: primitive.NewObjectID()}
	assert.NoError(t, ClassifyClaim(unassigned, caller), "kịch bản chưa gán phải nhận được")

	own := &voiceovermodels.VoiceScript{ID: primitive.NewObjectID(), VoiceActorID: caller}
	assert.NoError(t, ClassifyClaim(own, caller), "claim lặp lại trên kịch bản của mình là vô hại")
}

func TestClaimFilter_ChiMatchChuaGanHoacChinhMinh(t *testing.T) {
	scriptID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()

	filter := ClaimFilter(scriptID, callerID)
	assert.Equal(t, scriptID, filter["_id"])

	branches, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, branches, 3)
	assert.Equal(t, bson.M{"$exists": false}, branches[0]["voiceActorId"])
	assert.Equal(t, primitive.NilObjectID, branches[1]["voiceActorId"])
	assert.Equal(t, callerID, branches[2]["voiceActorId"], "không có nhánh nào match voice actor khác")
}

func TestIsEditPackRace_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{
		{Code: 11000, Message: "E11000 duplicate key error"},
	}}
	assert.True(t, IsEditPackRace(dup), "duplicate key từ driver là thua race")

	assert.True(t, IsEditPackRace(common.ErrMongoDuplicate),
		"lỗi đã được ConvertMongoError bọc lại cũng phải nhận diện được")

	assert.False(t, IsEditPackRace(nil))
	assert.False(t, IsEditPackRace(errors.New("connection reset")))
	assert.False(t, IsEditPackRace(common.ErrNotFound))
}

func TestBulkAction_MoChoCapQuanLy(t *testing.T) {
	svc := &VoiceScriptService{}
	ctx := context.Background()

	for _, role := range []string{actor.RoleProducer, actor.RoleVoiceTalent, actor.RoleEditor, actor.RoleViewer} {
		_, err := svc.BulkAction(ctx, actor.Actor{ID: "u1", Role: role}, nil, BulkActionReject, 0, "x")
		assert.ErrorIs(t, err, common.ErrForbidden, "role %s không được thao tác hàng loạt", role)
	}

	// ADMIN và MANAGER qua gate; danh sách rỗng trả kết quả rỗng không đụng storage
	for _, role := range []string{actor.RoleAdmin, actor.RoleManager} {
		result, err := svc.BulkAction(ctx, actor.Actor{ID: "u1", Role: role}, nil, BulkActionReject, 0, "x")
		require.NoError(t, err, "role %s phải qua gate", role)
		assert.Empty(t, result.Success)
		assert.Empty(t, result.Failed)
	}
}
