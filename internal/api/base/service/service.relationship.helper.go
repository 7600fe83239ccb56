package basesvc

import (
	"context"
	"fmt"
	"creator_panel/internal/common"
	"creator_panel/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelationshipCheck dinh nghia mot quan he can kiem tra
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
}

// CheckRelationshipExists kiem tra co record nao trong collection khac dang tro toi record nay khong
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// CheckRelationshipExistsWithFilter kiem tra quan he voi filter tuy chinh
func CheckRelationshipExistsWithFilter(ctx context.Context, filter bson.M, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// GetRelationshipCount tra ve so luong record dang tham chieu toi record nay
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Khong tim thay collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteStreamer kiem tra cac quan he cua Streamer truoc khi xoa
func ValidateBeforeDeleteStreamer(ctx context.Context, streamerID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.FinanceStreams, FieldName: "streamerId", ErrorMessage: "Khong the xoa streamer vi co %d dong doanh thu stream truc thuoc. Vui long xoa cac dong doanh thu truoc."},
		{CollectionName: global.MongoDB_ColNames.FinancePayments, FieldName: "recipientId", ErrorMessage: "Khong the xoa streamer vi co %d khoan chi tra dang tham chieu. Vui long xu ly cac khoan chi tra truoc."},
	}
	return CheckRelationshipExists(ctx, streamerID, checks)
}

// ValidateBeforeDeleteVoiceActor kiem tra cac quan he cua VoiceActor truoc khi xoa
func ValidateBeforeDeleteVoiceActor(ctx context.Context, voiceActorID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.VoiceoverScripts, FieldName: "voiceActorId", ErrorMessage: "Khong the xoa giong doc vi co %d kich ban dang duoc gan. Vui long go giong doc khoi cac kich ban truoc."},
		{CollectionName: global.MongoDB_ColNames.FinancePayments, FieldName: "recipientId", ErrorMessage: "Khong the xoa giong doc vi co %d khoan chi tra dang tham chieu."},
		{CollectionName: global.MongoDB_ColNames.FinanceRecords, FieldName: "recipientId", ErrorMessage: "Khong the xoa giong doc vi co %d but toan thu chi dang tham chieu."},
	}
	return CheckRelationshipExists(ctx, voiceActorID, checks)
}

// ValidateBeforeDeleteCreator kiem tra cac quan he cua ContentCreator truoc khi xoa
func ValidateBeforeDeleteCreator(ctx context.Context, creatorID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.FinancePayments, FieldName: "recipientId", ErrorMessage: "Khong the xoa nguoi sang tao vi co %d khoan chi tra dang tham chieu. Vui long xu ly cac khoan chi tra truoc."},
		{CollectionName: global.MongoDB_ColNames.FinanceRecords, FieldName: "recipientId", ErrorMessage: "Khong the xoa nguoi sang tao vi co %d but toan thu chi dang tham chieu."},
	}
	return CheckRelationshipExists(ctx, creatorID, checks)
}

// ValidateBeforeDeleteTeamMember kiem tra cac quan he cua TeamMember truoc khi xoa
func ValidateBeforeDeleteTeamMember(ctx context.Context, memberID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.FinanceTeamPayments, FieldName: "teamMemberId", ErrorMessage: "Khong the xoa thanh vien vi co %d khoan chi tra dang tham chieu. Vui long xu ly cac khoan chi tra truoc."},
	}
	return CheckRelationshipExists(ctx, memberID, checks)
}
