// Package database - Index bổ sung (compound, unique) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"creator_panel/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// domainIndex mô tả một index nghiệp vụ trên một collection.
type domainIndex struct {
	Collection string
	Keys       bson.D
	Name       string
	Unique     bool
	Sparse     bool
}

// domainIndexSpecs liệt kê toàn bộ index nghiệp vụ. Tên field phải khớp bson tag
// của model tương ứng; sai tên thì index không bao giờ phục vụ được truy vấn nào.
func domainIndexSpecs() []domainIndex {
	return []domainIndex{
		// voiceover_edit_packs: tra cứu pack theo token, chống trùng token
		{
			Collection: global.MongoDB_ColNames.VoiceoverEditPacks,
			Keys:       bson.D{{Key: "token", Value: 1}},
			Name:       "editpack_token_unique",
			Unique:     true,
		},
		// voiceover_edit_packs: mỗi kịch bản chỉ có một pack
		{
			Collection: global.MongoDB_ColNames.VoiceoverEditPacks,
			Keys:       bson.D{{Key: "voiceoverId", Value: 1}},
			Name:       "editpack_voiceover_unique",
			Unique:     true,
		},
		// voiceover_scripts: danh sách chờ duyệt theo trạng thái
		{
			Collection: global.MongoDB_ColNames.VoiceoverScripts,
			Keys:       bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			Name:       "voiceover_status_created",
		},
		// voiceover_scripts: nghĩa vụ thanh toán theo giọng đọc
		{
			Collection: global.MongoDB_ColNames.VoiceoverScripts,
			Keys:       bson.D{{Key: "voiceActorId", Value: 1}, {Key: "status", Value: 1}},
			Name:       "voiceover_actor_status",
			Sparse:     true,
		},
		// finance_records: sổ thu chi theo người nhận
		{
			Collection: global.MongoDB_ColNames.FinanceRecords,
			Keys:       bson.D{{Key: "recipientType", Value: 1}, {Key: "recipientId", Value: 1}, {Key: "createdAt", Value: -1}},
			Name:       "finance_record_recipient",
		},
		// finance_payments: sao kê theo người nhận
		{
			Collection: global.MongoDB_ColNames.FinancePayments,
			Keys:       bson.D{{Key: "recipientType", Value: 1}, {Key: "recipientId", Value: 1}, {Key: "createdAt", Value: -1}},
			Name:       "finance_payment_recipient",
		},
		// finance_team_payments: công nợ thành viên đội
		{
			Collection: global.MongoDB_ColNames.FinanceTeamPayments,
			Keys:       bson.D{{Key: "teamMemberId", Value: 1}, {Key: "createdAt", Value: -1}},
			Name:       "finance_team_payment_member",
		},
		// content_registry: bảng kanban sản xuất
		{
			Collection: global.MongoDB_ColNames.ContentRegistry,
			Keys:       bson.D{{Key: "status", Value: 1}, {Key: "updatedAt", Value: -1}},
			Name:       "content_status_updated",
		},
		// audit_logs: tra cứu lịch sử theo đối tượng
		{
			Collection: global.MongoDB_ColNames.AuditLogs,
			Keys:       bson.D{{Key: "entityType", Value: 1}, {Key: "entityId", Value: 1}, {Key: "createdAt", Value: -1}},
			Name:       "audit_log_entity",
		},
	}
}

// CreateDomainIndexes tạo các index bổ sung cho các collection nghiệp vụ.
// Gọi sau khi đã khởi tạo registry collections.
func CreateDomainIndexes(ctx context.Context, db *mongo.Database) error {
	for _, spec := range domainIndexSpecs() {
		opts := options.Index().SetName(spec.Name)
		if spec.Unique {
			opts.SetUnique(true)
		}
		if spec.Sparse {
			opts.SetSparse(true)
		}
		_, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    spec.Keys,
			Options: opts,
		})
		if err != nil && !isIndexExistsError(err) {
			return err
		}
	}
	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
