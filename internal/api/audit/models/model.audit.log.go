// Package models - AuditLog thuộc domain audit (audit_logs).
// Nhật ký thao tác: ghi lại ai làm gì trên entity nào, kèm giá trị trước/sau.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog lưu một bản ghi nhật ký thao tác (audit_logs).
type AuditLog struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ActorID   string `json:"actorId" bson:"actorId"`
	ActorName string `json:"actorName,omitempty" bson:"actorName,omitempty"`
	ActorRole string `json:"actorRole" bson:"actorRole"`

	Action     string `json:"action" bson:"action"`                             // vd: APPROVE_SCRIPT, SETTLE_PAYMENT
	EntityType string `json:"entityType" bson:"entityType" index:"compound:audit_log_entity"` // vd: voiceover_script, finance_payment
	EntityID   string `json:"entityId" bson:"entityId" index:"compound:audit_log_entity"`

	OldValue map[string]interface{} `json:"oldValue,omitempty" bson:"oldValue,omitempty"`
	NewValue map[string]interface{} `json:"newValue,omitempty" bson:"newValue,omitempty"`
	Details  map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1,compound:audit_log_entity,order:-1"` // Unix ms
}
