// Package audithdl - Handler nhật ký thao tác.
package audithdl

import (
	"fmt"

	auditmodels "creator_panel/internal/api/audit/models"
	auditsvc "creator_panel/internal/api/audit/service"
	basehdl "creator_panel/internal/api/base/handler"
)

// auditLogNoInput dùng làm placeholder cho generic input: audit log chỉ đọc qua API.
type auditLogNoInput struct{}

// AuditLogHandler xử lý các route đọc nhật ký thao tác.
type AuditLogHandler struct {
	*basehdl.BaseHandler[auditmodels.AuditLog, auditLogNoInput, auditLogNoInput]
	AuditService *auditsvc.AuditLogService
}

// NewAuditLogHandler tạo AuditLogHandler mới.
func NewAuditLogHandler() (*AuditLogHandler, error) {
	svc, err := auditsvc.NewAuditLogService()
	if err != nil {
		return nil, fmt.Errorf("tạo AuditLogService: %w", err)
	}
	return &AuditLogHandler{
		BaseHandler:  basehdl.NewBaseHandler[auditmodels.AuditLog, auditLogNoInput, auditLogNoInput](svc),
		AuditService: svc,
	}, nil
}
