// Package actor - Test role và các phép kiểm tra quyền cơ bản.
package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole_DanhSachRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleManager, RoleProducer, RoleVoiceTalent, RoleEditor, RoleViewer} {
		assert.True(t, IsValidRole(role), "role %s phải hợp lệ", role)
	}
	assert.False(t, IsValidRole("SUPERUSER"))
	assert.False(t, IsValidRole(""))
	assert.False(t, IsValidRole("admin"), "role phân biệt hoa thường")
}

func TestIsManagement_ChiAdminVaManager(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleAdmin, true},
		{RoleManager, true},
		{RoleProducer, false},
		{RoleVoiceTalent, false},
		{RoleEditor, false},
		{RoleViewer, false},
	}
	for _, tt := range tests {
		a := Actor{ID: "x", Role: tt.role}
		assert.Equal(t, tt.want, a.IsManagement(), "role %s", tt.role)
	}
}

func TestHasRole_AdminLuonQua(t *testing.T) {
	admin := Actor{Role: RoleAdmin}
	assert.True(t, admin.HasRole(RoleEditor))
	assert.True(t, admin.HasRole())

	manager := Actor{Role: RoleManager}
	assert.True(t, manager.HasRole(RoleManager))
	assert.False(t, manager.HasRole(), "MANAGER không có bypass như ADMIN")
	assert.False(t, manager.HasRole(RoleProducer))
}
