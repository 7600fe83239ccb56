package actor

// Package actor định nghĩa danh tính người thao tác (actor) được giải mã từ JWT.
// Mỗi request mang một actor với role cố định; phân quyền của toàn hệ thống dựa trên role này.

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// Các role của actor trong hệ thống
const (
	RoleAdmin       = "ADMIN"        // Quản trị viên, bỏ qua mọi kiểm tra phân quyền
	RoleManager     = "MANAGER"      // Quản lý, được thao tác hàng loạt và quyết toán
	RoleProducer    = "PRODUCER"     // Nhà sản xuất, duyệt kịch bản và quản lý nội dung
	RoleVoiceTalent = "VOICE_TALENT" // Giọng đọc, nhận và hoàn thành kịch bản lồng tiếng
	RoleEditor      = "EDITOR"       // Người dựng phim, nhận gói bàn giao
	RoleViewer      = "VIEWER"       // Chỉ xem
)

// AllRoles liệt kê tất cả role hợp lệ
var AllRoles = []string{RoleAdmin, RoleManager, RoleProducer, RoleVoiceTalent, RoleEditor, RoleViewer}

// Actor là danh tính người thao tác được giải mã từ JWT claims
type Actor struct {
	ID   string // ID của actor (claim "id")
	Name string // Tên hiển thị (claim "name")
	Role string // Role cố định (claim "role")
}

// IsValidRole kiểm tra role có nằm trong danh sách role hợp lệ không
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin kiểm tra actor có phải ADMIN không
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsManagement kiểm tra actor có quyền cấp quản lý không (ADMIN hoặc MANAGER).
// Các thao tác hàng loạt và quyết toán mở cho cấp này.
func (a Actor) IsManagement() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}

// HasRole kiểm tra actor có một trong các role được liệt kê không.
// ADMIN luôn trả về true (admin bypass).
func (a Actor) HasRole(roles ...string) bool {
	if a.IsAdmin() {
		return true
	}
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// Context key type cho actor (private, chỉ dùng nội bộ package)
type actorContextKey string

const actorKey actorContextKey = "actor"

// ToContext lưu actor vào context.Context
func ToContext(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// FromContext lấy actor từ context.Context
func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey).(Actor)
	return a, ok
}

// IsAdminFromContext kiểm tra actor trong context có phải ADMIN không.
// Dùng để đăng ký vào basesvc.SetIsAdminFromContextFunc khi khởi tạo app.
func IsAdminFromContext(ctx context.Context) (bool, error) {
	a, ok := FromContext(ctx)
	if !ok {
		return false, nil
	}
	return a.IsAdmin(), nil
}

// FromFiber lấy actor từ Fiber locals (đã được set bởi middleware.RequireAuth)
func FromFiber(c fiber.Ctx) (Actor, bool) {
	a, ok := c.Locals("actor").(Actor)
	return a, ok
}
