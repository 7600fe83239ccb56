package middleware

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"creator_panel/internal/api/actor"
	"creator_panel/internal/common"
	"creator_panel/internal/global"
	"creator_panel/internal/logger"
)

// ActorClaims chứa data được mã hóa trong JWT token của actor.
type ActorClaims struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.StandardClaims
}

// parseActorToken giải mã và validate JWT token, trả về actor nếu token hợp lệ
func parseActorToken(tokenStr string) (actor.Actor, error) {
	claims := &ActorClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		// Chỉ chấp nhận HS256, chặn tấn công đổi thuật toán
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return actor.Actor{}, common.ErrTokenExpired
		}
		return actor.Actor{}, common.ErrTokenInvalid
	}
	if !token.Valid {
		return actor.Actor{}, common.ErrTokenInvalid
	}
	if claims.ID == "" || !actor.IsValidRole(claims.Role) {
		return actor.Actor{}, common.ErrTokenInvalid
	}
	return actor.Actor{
		ID:   claims.ID,
		Name: claims.Name,
		Role: claims.Role,
	}, nil
}

// RequireAuth middleware xác thực cho Fiber.
// Giải mã Bearer token từ header Authorization, lưu actor vào Locals và context.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		a, err := parseActorToken(parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Invalid token")
			HandleErrorResponse(c, err)
			return nil
		}

		// Lưu thông tin actor vào Locals để handler và logger sử dụng.
		// Handler tự đưa actor vào context khi gọi xuống service (xem BaseHandler.ActorContext).
		c.Locals("actor", a)
		c.Locals("actorID", a.ID)
		c.Locals("actorName", a.Name)
		c.Locals("actorRole", a.Role)

		return c.Next()
	}
}

// RequireRoles middleware phân quyền theo role.
// Chỉ cho phép actor có một trong các role được liệt kê; ADMIN luôn được phép.
// Danh sách rỗng nghĩa là chỉ ADMIN được phép.
// Phải đặt SAU RequireAuth trong middleware chain.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		a, ok := actor.FromFiber(c)
		if !ok {
			HandleErrorResponse(c, common.ErrUnauthorized)
			return nil
		}

		if !a.HasRole(roles...) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"actor_id":       a.ID,
				"actor_role":     a.Role,
				"required_roles": roles,
				"path":           c.Path(),
			}).Warn("❌ [AUTH] Actor does not have required role")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không có quyền truy cập. Vui lòng liên hệ quản trị viên.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		return c.Next()
	}
}
