package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RomanNest/social-media-api/internal/model"
	"github.com/RomanNest/social-media-api/internal/service"
	"github.com/RomanNest/social-media-api/pkg/response"
)

const currentUserKey = "currentUser"

// Auth 解析 Bearer access token 并加载当前用户。
// 用户对象逐请求从身份存储取最新（is_admin 变更即时生效）。
func Auth(tokens service.TokenService, users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "authentication required")
			return
		}
		claims, err := tokens.Verify(c.Request.Context(), strings.TrimPrefix(header, "Bearer "), service.TokenTypeAccess)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			return
		}
		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "user no longer exists")
			return
		}
		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser 取出 Auth 中间件放入的用户
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*model.User); ok {
			return u
		}
	}
	return nil
}
