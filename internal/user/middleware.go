package user

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// IdentityKey 是认证中间件放入Gin上下文中的账号对象的键。
const IdentityKey = "authedUser"

// RequireAuthMiddleware 校验请求头中的访问令牌，并把解析出的账号放入上下文。
// 受保护的路由（登出、得分更新）必须挂载这个中间件。
func RequireAuthMiddleware(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 原版前端直接把令牌放在Authorization头里，同时兼容Bearer前缀
		accessToken := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		u, err := service.Authenticate(c.Request.Context(), accessToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "认证失败，请重新登录"})
			return
		}

		c.Set(IdentityKey, u)
		c.Next()
	}
}

// IdentityFromContext 从Gin上下文中取出认证中间件写入的账号。
func IdentityFromContext(c *gin.Context) (*User, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	u, ok := v.(*User)
	return u, ok
}
