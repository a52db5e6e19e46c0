package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"PokerCoach/internal/auth"
)

// JwtAuthMiddleware 校验 Authorization: Bearer <jwt>，WebSocket 可用 ?token=<jwt>。
// 通过后在 context 里写入 "player"。
func JwtAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		} else {
			token = c.Query("token")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		player, err := auth.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("player", player)
		c.Next()
	}
}
