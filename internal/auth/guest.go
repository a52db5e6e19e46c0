package auth

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

type GuestRequest struct {
	Name string `json:"name"`
}

type Handler struct {
	secret []byte
}

// 工厂方法：创建 handler
func NewHandler(secret []byte) *Handler {
	return &Handler{secret: secret}
}

// POST /auth/guest body: {name}
// 不需要账号，签发一个带随机 player id 的 JWT
func (h *Handler) Guest(c *gin.Context) {
	var req GuestRequest
	// 允许空 body
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	player := uuid.NewString()
	token, err := IssueToken(h.secret, player, strings.TrimSpace(req.Name))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "jwt generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jwt": token, "player": player})
}

// IssueToken sub = player
func IssueToken(secret []byte, player, name string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": player,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}
	if name != "" {
		claims["name"] = name
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken 校验签名和过期时间，返回 player
func ParseToken(secret []byte, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}
