package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/handler/httperr"
	"cellar-market/internal/pkg/config"
	"cellar-market/internal/pkg/cookie"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	admin          config.AdminConfig
}

const ctxShopperKey = "shopper"

var errForbidden = errs.New("admin only")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		admin:          cfg.Admin,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		s, err := m.tokenValidator.Authenticate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetShopper(c, s)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := GetShopper(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
			return
		}
		if !m.admin.IsAdmin(s.Email()) {
			httperr.AbortWithError(c, http.StatusForbidden, errForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		if s, err := m.tokenValidator.Authenticate(token); err == nil {
			SetShopper(c, s)
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// SetShopper records the authenticated shopper on the request.
func SetShopper(c *gin.Context, s shopper.Shopper) {
	c.Set(ctxShopperKey, s)
}

// GetShopper returns the authenticated shopper, or false for guests.
func GetShopper(c *gin.Context) (shopper.Shopper, bool) {
	v, exists := c.Get(ctxShopperKey)
	if !exists {
		return shopper.Guest(), false
	}
	s, ok := v.(shopper.Shopper)
	if !ok || s.IsGuest() {
		return shopper.Guest(), false
	}
	return s, true
}
