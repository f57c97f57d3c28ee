//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/handler/middleware"
	"cellar-market/internal/pkg/config"
	"cellar-market/internal/pkg/cookie"
	"cellar-market/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	tokens map[string]struct {
		id    uuid.UUID
		email string
	}
}

func (f *fakeValidator) Authenticate(token string) (shopper.Shopper, error) {
	claims, ok := f.tokens[token]
	if !ok {
		return shopper.Guest(), errors.New("token is expired")
	}
	return shopper.New(claims.id, claims.email)
}

func newAuthRouter(t *testing.T) (*gin.Engine, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	shopperID := uuid.New()
	adminID := uuid.New()
	v := &fakeValidator{tokens: map[string]struct {
		id    uuid.UUID
		email string
	}{
		"shopper-token": {shopperID, "shopper@example.com"},
		"admin-token":   {adminID, "Admin@Example.com"},
	}}
	cfg := config.NewTestConfig()
	mw := middleware.NewAuthMiddleware(v, cfg)

	r := gin.New()
	r.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		s, ok := middleware.GetShopper(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": s.ID().String(), "email": s.Email()})
	})
	r.POST("/admin", mw.RequireAuth(), mw.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/browse", mw.OptionalAuth(), func(c *gin.Context) {
		_, ok := middleware.GetShopper(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})
	return r, shopperID
}

func TestRequireAuth(t *testing.T) {
	r, shopperID := newAuthRouter(t)

	t.Run("bearer token sets the shopper", func(t *testing.T) {
		var body map[string]string
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "shopper-token")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, shopperID.String(), body["id"])
		assert.Equal(t, "shopper@example.com", body["email"])
	})

	t.Run("cookie token is accepted", func(t *testing.T) {
		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "shopper-token"}}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "forged")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireAdmin(t *testing.T) {
	r, _ := newAuthRouter(t)

	t.Run("configured admin email passes regardless of case", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/admin", nil, "admin-token")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("other shoppers are forbidden", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/admin", nil, "shopper-token")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func TestOptionalAuth(t *testing.T) {
	r, _ := newAuthRouter(t)

	for name, tc := range map[string]struct {
		token string
		want  bool
	}{
		"no token":      {"", false},
		"invalid token": {"forged", false},
		"valid token":   {"shopper-token", true},
	} {
		t.Run(name, func(t *testing.T) {
			var body map[string]bool
			rec := httptest.PerformRequest(t, r, http.MethodGet, "/browse", nil, tc.token)
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, tc.want, body["authenticated"])
		})
	}
}
