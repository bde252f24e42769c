//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator map[string]shared.Actor

func (s stubValidator) ValidateToken(token string) (shared.Actor, error) {
	if a, ok := s[token]; ok {
		return a, nil
	}
	return shared.Actor{}, jwt.ErrInvalidToken
}

func newAuthRouter(v stubValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(v)
	r := gin.New()

	echo := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "role": actor.Role.String()})
	}
	r.GET("/private", m.RequireAuth(), echo)
	r.GET("/staff", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleStaff), echo)
	r.GET("/optional", m.OptionalAuth(), echo)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	customer := shared.Actor{UserID: uuid.New(), Role: user.RoleCustomer}
	admin := shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}
	router := newAuthRouter(stubValidator{"c": customer, "a": admin})

	tests := []struct {
		name   string
		path   string
		token  string
		status int
		body   string
	}{
		{name: "missing token", path: "/private", status: http.StatusUnauthorized},
		{name: "bad token", path: "/private", token: "nope", status: http.StatusUnauthorized},
		{name: "valid token", path: "/private", token: "c", status: http.StatusOK, body: `{"authenticated":true,"role":"customer"}`},
		{name: "customer below staff", path: "/staff", token: "c", status: http.StatusForbidden},
		{name: "admin satisfies staff", path: "/staff", token: "a", status: http.StatusOK, body: `{"authenticated":true,"role":"admin"}`},
		{name: "optional without token", path: "/optional", status: http.StatusOK, body: `{"authenticated":false,"role":""}`},
		{name: "optional ignores bad token", path: "/optional", token: "nope", status: http.StatusOK, body: `{"authenticated":false,"role":""}`},
		{name: "optional with token", path: "/optional", token: "a", status: http.StatusOK, body: `{"authenticated":true,"role":"admin"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, tt.path, nil, tt.token)
			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestRequireRoleAtLeast_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(stubValidator{})
	r := gin.New()
	r.GET("/x", m.RequireRoleAtLeast(user.RoleStaff), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/x", nil, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
