package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vital-be/apperrors"
	"vital-be/metrics"
	"vital-be/models"
	authUtils "vital-be/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthorities map[string]*models.Authority

func (f fakeAuthorities) Get(_ context.Context, uid string) (*models.Authority, error) {
	if uid == "down" {
		return nil, apperrors.New(apperrors.KindBackendUnavailable, "timeout")
	}
	a, ok := f[uid]
	if !ok {
		return nil, apperrors.NotFound("authority not found")
	}
	return a, nil
}

func newTokens(t *testing.T) *authUtils.Tokens {
	tokens, err := authUtils.NewTokens("test-secret", time.Hour)
	require.NoError(t, err)
	return tokens
}

func protectedRouter(t *testing.T, tokens *authUtils.Tokens, roles ...models.Role) *gin.Engine {
	authorities := fakeAuthorities{
		"tdo-1":   {UID: "tdo-1", Role: models.RoleTDO, Verified: true},
		"pdo-new": {UID: "pdo-new", Role: models.RolePDO},
	}
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens, authorities, zap.NewNop()), RequireRoles(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": CurrentAuthority(c).UID, "user_id": CurrentUserID(c)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newTokens(t)
	r := protectedRouter(t, tokens, models.RoleTDO, models.RolePDO)

	sign := func(uid string) string {
		s, err := tokens.GenerateToken(uid)
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{"no token", func(*http.Request) {}, http.StatusUnauthorized},
		{"garbage token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"unknown user", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+sign("ghost")) }, http.StatusUnauthorized},
		{"store down", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+sign("down")) }, http.StatusServiceUnavailable},
		{"unverified", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+sign("pdo-new")) }, http.StatusForbidden},
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+sign("tdo-1")) }, http.StatusOK},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AuthCookie, Value: sign("tdo-1")}) }, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestRequireRolesRejectsOtherRoles(t *testing.T) {
	tokens := newTokens(t)
	r := protectedRouter(t, tokens, models.RoleAdmin)

	signed, err := tokens.GenerateToken("tdo-1")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMemoryLimiterWindow(t *testing.T) {
	limiter := NewMemoryLimiter()
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := int64(1); i <= 3; i++ {
		count, ttl, err := limiter.Hit(context.Background(), "k", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, i, count)
		assert.Equal(t, time.Hour, ttl)
	}

	now = now.Add(time.Hour)
	count, _, err := limiter.Hit(context.Background(), "k", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "window reset")

	count, _, err = limiter.Hit(context.Background(), "other", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

type failingLimiter struct{}

func (failingLimiter) Hit(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("connection refused")
}

func TestRateLimit(t *testing.T) {
	newRouter := func(limiter Limiter) *gin.Engine {
		r := gin.New()
		r.POST("/issues", RateLimit(limiter, "issues", 2, 24*time.Hour, func(c *gin.Context) string {
			return c.GetHeader("X-Villager")
		}, zap.NewNop()), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})
		return r
	}
	call := func(r *gin.Engine, villager string) int {
		req := httptest.NewRequest(http.MethodPost, "/issues", nil)
		if villager != "" {
			req.Header.Set("X-Villager", villager)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	r := newRouter(NewMemoryLimiter())
	assert.Equal(t, http.StatusCreated, call(r, "v-1"))
	assert.Equal(t, http.StatusCreated, call(r, "v-1"))
	assert.Equal(t, http.StatusTooManyRequests, call(r, "v-1"))
	assert.Equal(t, http.StatusCreated, call(r, "v-2"))
	assert.Equal(t, http.StatusBadRequest, call(r, ""))

	assert.Equal(t, http.StatusServiceUnavailable, call(newRouter(failingLimiter{}), "v-1"))
}

func TestRequestLoggerRecordsRoute(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop(), m))
	r.GET("/api/issues/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/issues/abc", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}
