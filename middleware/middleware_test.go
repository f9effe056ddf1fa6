package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"astromarket/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID"), "adminID": c.GetString("adminID")})
	})
	return r
}

func do(r http.Handler, token, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthUserMiddleware(t *testing.T) {
	r := newRouter(JWTAuthUserMiddleware())

	assert.Equal(t, http.StatusUnauthorized, do(r, "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "not-a-jwt", "").Code)

	token, err := utils.GenerateToken("user-42", "user", time.Hour)
	require.NoError(t, err)
	w := do(r, token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"user-42"`)
}

func TestJWTAuthAdminMiddleware(t *testing.T) {
	r := newRouter(JWTAuthAdminMiddleware())

	userToken, err := utils.GenerateToken("user-42", "user", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, do(r, userToken, "").Code)

	adminToken, err := utils.GenerateToken("admin", utils.RoleAdmin, time.Hour)
	require.NoError(t, err)
	w := do(r, adminToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"adminID":"admin"`)

	expired, err := utils.GenerateToken("admin", utils.RoleAdmin, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(r, expired, "").Code)
}

func TestRateLimitMiddlewarePerIP(t *testing.T) {
	r := newRouter(RateLimitMiddleware(2))

	assert.Equal(t, http.StatusOK, do(r, "", "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, do(r, "", "10.0.0.1").Code)
	w := do(r, "", "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, do(r, "", "10.0.0.2").Code)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "9.9.9.9:1234", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": " 5.6.7.8 "}, "9.9.9.9:1234", "5.6.7.8"},
		{"remote addr", nil, "9.9.9.9:1234", "9.9.9.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote
			for k, v := range tt.header {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(c))
		})
	}
}
