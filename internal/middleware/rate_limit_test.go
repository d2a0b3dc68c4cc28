//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeClock lets tests move the limiter's time forward.
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestLimiter(t *testing.T, limit int, period time.Duration) (*ClientLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	l := NewClientLimiter(limit, period)
	l.now = clock.now
	t.Cleanup(l.Stop)
	return l, clock
}

func TestClientLimiter_Allow(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		requests      int
		wantAllowed   int
		wantRemaining int
	}{
		{"under limit", 5, 3, 3, 2},
		{"exactly at limit", 3, 3, 3, 0},
		{"over limit", 2, 5, 2, 0},
		{"zero limit blocks everything", 0, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLimiter(t, tt.limit, time.Minute)

			allowed, remaining := 0, -1
			for i := 0; i < tt.requests; i++ {
				ok, rem, _ := l.Allow("ip:10.0.0.1")
				if ok {
					allowed++
				}
				remaining = rem
			}

			assert.Equal(t, tt.wantAllowed, allowed)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestClientLimiter_WindowResets(t *testing.T) {
	l, clock := newTestLimiter(t, 1, time.Minute)

	ok, _, _ := l.Allow("ip:a")
	require.True(t, ok)

	clock.advance(20 * time.Second)
	ok, _, resetIn := l.Allow("ip:a")
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, resetIn)

	clock.advance(40 * time.Second)
	ok, remaining, _ := l.Allow("ip:a")
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)
}

func TestClientLimiter_ClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t, 1, time.Minute)

	for _, client := range []string{"ip:a", "ip:b", "key:c"} {
		ok, _, _ := l.Allow(client)
		assert.True(t, ok, client)
	}
	ok, _, _ := l.Allow("ip:a")
	assert.False(t, ok)
	assert.Equal(t, 3, l.Clients())
}

func TestClientLimiter_ForgetExpired(t *testing.T) {
	l, clock := newTestLimiter(t, 5, time.Minute)
	l.Allow("ip:old")
	clock.advance(45 * time.Second)
	l.Allow("ip:new")

	clock.advance(20 * time.Second)
	l.forgetExpired()

	assert.Equal(t, 1, l.Clients())
}

func TestClientLimiter_Middleware(t *testing.T) {
	l, _ := newTestLimiter(t, 2, time.Minute)

	router := gin.New()
	router.Use(l.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(remoteAddr, apiKey string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = remoteAddr
		if apiKey != "" {
			req.Header.Set(APIKeyHeader, apiKey)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := do("10.0.0.1:1234", "")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	do("10.0.0.1:1234", "")
	blocked := do("10.0.0.1:1234", "")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))
	assert.Contains(t, blocked.Body.String(), "rate_limit_exceeded")

	// same address, separate budget once an API key is presented
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1234", "key-1").Code)
}

func TestClientKey(t *testing.T) {
	newCtx := func(apiKey string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.RemoteAddr = "192.168.1.7:5555"
		if apiKey != "" {
			c.Request.Header.Set(APIKeyHeader, apiKey)
		}
		return c
	}

	assert.Equal(t, "ip:192.168.1.7", ClientKey(newCtx("")))

	keyed := ClientKey(newCtx("secret-key"))
	assert.Contains(t, keyed, "key:")
	assert.NotContains(t, keyed, "secret-key")
	assert.Equal(t, keyed, ClientKey(newCtx("secret-key")))
	assert.NotEqual(t, keyed, ClientKey(newCtx("other-key")))
}

func TestClientLimiter_StopTwice(t *testing.T) {
	l := NewClientLimiter(1, time.Minute)
	l.Stop()
	assert.NotPanics(t, l.Stop)
}
