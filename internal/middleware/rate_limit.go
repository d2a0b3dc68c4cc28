package middleware

import (
	"encoding/hex"
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/i18n"
)

// window is the fixed-window counter of one client.
type window struct {
	used    int
	resetAt time.Time
}

// ClientLimiter caps the number of API requests a client may make per window.
// Every translation request spends provider quota, which all clients share.
type ClientLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	period  time.Duration
	now     func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewClientLimiter creates a limiter allowing limit requests per period and
// starts the sweeper that forgets idle clients.
func NewClientLimiter(limit int, period time.Duration) *ClientLimiter {
	if period <= 0 {
		period = time.Minute
	}
	l := &ClientLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow spends one request for client. It reports whether the request may
// proceed, how many remain and how long until the window resets.
func (l *ClientLimiter) Allow(client string) (bool, int, time.Duration) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.clients[client]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.period)}
		l.clients[client] = w
	}
	resetIn := w.resetAt.Sub(now)

	if w.used >= l.limit {
		return false, 0, resetIn
	}
	w.used++
	return true, l.limit - w.used, resetIn
}

// Middleware rejects requests over the limit with 429 and a localized message.
func (l *ClientLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetIn := l.Allow(ClientKey(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retryAfter := int(math.Ceil(resetIn.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			msg := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, msg).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

// ClientKey identifies the caller: a hash of its API key when one is sent,
// otherwise its IP address.
func ClientKey(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		h := fnv.New64a()
		_, _ = h.Write([]byte(key))
		return "key:" + hex.EncodeToString(h.Sum(nil))
	}
	return "ip:" + c.ClientIP()
}

// Clients returns the number of tracked clients.
func (l *ClientLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Stop ends the sweeper. It is safe to call more than once.
func (l *ClientLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

func (l *ClientLimiter) sweep() {
	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.forgetExpired()
		case <-l.stopCh:
			return
		}
	}
}

func (l *ClientLimiter) forgetExpired() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()
	for client, w := range l.clients {
		if !now.Before(w.resetAt) {
			delete(l.clients, client)
		}
	}
}
