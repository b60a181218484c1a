package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/invoice-service/internal/domain/dto"
	"github.com/guttosm/invoice-service/internal/i18n"
)

const (
	rateLimitShards = 16
	sweepInterval   = time.Minute
)

// window is the request count of one client inside its current window.
type window struct {
	start time.Time
	used  int
}

type clientShard struct {
	mu      sync.Mutex
	clients map[string]*window
}

// RateLimiter allows each client IP a fixed number of requests per window.
// Clients are spread over shards by hash so concurrent requests from
// different clients rarely share a lock.
type RateLimiter struct {
	limit  int
	period time.Duration
	shards [rateLimitShards]clientShard

	done chan struct{}
	stop sync.Once
}

// NewRateLimiter creates a limiter allowing limit requests per period and
// starts the background sweep of idle clients. Call Stop to end it.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:  limit,
		period: period,
		done:   make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i].clients = make(map[string]*window)
	}

	go rl.sweepLoop()
	return rl
}

func (rl *RateLimiter) shard(client string) *clientShard {
	return &rl.shards[xxhash.Sum64String(client)%rateLimitShards]
}

// take consumes one request of client's window at now. It returns whether
// the request is allowed, how many are left and when the window resets.
func (rl *RateLimiter) take(client string, now time.Time) (allowed bool, left int, reset time.Time) {
	s := rl.shard(client)
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.clients[client]
	if !ok || now.Sub(w.start) >= rl.period {
		w = &window{start: now}
		s.clients[client] = w
	}
	reset = w.start.Add(rl.period)

	if w.used >= rl.limit {
		return false, 0, reset
	}
	w.used++
	return true, rl.limit - w.used, reset
}

// RateLimit returns the gin middleware. Rejected requests get a 429 with
// a Retry-After header counting the seconds until the window resets.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		allowed, left, reset := rl.take(c.ClientIP(), now)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(left))
		if allowed {
			c.Next()
			return
		}

		retryAfter := int(math.Ceil(reset.Sub(now).Seconds()))
		c.Header("Retry-After", strconv.Itoa(retryAfter))

		message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
	}
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.sweep(now)
		case <-rl.done:
			return
		}
	}
}

// sweep forgets clients whose window ended before now.
func (rl *RateLimiter) sweep(now time.Time) {
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		for client, w := range s.clients {
			if now.Sub(w.start) >= rl.period {
				delete(s.clients, client)
			}
		}
		s.mu.Unlock()
	}
}

// Clients returns the number of clients currently tracked.
func (rl *RateLimiter) Clients() int {
	total := 0
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		total += len(s.clients)
		s.mu.Unlock()
	}
	return total
}

// Stop ends the background sweep. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stop.Do(func() { close(rl.done) })
}
