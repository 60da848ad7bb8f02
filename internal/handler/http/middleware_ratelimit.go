package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
	"golang.org/x/time/rate"
)

// defaultLimiterCleanupInterval is how often idle client limiters are
// evicted. A limiter idle for twice this long is dropped.
const defaultLimiterCleanupInterval = 5 * time.Minute

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows perSecond requests per client with the given burst
// and starts the background cleanup. Call Stop to end it.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return newRateLimiter(perSecond, burst, defaultLimiterCleanupInterval)
}

func newRateLimiter(perSecond float64, burst int, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:           rate.Limit(perSecond),
		burst:           burst,
		cleanupInterval: cleanupInterval,
		limiters:        make(map[string]*clientLimiter),
		stopCh:          make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopCh)
	})
}

// Allow reports whether client may make one more request now.
func (rl *RateLimiter) Allow(client string) bool {
	return rl.limiterFor(client).Allow()
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) limiterFor(client string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if cl, ok := rl.limiters[client]; ok {
		cl.lastAccess = now
		return cl.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[client] = &clientLimiter{limiter: limiter, lastAccess: now}

	return limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.cleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for client, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, client)
		}
	}
}

// retryAfter is the whole number of seconds until one token is refilled.
func (rl *RateLimiter) retryAfter() int {
	if rl.limit <= 0 || rl.limit == rate.Inf {
		return 1
	}
	seconds := int(math.Ceil(1.0 / float64(rl.limit)))
	if seconds < 1 {
		return 1
	}
	return seconds
}

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		client := clientIP(r)
		if !h.limiter.Allow(client) {
			h.metrics.RecordRateLimited(routePattern(r))
			h.logger.Warn().Str("remote", client).Str("uri", r.RequestURI).Msg("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(h.limiter.retryAfter()))
			utils.WriteJSON(w, models.ErrorResponse{Error: "too many requests"}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of the request's remote address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
