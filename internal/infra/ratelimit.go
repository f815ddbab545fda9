package infra

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/propdesk/messaging-service/internal/config"
)

const (
	defaultRPS   = 5
	defaultBurst = 10
)

// LimiterPool hands out one token bucket per user.
type LimiterPool struct {
	mu    sync.Mutex
	m     map[string]*rate.Limiter
	rps   float64
	burst int
}

func NewLimiterPool(cfg config.RateLimit) *LimiterPool {
	rps := cfg.RPS
	if rps <= 0 {
		rps = defaultRPS
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &LimiterPool{
		m:     make(map[string]*rate.Limiter),
		rps:   rps,
		burst: burst,
	}
}

func (p *LimiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if l, ok := p.m[key]; ok {
		return l
	}
	l := rate.NewLimiter(rate.Limit(p.rps), p.burst)
	p.m[key] = l
	return l
}

func (p *LimiterPool) Allow(key string) bool {
	return p.get(key).Allow()
}

// RateLimitHTTP rejects requests of users that exhausted their bucket. It must run after
// AuthInterceptorHTTP so the user uuid is in the context.
func RateLimitHTTP(pool *LimiterPool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userUUID, _ := r.Context().Value(config.KeyUUID).(string)
			if !pool.Allow(userUUID) {
				writeError(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
