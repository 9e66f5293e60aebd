package mockapi

import (
	"sync"
	"time"

	"github.com/samber/lo"
	"golang.org/x/time/rate"

	"github.com/vcrobe/userform/config"
)

const defaultIdleTTL = 10 * time.Minute

// ClientLimiter throttles name checks per client. Every client owns a token
// bucket; buckets idle for longer than the idle TTL are swept, at most once
// per TTL.
type ClientLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu        sync.Mutex
	buckets   map[string]*clientBucket
	lastSweep time.Time
}

type clientBucket struct {
	tokens   *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter builds a limiter from cfg. A zero RPS yields nil, and a
// nil limiter allows every check.
func NewClientLimiter(cfg config.RateLimitConfig) *ClientLimiter {
	if cfg.RPS <= 0 {
		return nil
	}
	burst := max(cfg.Burst, 1)
	idleTTL := cfg.IdleTTL
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &ClientLimiter{
		limit:   rate.Limit(cfg.RPS),
		burst:   burst,
		idleTTL: idleTTL,
		buckets: make(map[string]*clientBucket),
	}
}

// Allow takes one token from client's bucket at time at.
func (l *ClientLimiter) Allow(client string, at time.Time) bool {
	if l == nil {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(at)
	b, ok := l.buckets[client]
	if !ok {
		b = &clientBucket{tokens: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[client] = b
	}
	b.lastSeen = at
	return b.tokens.AllowN(at, 1)
}

func (l *ClientLimiter) sweep(at time.Time) {
	if l.lastSweep.IsZero() {
		l.lastSweep = at
		return
	}
	if at.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	cutoff := at.Add(-l.idleTTL)
	l.buckets = lo.OmitBy(l.buckets, func(_ string, b *clientBucket) bool {
		return b.lastSeen.Before(cutoff)
	})
	l.lastSweep = at
}

// Clients returns the number of tracked clients.
func (l *ClientLimiter) Clients() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
