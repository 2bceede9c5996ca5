package middlewares

import (
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/exceptions"
	"ehr-client/internal/pkg/utils"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RejectFunc answers a request the limiter turned away.
type RejectFunc func(w http.ResponseWriter, r *http.Request, err error)

// RateLimiter throttles a route per client IP. An IP that runs out of
// tokens is blocked outright for blockTime. It guards the login form.
type RateLimiter struct {
	Log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	lastSeen  map[string]time.Time
	lastSweep time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
}

// NewRateLimiter allows a burst of requests, refilled at one per per.
func NewRateLimiter(logger *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		Log:       logger,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		lastSeen:  make(map[string]time.Time),
		lastSweep: time.Now(),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
	}
}

// Limit rejects with the JSON error body.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return rl.LimitWith(func(w http.ResponseWriter, r *http.Request, err error) {
		utils.BuildErrorResponse(rl.Log, w, err)
	})(next)
}

// LimitWith lets the route decide how a rejection looks, e.g. redisplaying
// a form instead of answering JSON.
func (rl *RateLimiter) LimitWith(reject RejectFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !rl.allow(ip, time.Now()) {
				rl.Log.Warn("RateLimiter.Limit blocked request",
					zap.String(constvars.LoggingRemoteAddrKey, ip),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				reject(w, r, exceptions.ErrTooManyLoginAttempts(errors.New("rate limit exceeded for "+ip)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now)
	rl.lastSeen[ip] = now

	if blockedUntil, found := rl.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(rl.blocked, ip)
	}

	limiter, exists := rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(rl.per), rl.requests)
		rl.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		rl.blocked[ip] = now.Add(rl.blockTime)
		return false
	}
	return true
}

// idleAfter is how long an IP must stay quiet before its bucket is full
// again and any block has expired, so forgetting it changes nothing.
func (rl *RateLimiter) idleAfter() time.Duration {
	return rl.per*time.Duration(rl.requests) + rl.blockTime
}

// sweep drops idle IPs at most once per idle window. Callers hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	idle := rl.idleAfter()
	if now.Sub(rl.lastSweep) < idle {
		return
	}
	rl.lastSweep = now

	for ip, seen := range rl.lastSeen {
		if now.Sub(seen) < idle {
			continue
		}
		if blockedUntil, found := rl.blocked[ip]; found && now.Before(blockedUntil) {
			continue
		}
		delete(rl.lastSeen, ip)
		delete(rl.limiters, ip)
		delete(rl.blocked, ip)
	}
}
