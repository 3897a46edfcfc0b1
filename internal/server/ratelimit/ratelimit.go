// Package ratelimit provides per-client request limiting using a token
// bucket per (client, rule) pair.
package ratelimit

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// TokenBucket allows a number of requests per window with tokens refilling at
// a steady rate.
type TokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow refills based on elapsed time and consumes a token if one is
// available.
func (tb *TokenBucket) allow() (ok bool, remaining int, reset time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens--
		ok = true
	}

	remaining = int(tb.tokens)
	reset = now
	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return ok, remaining, reset
}

// Rule is a limit applied to requests whose path matches the prefix.
type Rule struct {
	PathPrefix string // empty matches everything
	Method     string // empty matches every method
	Limit      int    // requests per window
	Window     time.Duration
	Burst      int // bucket capacity, defaults to Limit
}

// Info describes the rate limit status for one decision.
type Info struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetTime time.Time
}

// Limiter applies the first matching rule per request, one bucket per
// (client, rule).
type Limiter struct {
	rules   []Rule
	mu      sync.Mutex
	buckets map[string]*TokenBucket
}

// NewLimiter creates a limiter with rules matched in order; the last rule
// should be the catch-all default.
func NewLimiter(rules []Rule) *Limiter {
	return &Limiter{
		rules:   rules,
		buckets: make(map[string]*TokenBucket),
	}
}

// DefaultRules returns the limiter configuration: extraction is expensive and
// strict, everything else generous.
func DefaultRules() []Rule {
	return []Rule{
		{PathPrefix: "/extract", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Limit: 600, Window: time.Minute, Burst: 60},
	}
}

// Allow decides whether the request may proceed and reports the current
// status for response headers. Health checks are never limited.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if path == "/health" {
		return true, Info{Allowed: true}
	}

	rule, idx := l.match(path, method)
	bucket := l.bucket(clientID, idx, rule)

	ok, remaining, reset := bucket.allow()
	return ok, Info{
		Allowed:   ok,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
}

func (l *Limiter) match(path, method string) (Rule, int) {
	for i, rule := range l.rules {
		if rule.PathPrefix != "" && !strings.HasPrefix(path, rule.PathPrefix) {
			continue
		}
		if rule.Method != "" && rule.Method != method {
			continue
		}
		return rule, i
	}
	// No matching rule means no limiting.
	return Rule{Limit: 1, Window: time.Second, Burst: 1 << 30}, -1
}

func (l *Limiter) bucket(clientID string, ruleIdx int, rule Rule) *TokenBucket {
	key := clientID + "#" + strconv.Itoa(ruleIdx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok := l.buckets[key]; ok {
		return b
	}

	burst := rule.Burst
	if burst == 0 {
		burst = rule.Limit
	}
	refill := float64(rule.Limit) / rule.Window.Seconds()
	b := newTokenBucket(burst, refill)
	l.buckets[key] = b
	return b
}
