package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterBurstThenBlock(t *testing.T) {
	limiter := NewLimiter([]Rule{
		{PathPrefix: "/extract", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Limit: 600, Window: time.Minute, Burst: 60},
	})

	for i := 0; i < 3; i++ {
		ok, info := limiter.Allow("1.2.3.4", "/extract", "POST")
		require.True(t, ok, "request %d within burst", i)
		assert.Equal(t, 10, info.Limit)
	}

	ok, info := limiter.Allow("1.2.3.4", "/extract", "POST")
	assert.False(t, ok, "burst exhausted")
	assert.False(t, info.Allowed)
	assert.Zero(t, info.Remaining)
	assert.True(t, info.ResetTime.After(time.Now()))
}

func TestLimiterClientsIsolated(t *testing.T) {
	limiter := NewLimiter([]Rule{{Limit: 60, Window: time.Minute, Burst: 1}})

	ok, _ := limiter.Allow("client-a", "/jobs", "GET")
	require.True(t, ok)
	ok, _ = limiter.Allow("client-a", "/jobs", "GET")
	assert.False(t, ok)

	ok, _ = limiter.Allow("client-b", "/jobs", "GET")
	assert.True(t, ok, "another client has its own bucket")
}

func TestLimiterRuleOrder(t *testing.T) {
	limiter := NewLimiter(DefaultRules())

	// GET on /extract falls through the POST-only rule to the default.
	ok, info := limiter.Allow("c", "/extract", "GET")
	require.True(t, ok)
	assert.Equal(t, 600, info.Limit)

	ok, info = limiter.Allow("c", "/extract", "POST")
	require.True(t, ok)
	assert.Equal(t, 10, info.Limit)
}

func TestLimiterBucketsIsolatedPerRule(t *testing.T) {
	// More rules than a single digit can index; each keeps its own bucket.
	rules := make([]Rule, 0, 12)
	for c := 'a'; c <= 'k'; c++ {
		rules = append(rules, Rule{
			PathPrefix: "/" + string(c), Method: "GET",
			Limit: 60, Window: time.Minute, Burst: 1,
		})
	}
	rules = append(rules, Rule{Limit: 600, Window: time.Minute, Burst: 60})
	limiter := NewLimiter(rules)

	// Drain the eleventh rule's bucket for this client.
	ok, _ := limiter.Allow("c", "/k", "GET")
	require.True(t, ok)
	ok, _ = limiter.Allow("c", "/k", "GET")
	require.False(t, ok)

	// Other rules' buckets for the same client are untouched.
	ok, _ = limiter.Allow("c", "/a", "GET")
	assert.True(t, ok)
	ok, info := limiter.Allow("c", "/z", "GET")
	require.True(t, ok)
	assert.Equal(t, 600, info.Limit)
}

func TestLimiterHealthNeverLimited(t *testing.T) {
	limiter := NewLimiter([]Rule{{Limit: 60, Window: time.Minute, Burst: 1}})

	for i := 0; i < 10; i++ {
		ok, _ := limiter.Allow("c", "/health", "GET")
		assert.True(t, ok)
	}
}

func TestTokenBucketRefills(t *testing.T) {
	// 100 tokens/second so a short sleep refills the single slot.
	bucket := newTokenBucket(1, 100)

	ok, _, _ := bucket.allow()
	require.True(t, ok)
	ok, _, _ = bucket.allow()
	require.False(t, ok)

	time.Sleep(20 * time.Millisecond)
	ok, _, _ = bucket.allow()
	assert.True(t, ok, "bucket refilled after waiting")
}
