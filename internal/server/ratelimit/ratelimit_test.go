package ratelimit

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T, cfg *Config) (*Limiter, *fakeClock) {
	t.Helper()
	cfg.Enabled = true
	cfg.CleanupInterval = 0
	l := NewLimiter(cfg)
	t.Cleanup(l.Stop)

	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l.now = clock.Now
	return l, clock
}

func TestLimiter_DefaultLimit(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{DefaultLimit: 10, DefaultWindow: time.Minute})

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("127.0.0.1", "/skills", http.MethodGet)
		require.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := l.Allow("127.0.0.1", "/skills", http.MethodGet)
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, 6*time.Second, info.RetryAfter.Round(time.Second))
}

func TestLimiter_Refill(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{DefaultLimit: 60, DefaultWindow: time.Minute})

	for i := 0; i < 60; i++ {
		allowed, _ := l.Allow("c", "/x", http.MethodGet)
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("c", "/x", http.MethodGet)
	require.False(t, allowed)

	clock.Advance(1100 * time.Millisecond)
	allowed, _ = l.Allow("c", "/x", http.MethodGet)
	assert.True(t, allowed, "one token per second should refill")

	allowed, _ = l.Allow("c", "/x", http.MethodGet)
	assert.False(t, allowed)
}

func TestLimiter_EndpointLimits(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})

	// batch burst is 2
	for i := 0; i < 2; i++ {
		allowed, info := l.Allow("c", "/analyze/batch", http.MethodPost)
		require.True(t, allowed)
		assert.Equal(t, DefaultBatchLimit, info.Limit)
	}
	allowed, _ := l.Allow("c", "/analyze/batch", http.MethodPost)
	assert.False(t, allowed)

	// single analysis has its own bucket with burst 10
	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("c", "/analyze", http.MethodPost)
		require.True(t, allowed)
	}
	allowed, _ = l.Allow("c", "/analyze", http.MethodPost)
	assert.False(t, allowed)

	// another client is unaffected
	allowed, _ = l.Allow("other", "/analyze", http.MethodPost)
	assert.True(t, allowed)
}

func TestLimiter_UnmatchedPathsShareDefaultBucket(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{DefaultLimit: 3, DefaultWindow: time.Minute})

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("c", fmt.Sprintf("/random/%d", i), http.MethodGet)
		require.True(t, allowed)
	}

	allowed, _ := l.Allow("c", "/another", http.MethodPost)
	assert.False(t, allowed, "new paths must not get a fresh allowance")
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_PrefixRuleSharesBucket(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/files/", Method: http.MethodGet, Limit: 2, Window: time.Minute},
		},
	})

	for _, path := range []string{"/files/a", "/files/b"} {
		allowed, _ := l.Allow("c", path, http.MethodGet)
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("c", "/files/c", http.MethodGet)
	assert.False(t, allowed)
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{DefaultLimit: 1, DefaultWindow: time.Hour})

	for i := 0; i < 100; i++ {
		allowed, info := l.Allow("c", "/health", http.MethodGet)
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
	assert.Equal(t, 0, l.Len())
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.2": true},
	})

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/skills", http.MethodGet)
		assert.True(t, allowed)
	}

	allowed, _ := l.Allow("10.0.0.2", "/health", http.MethodGet)
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("c", "/analyze", http.MethodPost)
		require.True(t, allowed)
	}
}

func TestLimiter_CleanupRemovesIdleBuckets(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{DefaultLimit: 10, DefaultWindow: time.Minute, IdleTimeout: time.Hour})

	l.Allow("old", "/skills", http.MethodGet)
	clock.Advance(90 * time.Minute)
	l.Allow("new", "/skills", http.MethodGet)
	require.Equal(t, 2, l.Len())

	l.cleanupBuckets()
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{DefaultLimit: 100, DefaultWindow: time.Hour})

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("c", "/skills", http.MethodGet); ok {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_StopIsIdempotent(t *testing.T) {
	l := NewLimiter(nil)
	l.Stop()
	l.Stop()
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/analyze/batch", Method: http.MethodPost, Limit: 1},
		{Path: "/analyze", Method: http.MethodPost, Limit: 2},
		{Path: "/files/", Method: http.MethodGet, Limit: 3},
	}

	tests := []struct {
		path, method string
		wantLimit    int
		wantNil      bool
	}{
		{"/analyze", http.MethodPost, 2, false},
		{"/analyze/batch", http.MethodPost, 1, false},
		{"/files/a/b", http.MethodGet, 3, false},
		{"/health", http.MethodGet, 0, false},
		{"/analyze", http.MethodOptions, 0, false},
		{"/analyze", http.MethodGet, 0, true},
		{"/skills", http.MethodGet, 0, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvAnalyzeLimit, "30")
	t.Setenv(EnvWhitelist, "10.0.0.1, 10.0.0.2,")
	t.Setenv(EnvDefaultWindow, "30s")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, DefaultLimit, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
	assert.Equal(t, map[string]bool{"10.0.0.1": true, "10.0.0.2": true}, cfg.Whitelist)
	assert.Empty(t, cfg.Blacklist)

	analyze := MatchEndpoint("/analyze", http.MethodPost, cfg.EndpointConfigs)
	require.NotNil(t, analyze)
	assert.Equal(t, 30, analyze.Limit)
	assert.Equal(t, 5, analyze.Burst)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv(EnvEnabled, "false")
	assert.False(t, LoadConfig().Enabled)
}
