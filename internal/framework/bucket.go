package framework

import (
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// BucketConfig configures a rate-limit bucket. Zero values disable a rule;
// when both rules are set both must pass.
type BucketConfig struct {
	// Delay is the minimum gap between two invocations by the same user.
	Delay time.Duration

	// At most Limit invocations per TimeSpan per user.
	TimeSpan time.Duration
	Limit    int
}

func (c BucketConfig) windowed() bool {
	return c.TimeSpan > 0 && c.Limit > 0
}

// Bucket is a named rate-limit policy, shared by any commands that reference it.
type Bucket struct {
	name   string
	config BucketConfig

	mu    sync.Mutex
	users map[snowflake.ID]*bucketEntry
}

type bucketEntry struct {
	last   time.Time
	window []time.Time
}

// NewBucket creates a bucket with no recorded invocations.
func NewBucket(name string, cfg BucketConfig) *Bucket {
	return &Bucket{
		name:   name,
		config: cfg,
		users:  make(map[snowflake.ID]*bucketEntry),
	}
}

// Name returns the bucket name.
func (b *Bucket) Name() string {
	return b.name
}

// TryAcquire records an invocation by invoker at now if the bucket allows it.
// Otherwise it returns false and how long the invoker has to wait.
func (b *Bucket) TryAcquire(invoker snowflake.ID, now time.Time) (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.users[invoker]
	if !ok {
		entry = &bucketEntry{}
		b.users[invoker] = entry
	}

	if b.config.Delay > 0 && !entry.last.IsZero() {
		if elapsed := now.Sub(entry.last); elapsed < b.config.Delay {
			return b.config.Delay - elapsed, false
		}
	}

	if b.config.windowed() {
		entry.window = pruneWindow(entry.window, now, b.config.TimeSpan)
		if len(entry.window) >= b.config.Limit {
			return entry.window[0].Add(b.config.TimeSpan).Sub(now), false
		}
		entry.window = append(entry.window, now)
	}

	entry.last = now
	return 0, true
}

// Sweep forgets invokers whose state can no longer affect a decision at now.
// It returns the number of entries removed.
func (b *Bucket) Sweep(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	horizon := max(b.config.Delay, b.config.TimeSpan)
	removed := 0
	for id, entry := range b.users {
		if now.Sub(entry.last) >= horizon {
			delete(b.users, id)
			removed++
		}
	}
	return removed
}

// pruneWindow drops timestamps at least span old. Timestamps are ascending.
func pruneWindow(window []time.Time, now time.Time, span time.Duration) []time.Time {
	i := 0
	for i < len(window) && now.Sub(window[i]) >= span {
		i++
	}
	return window[i:]
}
