package framework

import "sync"

// Usage is one row of a usage snapshot.
type Usage struct {
	Name  string
	Count uint64
}

// UsageCounter counts command invocations for the process lifetime.
type UsageCounter struct {
	mu     sync.Mutex
	order  []string
	counts map[string]uint64
}

// NewUsageCounter creates an empty counter.
func NewUsageCounter() *UsageCounter {
	return &UsageCounter{
		counts: make(map[string]uint64),
	}
}

// Increment adds one invocation of the named command.
func (u *UsageCounter) Increment(name string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.counts[name]; !ok {
		u.order = append(u.order, name)
	}
	u.counts[name]++
}

// Count returns the invocations recorded for name.
func (u *UsageCounter) Count(name string) uint64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.counts[name]
}

// Snapshot returns the counts in first-use order.
func (u *UsageCounter) Snapshot() []Usage {
	u.mu.Lock()
	defer u.mu.Unlock()

	result := make([]Usage, len(u.order))
	for i, name := range u.order {
		result[i] = Usage{Name: name, Count: u.counts[name]}
	}
	return result
}
