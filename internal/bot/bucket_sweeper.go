package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/sglre6355/dispatchbot/internal/framework"
)

// bucketSweepInterval is how often idle rate-limit entries are dropped.
const bucketSweepInterval = time.Minute

// runBucketSweeper drops idle invokers from every bucket each interval until
// ctx is done.
func runBucketSweeper(ctx context.Context, buckets []*framework.Bucket, interval time.Duration) {
	if len(buckets) == 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sweepBuckets(buckets, now)
		}
	}
}

// sweepBuckets sweeps each bucket at now and returns the entries removed.
func sweepBuckets(buckets []*framework.Bucket, now time.Time) int {
	removed := 0
	for _, b := range buckets {
		n := b.Sweep(now)
		if n > 0 {
			slog.Debug("swept rate limit bucket", "bucket", b.Name(), "removed", n)
		}
		removed += n
	}
	return removed
}
