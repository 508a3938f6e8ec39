package github

import (
	"context"
	"time"
)

// FetchRateLimit returns the current core rate-limit snapshot. A missing core
// resource is reported as exhausted with the default limit.
func FetchRateLimit(ctx context.Context, client Client) (RateLimitSnapshot, error) {
	limits, _, err := client.GetRateLimits(ctx)
	if err != nil {
		return RateLimitSnapshot{}, err
	}

	snap := RateLimitSnapshot{Limit: DefaultRateLimit, Reset: time.Unix(0, 0)}
	if core := limits.GetCore(); core != nil {
		snap.Remaining = core.Remaining
		if core.Limit > 0 {
			snap.Limit = core.Limit
		}
		if !core.Reset.IsZero() {
			snap.Reset = core.Reset.Time
		}
	}
	return snap, nil
}
