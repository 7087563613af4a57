// Package clock holds the wall-clock helpers shared by the ledger and the node loop.
package clock

import (
	"context"
	"time"
)

// NowUnix returns the current time in whole seconds since the epoch.
func NowUnix() int64 {
	return time.Now().Unix()
}

// SleepWithContext waits for d or until ctx is done, whichever comes first.
// A non-positive d returns immediately unless ctx is already done.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
