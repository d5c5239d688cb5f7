/*
 * Package timer paces a simulation against the wall clock.
 */
package timer

import (
	"context"
	"time"
)

/*
 * Pacer holds the kernel back so simulated time passes Speed times
 * faster than wall-clock time. Speed 0 runs unpaced.
 */
type Pacer struct {
	Speed float64
}

func (p Pacer) Advance(ctx context.Context, from time.Duration, to time.Duration) error {
	if p.Speed <= 0 || to <= from {
		return nil
	}

	timer := time.NewTimer(time.Duration(float64(to-from) / p.Speed))
	defer timer.Stop()

	select {
	/*
	 * Run cancelled while waiting
	 */
	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		return nil
	}
}
