package network

import (
	"context"
	"time"

	"github.com/dandesousa/elevator-simulation/types"
)

/*
 * Watch forwards messages from in to out and reports on silent when the
 * run goes quiet for longer than timeout. It reports once per quiet
 * spell and again only after a message has arrived.
 * Returns when ctx is cancelled or in is closed.
 */
func Watch(
	ctx context.Context,
	timeout time.Duration,
	in <-chan types.Envelope,
	out chan<- types.Envelope,
	silent chan<- time.Duration,
) {

	lastHeard := time.Now()
	reported := false

	ticker := time.NewTicker(timeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-in:
			if !ok {
				return
			}

			lastHeard = time.Now()
			reported = false

			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}

		/*
		 * Nothing received within timeout
		 */
		case <-ticker.C:
			quiet := time.Since(lastHeard)
			if reported || quiet < timeout {
				break
			}

			reported = true

			select {
			case silent <- quiet:
			case <-ctx.Done():
				return
			}
		}
	}
}
