/*
 * Package kernel is a single-threaded discrete-event scheduler.
 *
 * Processes cooperate: each Resume runs until the process returns the
 * condition it waits on. Wakeups due at the same virtual time run in the
 * order they were registered, which makes every run reproducible.
 */
package kernel

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

/*
 * Pacer is called before the clock jumps forward and may block,
 * e.g. to replay the simulation at wall-clock speed
 */
type Pacer interface {
	Advance(ctx context.Context, from time.Duration, to time.Duration) error
}

type Kernel struct {
	now     time.Duration
	seq     uint64
	queue   wakeupQueue
	procs   []*Proc
	pacer   Pacer
	running bool
	log     zerolog.Logger
}

func New(log zerolog.Logger) *Kernel {
	return &Kernel{log: log}
}

func (k *Kernel) Now() time.Duration {
	return k.now
}

func (k *Kernel) SetPacer(pacer Pacer) {
	k.pacer = pacer
}

// Started reports whether Run or RunUntil has been called.
func (k *Kernel) Started() bool {
	return k.running
}

func (k *Kernel) Procs() []*Proc {
	return k.procs
}

// Pending is the number of scheduled wakeups.
func (k *Kernel) Pending() int {
	return k.queue.Len()
}

func (k *Kernel) schedule(at time.Duration, fn func()) {
	k.seq++
	k.queue.push(&wakeup{at: at, seq: k.seq, fn: fn})
}

// After runs fn once delay of virtual time has passed.
func (k *Kernel) After(delay time.Duration, fn func()) {
	if delay < 0 {
		panic(fmt.Sprintf("kernel: negative delay %s", delay))
	}
	k.schedule(k.now+delay, fn)
}

// Spawn registers a process and schedules its first resume at the current time.
func (k *Kernel) Spawn(name string, process Process) *Proc {
	p := &Proc{name: name, process: process}
	k.procs = append(k.procs, p)
	k.schedule(k.now, func() { k.resume(p) })
	return p
}

func (k *Kernel) resume(p *Proc) {
	if p.Done() {
		return
	}

	p.resumes++
	condition := p.process.Resume(k)
	p.condition = condition

	switch cond := condition.(type) {
	case timeoutCondition:
		k.schedule(k.now+cond.delay, func() { k.resume(p) })

	case awaitCondition:
		cond.target.onComplete(func() {
			k.schedule(k.now, func() { k.resume(p) })
		})

	case doneCondition:
		k.log.Debug().
			Str("proc", p.name).
			Dur("t", k.now).
			Msg("Process done")

	default:
		panic(fmt.Sprintf("kernel: process %s returned unknown condition %v", p.name, condition))
	}
}

func (k *Kernel) step(ctx context.Context) error {
	next := k.queue.peek()

	if next.at > k.now && k.pacer != nil {
		if err := k.pacer.Advance(ctx, k.now, next.at); err != nil {
			return err
		}
	}

	k.queue.pop()
	k.now = next.at
	next.fn()

	return nil
}

// Run processes wakeups until none are left or ctx is cancelled.
func (k *Kernel) Run(ctx context.Context) error {
	k.running = true

	for k.queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := k.step(ctx); err != nil {
			return err
		}
	}

	return nil
}

// RunUntil processes wakeups due at or before until, then sets the clock to until.
func (k *Kernel) RunUntil(ctx context.Context, until time.Duration) error {
	k.running = true

	for k.queue.Len() > 0 && k.queue.peek().at <= until {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := k.step(ctx); err != nil {
			return err
		}
	}

	if until > k.now {
		if k.pacer != nil {
			if err := k.pacer.Advance(ctx, k.now, until); err != nil {
				return err
			}
		}
		k.now = until
	}

	return nil
}
