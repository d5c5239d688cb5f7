package kernel

import (
	"fmt"
	"time"
)

/*
 * A Process runs until its next suspension point and returns
 * the condition it is suspended on
 */
type Process interface {
	Resume(k *Kernel) Condition
}

type ProcessFunc func(k *Kernel) Condition

func (fn ProcessFunc) Resume(k *Kernel) Condition {
	return fn(k)
}

type Condition interface {
	String() string
}

type timeoutCondition struct {
	delay time.Duration
}

func (cond timeoutCondition) String() string {
	return fmt.Sprintf("timeout(%s)", cond.delay)
}

type awaitCondition struct {
	target Awaitable
}

func (cond awaitCondition) String() string {
	return fmt.Sprintf("await(%s)", cond.target.Label())
}

type doneCondition struct{}

func (doneCondition) String() string {
	return "done"
}

// Done ends the process.
var Done Condition = doneCondition{}

// Timeout suspends the process for delay of virtual time. A negative delay panics.
func Timeout(delay time.Duration) Condition {
	if delay < 0 {
		panic(fmt.Sprintf("kernel: negative timeout %s", delay))
	}
	return timeoutCondition{delay: delay}
}

// Await suspends the process until target completes.
func Await(target Awaitable) Condition {
	if target == nil {
		panic("kernel: await on nil")
	}
	return awaitCondition{target: target}
}

/*
 * Handle of a spawned process
 */
type Proc struct {
	name      string
	process   Process
	condition Condition
	resumes   int
}

func (p *Proc) Name() string {
	return p.name
}

// Condition is what the process is currently suspended on, nil before its first resume.
func (p *Proc) Condition() Condition {
	return p.condition
}

func (p *Proc) Done() bool {
	return p.condition == Done
}

func (p *Proc) Resumes() int {
	return p.resumes
}
