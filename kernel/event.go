package kernel

import "fmt"

type Awaitable interface {
	Completed() bool
	Label() string
	onComplete(fn func())
}

/*
 * Single-use completion handle, created by Event.Next
 */
type Future[T any] struct {
	label     string
	completed bool
	value     T
	waiters   []func()
}

func (f *Future[T]) Completed() bool {
	return f.completed
}

// Value is the value the owning event fired with, the zero value until then.
func (f *Future[T]) Value() T {
	return f.value
}

func (f *Future[T]) Label() string {
	return f.label
}

func (f *Future[T]) onComplete(fn func()) {
	if f.completed {
		fn()
		return
	}
	f.waiters = append(f.waiters, fn)
}

func (f *Future[T]) complete(value T) {
	if f.completed {
		return
	}
	f.completed = true
	f.value = value

	waiters := f.waiters
	f.waiters = nil
	for _, fn := range waiters {
		fn()
	}
}

/*
 * Named, typed signal. Subscribers stay registered across firings while
 * futures handed out by Next are completed once and dropped.
 */
type Event[T any] struct {
	name        string
	subscribers []func(T)
	pending     []*Future[T]
	fired       int
}

func NewEvent[T any](name string) *Event[T] {
	return &Event[T]{name: name}
}

func (e *Event[T]) Name() string {
	return e.name
}

func (e *Event[T]) Subscribe(callback func(T)) {
	e.subscribers = append(e.subscribers, callback)
}

// Next returns a fresh future completed by the next Fire.
func (e *Event[T]) Next() *Future[T] {
	f := &Future[T]{label: fmt.Sprintf("%s#%d", e.name, e.fired+1)}
	e.pending = append(e.pending, f)
	return f
}

func (e *Event[T]) Fire(value T) {
	e.fired++

	pending := e.pending
	e.pending = nil
	for _, f := range pending {
		f.complete(value)
	}

	for _, callback := range e.subscribers {
		callback(value)
	}
}

func (e *Event[T]) Waiting() int {
	return len(e.pending)
}

func (e *Event[T]) Fired() int {
	return e.fired
}
