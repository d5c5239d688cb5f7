package kernel

import (
	"container/heap"
	"time"
)

type wakeup struct {
	at  time.Duration
	seq uint64
	fn  func()
}

/*
 * Min-heap of wakeups ordered by time, then by registration order
 */
type wakeupQueue []*wakeup

func (q wakeupQueue) Len() int { return len(q) }

func (q wakeupQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q wakeupQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *wakeupQueue) Push(x any) {
	*q = append(*q, x.(*wakeup))
}

func (q *wakeupQueue) Pop() any {
	old := *q
	n := len(old)
	w := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return w
}

func (q *wakeupQueue) push(w *wakeup) {
	heap.Push(q, w)
}

func (q *wakeupQueue) pop() *wakeup {
	return heap.Pop(q).(*wakeup)
}

func (q wakeupQueue) peek() *wakeup {
	return q[0]
}
