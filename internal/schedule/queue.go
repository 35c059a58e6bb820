// Package schedule runs deferred callbacks against the frame clock. It has
// no goroutines: callbacks fire from Advance, on the caller's goroutine.
package schedule

import (
	"cmp"
	"slices"
	"time"
)

type task struct {
	due time.Duration
	seq uint64
	fn  func()
}

// Queue holds callbacks keyed by the clock time they become due. Tasks are
// never cancelled.
type Queue struct {
	now   time.Duration
	seq   uint64
	tasks []task
}

func NewQueue() *Queue {
	return &Queue{}
}

// After schedules fn to run once delay has elapsed on the queue clock.
// Tasks due at the same instant run in the order they were scheduled.
func (q *Queue) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	t := task{due: q.now + delay, seq: q.seq, fn: fn}
	q.seq++

	i, _ := slices.BinarySearchFunc(q.tasks, t, func(a, b task) int {
		if c := cmp.Compare(a.due, b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	q.tasks = slices.Insert(q.tasks, i, t)
}

// Advance moves the clock forward by dt and runs every task that is due.
// Tasks scheduled while running wait for a later Advance, even with a zero
// delay.
func (q *Queue) Advance(dt time.Duration) {
	q.now += dt

	n := 0
	for n < len(q.tasks) && q.tasks[n].due <= q.now {
		n++
	}
	if n == 0 {
		return
	}
	due := slices.Clone(q.tasks[:n])
	q.tasks = slices.Delete(q.tasks, 0, n)
	for _, t := range due {
		t.fn()
	}
}

// Now returns the total time advanced so far.
func (q *Queue) Now() time.Duration { return q.now }

// Pending returns the number of tasks not yet run.
func (q *Queue) Pending() int { return len(q.tasks) }
