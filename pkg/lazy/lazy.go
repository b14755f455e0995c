// Package lazy provides a shared deferred computation that runs at most once.
//
// A [Task] wraps a fallible function whose single result is shared by every
// holder of the task pointer. After deduplication the same computation node
// is reachable from many parents, and any number of goroutines may demand its
// result concurrently; the wrapped function still executes exactly once, and
// every caller observes the same outcome. Failures are stored and shared
// exactly like successes, and a panic inside the function is downgraded to an
// ordinary error rather than crossing task boundaries.
package lazy

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Result is the shared outcome of a task: either a value or an error.
// Results are small handles that may be copied freely.
type Result[T any] struct {
	Value T
	Err   error
}

// Task is a named, deferred computation producing a T at most once.
//
// The zero value is not usable; create tasks with [New] or [NewImmediate].
// Task must not be copied after first use.
type Task[T any] struct {
	name string
	once sync.Once
	done atomic.Bool
	fn   func() (T, error)
	res  Result[T]
}

// New creates a task in the upcoming state. The function runs on the first
// call to Result, on whichever goroutine gets there first.
func New[T any](name string, fn func() (T, error)) *Task[T] {
	return &Task[T]{name: name, fn: fn}
}

// NewImmediate creates a task already finished with the given value. Used
// for freestanding constant assets that need no computation.
func NewImmediate[T any](name string, value T) *Task[T] {
	t := &Task[T]{name: name}
	t.once.Do(func() { t.res = Result[T]{Value: value} })
	t.done.Store(true)
	return t
}

// Name returns the task's diagnostic name.
func (t *Task[T]) Name() string { return t.name }

// Done reports whether the result is already stored. It never blocks and is
// only advisory: a false answer may be stale by the time it is observed.
// Schedulers use it to count how often a demanded result was already
// rendered.
func (t *Task[T]) Done() bool { return t.done.Load() }

// Result runs the wrapped function if it has not run yet and returns the
// shared outcome. Concurrent callers serialize on the one-way transition:
// the function executes exactly once and later callers block until the
// result is stored, then receive the same value or error.
func (t *Task[T]) Result() Result[T] {
	t.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				t.res.Err = fmt.Errorf("task %s panicked: %v", t.name, r)
			}
		}()
		// Drop the function reference after the run so captured inputs
		// become collectable.
		fn := t.fn
		t.fn = nil
		t.res.Value, t.res.Err = fn()
	})
	t.done.Store(true)
	return t.res
}
