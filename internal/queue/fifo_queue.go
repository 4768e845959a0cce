package queue

import "github.com/zeebo/errs"

// ErrEmptyQueue is returned by Pop and Front when no element is present.
// Match it with errors.Is; an empty queue is never reported through a
// zero or sentinel payload value.
var ErrEmptyQueue = errs.New("queue is empty")

// FIFOQueue is a first-in-first-out container. Implementations are not
// safe for concurrent use unless they state otherwise.
type FIFOQueue[T any] interface {
	Push(T)
	Pop() (T, error)
	Front() (T, error)
	Size() int
	IsEmpty() bool
	Reset()
}
