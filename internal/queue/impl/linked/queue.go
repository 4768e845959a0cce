// Package linked implements queue.FIFOQueue over a singly-linked chain of
// nodes with O(1) push and pop at either end of the chain.
package linked

import (
	"github.com/practicalabs/dsakit/internal/queue"
)

type node[T any] struct {
	val  T
	next *node[T]
}

// linkedFifoQueue tracks the head and tail of the chain plus a live
// element count. The chain is owned exclusively by the queue: head reaches
// tail in exactly count-1 steps and tail.next is always nil.
//
// Not safe for concurrent use; callers needing that must synchronize
// externally.
type linkedFifoQueue[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

// CreateQueue returns an empty FIFO queue for values of type T.
func CreateQueue[T any]() *linkedFifoQueue[T] {
	return &linkedFifoQueue[T]{}
}

func (q *linkedFifoQueue[T]) Push(v T) {
	n := &node[T]{val: v}

	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}

	q.tail = n
	q.count++
}

func (q *linkedFifoQueue[T]) Pop() (T, error) {
	if q.head == nil {
		var zero T
		return zero, queue.ErrEmptyQueue
	}

	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}

	// Unlink so the popped node holds no reference into the chain.
	n.next = nil
	q.count--

	return n.val, nil
}

func (q *linkedFifoQueue[T]) Front() (T, error) {
	if q.head == nil {
		var zero T
		return zero, queue.ErrEmptyQueue
	}

	return q.head.val, nil
}

func (q *linkedFifoQueue[T]) Size() int {
	return q.count
}

func (q *linkedFifoQueue[T]) IsEmpty() bool {
	return q.count == 0
}

// Reset discards every remaining element, unlinking the chain node by node
// so no popped-off segment keeps later nodes reachable. It is a no-op on an
// empty queue.
func (q *linkedFifoQueue[T]) Reset() {
	for q.head != nil {
		n := q.head
		q.head = n.next
		n.next = nil
	}

	q.tail = nil
	q.count = 0
}
