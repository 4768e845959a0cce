// Package result carries a value-or-error pair through batch operations
// that must not stop at the first failure.
package result

type Result[T any] interface {
	Value() T
	Err() error
}

type ConcreteResult[T any] struct {
	Val   T
	Error error
}

func (r ConcreteResult[T]) Value() T {
	return r.Val
}

func (r ConcreteResult[T]) Err() error {
	return r.Error
}

// Of builds a result from a conventional (value, error) return.
func Of[T any](v T, err error) ConcreteResult[T] {
	return ConcreteResult[T]{Val: v, Error: err}
}
