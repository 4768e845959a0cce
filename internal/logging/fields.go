package logging

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Float[S ~string, T constraints.Float](s S, v T) Field {
	return zap.Float64(string(s), float64(v))
}

func Any[S ~string](s S, v any) Field {
	return zap.Any(string(s), v)
}

func Error(err error) Field {
	return zap.Error(err)
}

func Stringer[S ~string](s S, v interface{ String() string }) Field {
	return zap.Stringer(string(s), v)
}
