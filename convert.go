package action

import (
	"context"
	"fmt"
	"strconv"

	"dario.cat/mergo"
	"github.com/ccoveille/go-safecast"
)

// Merge returns a converter that folds a slice, typically the output of a
// ResultGroup, into a single value using the mergo library. Elements are
// merged in order into a zero T; by default a field already set is kept,
// pass mergo.WithOverride to let later elements win.
func Merge[T any](opts ...func(*mergo.Config)) ConverterFunc[[]T, T] {
	return func(ctx context.Context, in []T) (T, error) {
		var dst T
		for _, v := range in {
			if err := ctx.Err(); err != nil {
				var zero T
				return zero, fmt.Errorf("aborting merge: %w", err)
			}
			if err := mergo.Merge(&dst, v, opts...); err != nil {
				var zero T
				return zero, err
			}
		}
		return dst, nil
	}
}

// ParseInt returns a converter from a base 10 string to an int.
func ParseInt() ConverterFunc[string, int] {
	return func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}
}

// ToInt32 returns a converter that narrows an int to an int32, failing
// instead of overflowing.
func ToInt32() ConverterFunc[int, int32] {
	return func(_ context.Context, v int) (int32, error) {
		return safecast.ToInt32(v)
	}
}

// ToUint64 returns a converter from an int to a uint64 that fails on
// negative values.
func ToUint64() ConverterFunc[int, uint64] {
	return func(_ context.Context, v int) (uint64, error) {
		return safecast.ToUint64(v)
	}
}
