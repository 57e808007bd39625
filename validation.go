package action

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrNilAction is returned when a nil or zero-value action is invoked.
var ErrNilAction = errors.New("action: nil action")

// Validate reports the first unit that is nil, a nil pointer or nil func,
// or a zero-value eraser. Units may be actions, converters, erasers or
// groups of any kind; groups are checked member by member.
func Validate(units ...any) error {
	for i, u := range units {
		if isNil(u) {
			return fmt.Errorf("action %d: %w", i, ErrNilAction)
		}
		switch u := u.(type) {
		case interface{ valid() bool }:
			if !u.valid() {
				return fmt.Errorf("action %d: %w", i, ErrNilAction)
			}
		case interface{ Validate() error }:
			if err := u.Validate(); err != nil {
				return fmt.Errorf("action %d: %w", i, err)
			}
		}
	}
	return nil
}

// ValidateGroup validates every member of g, which may be a Group,
// AsyncGroup, ResultGroup or AsyncResultGroup.
func ValidateGroup(g interface{ Validate() error }) error {
	if isNil(g) {
		return fmt.Errorf("group: %w", ErrNilAction)
	}
	return g.Validate()
}

func validateMembers[M interface{ valid() bool }](members []M) error {
	for i, m := range members {
		if !m.valid() {
			return fmt.Errorf("group member %d: %w", i, ErrNilAction)
		}
	}
	return nil
}

// SafeInvoke runs a with in. It returns ErrNilAction instead of panicking
// when a is nil, and falls back to context.Background when ctx is nil.
func SafeInvoke[In any](ctx context.Context, a Action[In], in In) error {
	if isNil(a) {
		return fmt.Errorf("cannot invoke: %w", ErrNilAction)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Invoke(ctx, in)
}

// SafeInvokeResult is the result action form of SafeInvoke.
func SafeInvokeResult[In, Out any](ctx context.Context, a ResultAction[In, Out], in In) (Out, error) {
	if isNil(a) {
		var zero Out
		return zero, fmt.Errorf("cannot invoke: %w", ErrNilAction)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Invoke(ctx, in)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
