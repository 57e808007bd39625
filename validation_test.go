package action_test

import (
	"context"
	"errors"
	"testing"

	act "github.com/veggiemonk/action"
)

func TestValidate(t *testing.T) {
	var nilFunc act.ActionFunc[int]
	var nilSink *intSink
	var nilGroup *act.ResultGroup[int, int]

	tests := []struct {
		name    string
		units   []any
		wantErr bool
	}{
		{name: "no units"},
		{name: "valid", units: []any{&intSink{}, act.AnyOf[int](&intSink{}), parseInt{}, act.NewAsyncGroup[int]()}},
		{name: "nil interface", units: []any{&intSink{}, nil}, wantErr: true},
		{name: "nil func", units: []any{nilFunc}, wantErr: true},
		{name: "nil pointer", units: []any{nilSink}, wantErr: true},
		{name: "nil group", units: []any{nilGroup}, wantErr: true},
		{name: "zero eraser", units: []any{act.AnyAction[int]{}}, wantErr: true},
		{name: "zero result eraser", units: []any{act.AnyResultAction[int, int]{}}, wantErr: true},
		{name: "zero async eraser", units: []any{act.AnyAsyncAction[int]{}}, wantErr: true},
		{name: "zero async result eraser", units: []any{act.AnyAsyncResultAction[int, int]{}}, wantErr: true},
		{name: "zero converter", units: []any{act.AnyConverter[string, int]{}}, wantErr: true},
		{name: "group with nil member", units: []any{act.NewResultGroup[int, int](double{}, nil)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := act.Validate(tt.units...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, act.ErrNilAction) {
				t.Fatalf("got %v, want it to wrap %v", err, act.ErrNilAction)
			}
		})
	}
}

func TestValidateGroup(t *testing.T) {
	if err := act.ValidateGroup((*act.Group[int])(nil)); !errors.Is(err, act.ErrNilAction) {
		t.Fatalf("nil group: got %v", err)
	}

	g := act.NewGroup[int](&intSink{})
	if err := act.ValidateGroup(g); err != nil {
		t.Fatal(err)
	}

	g.Add(nil)
	err := act.ValidateGroup(g)
	if !errors.Is(err, act.ErrNilAction) {
		t.Fatalf("got %v, want %v", err, act.ErrNilAction)
	}
	if diff := Diff(err.Error(), "group member 1: action: nil action"); diff != "" {
		t.Fatal(diff)
	}
	// the nil member fails at invoke time as well
	if err := g.Invoke(t.Context(), 1); !errors.Is(err, act.ErrNilAction) {
		t.Fatalf("got %v, want %v", err, act.ErrNilAction)
	}

	tests := []struct {
		name  string
		group interface{ Validate() error }
	}{
		{"async", act.NewAsyncGroup[int](act.LiftAction[int](&intSink{}), nil)},
		{"result", act.NewResultGroup[int, int](nil)},
		{"async result", act.NewAsyncResultGroup[int, int](act.LiftResult[int, int](double{})).Add(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := act.ValidateGroup(tt.group); !errors.Is(err, act.ErrNilAction) {
				t.Fatalf("got %v, want %v", err, act.ErrNilAction)
			}
		})
	}
	if err := act.ValidateGroup(act.NewAsyncResultGroup[int, int]()); err != nil {
		t.Fatalf("empty group: %v", err)
	}
}

func TestSafeInvoke(t *testing.T) {
	var noCtx context.Context

	t.Run("nil action", func(t *testing.T) {
		if err := act.SafeInvoke[int](t.Context(), nil, 1); !errors.Is(err, act.ErrNilAction) {
			t.Fatalf("got %v, want %v", err, act.ErrNilAction)
		}
	})

	t.Run("nil context", func(t *testing.T) {
		sink := &intSink{}
		if err := act.SafeInvoke[int](noCtx, sink, 3); err != nil {
			t.Fatal(err)
		}
		if _, got := sink.snapshot(); got != 3 {
			t.Fatalf("got %d, want 3", got)
		}
	})

	t.Run("error passes through", func(t *testing.T) {
		if err := act.SafeInvoke[int](t.Context(), failing[int](errBoom), 1); err != errBoom {
			t.Fatalf("got %v, want %v", err, errBoom)
		}
	})

	t.Run("result", func(t *testing.T) {
		got, err := act.SafeInvokeResult[int, int](noCtx, double{}, 4)
		if err != nil || got != 8 {
			t.Fatalf("got %d, %v", got, err)
		}
		var nilResult act.ResultFunc[int, int]
		got, err = act.SafeInvokeResult[int, int](t.Context(), nilResult, 4)
		if !errors.Is(err, act.ErrNilAction) || got != 0 {
			t.Fatalf("got %d, %v", got, err)
		}
	})
}
