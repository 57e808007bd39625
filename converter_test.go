package action_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"dario.cat/mergo"
	act "github.com/veggiemonk/action"
)

// ignoreInput relies on the default no-op Process.
type ignoreInput struct {
	act.Discard[string]
}

// countInput overrides the default.
type countInput struct {
	act.Discard[string]
	seen *int
}

func (c countInput) Process(context.Context, string) (act.Void, error) {
	*c.seen++
	return act.Void{}, nil
}

func TestDiscardDefault(t *testing.T) {
	ctx := t.Context()
	in := "untouched"

	got, err := ignoreInput{}.Process(ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	if got != (act.Void{}) || in != "untouched" {
		t.Fatalf("got %v, input %q", got, in)
	}
	if _, err := (ignoreInput{}).ProcessAsync(ctx, in).Await(ctx); err != nil {
		t.Fatal(err)
	}

	var seen int
	c := countInput{seen: &seen}
	if _, err := act.AnyConverterOf[string, act.Void](c).Process(ctx, in); err != nil {
		t.Fatal(err)
	}
	if seen != 1 {
		t.Fatalf("override ran %d times, want 1", seen)
	}
}

func TestDiscardInFrontOfAction(t *testing.T) {
	ctx := t.Context()
	var calls int
	ping := act.ActionFunc[act.Void](func(context.Context, act.Void) error {
		calls++
		return nil
	})

	a := act.Prepend[string, act.Void](ping, ignoreInput{})
	for _, in := range []string{"", "anything"} {
		if err := a.Invoke(ctx, in); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 2 {
		t.Fatalf("calls %d, want 2", calls)
	}
}

func TestErasedConverters(t *testing.T) {
	ctx := t.Context()

	c := act.AnyConverterOf[string, int](act.AnyConverterOf[string, int](parseInt{}))
	v, err := c.Async().ProcessAsync(ctx, "12").Await(ctx)
	if err != nil || v != 12 {
		t.Fatalf("got %d, %v", v, err)
	}

	if _, err := (act.AnyConverter[string, int]{}).Process(ctx, "1"); !errors.Is(err, act.ErrNilAction) {
		t.Fatalf("got %v, want %v", err, act.ErrNilAction)
	}
	if _, err := act.AnyAsyncConverterOf[string, int](nil).ProcessAsync(ctx, "1").Await(ctx); !errors.Is(err, act.ErrNilAction) {
		t.Fatalf("got %v, want %v", err, act.ErrNilAction)
	}
}

type profile struct {
	Name  string
	Email string
	Age   int
}

func TestMerge(t *testing.T) {
	ctx := t.Context()
	parts := act.NewResultGroup[string, profile](
		act.ResultFunc[string, profile](func(_ context.Context, id string) (profile, error) {
			return profile{Name: id}, nil
		}),
		act.ResultFunc[string, profile](func(_ context.Context, id string) (profile, error) {
			return profile{Email: id + "@example.com", Name: "ignored"}, nil
		}),
		act.ResultFunc[string, profile](func(context.Context, string) (profile, error) {
			return profile{Age: 42}, nil
		}),
	)

	tests := []struct {
		name string
		opts []func(*mergo.Config)
		want profile
	}{
		{"first wins", nil, profile{Name: "ada", Email: "ada@example.com", Age: 42}},
		{"override", []func(*mergo.Config){mergo.WithOverride}, profile{Name: "ignored", Email: "ada@example.com", Age: 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := act.AppendConverter[string, []profile, profile](parts, act.Merge[profile](tt.opts...)).Invoke(ctx, "ada")
			if err != nil {
				t.Fatal(err)
			}
			if diff := Diff(got, tt.want); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestMergeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := act.Merge[profile]().Process(ctx, []profile{{Age: 1}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want %v", err, context.Canceled)
	}
}

func TestNarrowingConverters(t *testing.T) {
	ctx := t.Context()

	tests := []struct {
		name    string
		in      int
		wantErr bool
	}{
		{"small", 12, false},
		{"max int32", math.MaxInt32, false},
		{"overflow", math.MaxInt32 + 1, true},
		{"underflow", math.MinInt32 - 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := act.ToInt32().Process(ctx, tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && int(got) != tt.in {
				t.Fatalf("got %d, want %d", got, tt.in)
			}
		})
	}

	if _, err := act.ToUint64().Process(ctx, -1); err == nil {
		t.Fatal("expected an error for a negative value")
	}

	var stored uint64
	sink := act.ActionFunc[uint64](func(_ context.Context, v uint64) error {
		stored = v
		return nil
	})
	a := act.Prepend[string, int](act.Prepend[int, uint64](sink, act.ToUint64()), act.ParseInt())
	if err := a.Invoke(ctx, "77"); err != nil {
		t.Fatal(err)
	}
	if err := a.Invoke(ctx, "-1"); err == nil {
		t.Fatal("expected an error for a negative value")
	}
	if stored != 77 {
		t.Fatalf("got %d, want 77", stored)
	}
}
