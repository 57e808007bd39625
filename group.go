package action

import (
	"context"
	"fmt"
	"slices"
)

// Group is an ordered collection of actions that is itself an action.
// Members run one after another in insertion order; the first error stops
// the group and is returned as is. Effects of members that already ran are
// not undone.
//
// Erasing a group, composing it or adding it to another group captures its
// current members: a later Add on g does not change those values.
type Group[In any] struct {
	members []AnyAction[In]
}

// NewGroup creates a group with the given initial members.
func NewGroup[In any](actions ...Action[In]) *Group[In] {
	g := &Group[In]{members: make([]AnyAction[In], 0, len(actions))}
	for _, a := range actions {
		g.Add(a)
	}
	return g
}

// Add appends a to the end of the group and returns the group.
func (g *Group[In]) Add(a Action[In]) *Group[In] {
	g.members = append(g.members, AnyOf(a))
	return g
}

// Len returns the number of members.
func (g *Group[In]) Len() int {
	return len(g.members)
}

// Validate reports the first member that was added as nil.
func (g *Group[In]) Validate() error {
	if g == nil {
		return fmt.Errorf("group: %w", ErrNilAction)
	}
	return validateMembers(g.members)
}

// Any returns an erased action over a copy of the current members.
func (g *Group[In]) Any() AnyAction[In] {
	if g == nil {
		return AnyAction[In]{}
	}
	members := slices.Clone(g.members)
	return AnyAction[In]{fn: (&Group[In]{members: members}).Invoke}
}

// Invoke runs every member with in. An empty group does nothing.
func (g *Group[In]) Invoke(ctx context.Context, in In) error {
	for _, m := range g.members {
		if err := m.Invoke(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

// InvokeAsync runs the group and returns a resolved future.
func (g *Group[In]) InvokeAsync(ctx context.Context, in In) Future[Void] {
	return Ready(Void{}, g.Invoke(ctx, in))
}

func (g *Group[In]) String() string {
	return fmt.Sprintf("Group[%s](%d)", typeName[In](), g.Len())
}

// AsyncGroup is the asynchronous form of Group. Members are awaited one at a
// time and never run concurrently with each other.
type AsyncGroup[In any] struct {
	members []AnyAsyncAction[In]
}

// NewAsyncGroup creates an asynchronous group with the given initial members.
func NewAsyncGroup[In any](actions ...AsyncAction[In]) *AsyncGroup[In] {
	g := &AsyncGroup[In]{members: make([]AnyAsyncAction[In], 0, len(actions))}
	for _, a := range actions {
		g.Add(a)
	}
	return g
}

// Add appends a to the end of the group and returns the group.
func (g *AsyncGroup[In]) Add(a AsyncAction[In]) *AsyncGroup[In] {
	g.members = append(g.members, AnyAsyncOf(a))
	return g
}

// Len returns the number of members.
func (g *AsyncGroup[In]) Len() int {
	return len(g.members)
}

// Validate reports the first member that was added as nil.
func (g *AsyncGroup[In]) Validate() error {
	if g == nil {
		return fmt.Errorf("group: %w", ErrNilAction)
	}
	return validateMembers(g.members)
}

// Any returns an erased action over a copy of the current members.
func (g *AsyncGroup[In]) Any() AnyAsyncAction[In] {
	if g == nil {
		return AnyAsyncAction[In]{}
	}
	members := slices.Clone(g.members)
	return AnyAsyncAction[In]{fn: (&AsyncGroup[In]{members: members}).InvokeAsync}
}

// InvokeAsync returns a future that runs the members in order when awaited.
func (g *AsyncGroup[In]) InvokeAsync(ctx context.Context, in In) Future[Void] {
	members := g.members
	return Defer(func(actx context.Context) (Void, error) {
		for _, m := range members {
			if _, err := m.InvokeAsync(ctx, in).Await(actx); err != nil {
				return Void{}, err
			}
		}
		return Void{}, nil
	})
}

func (g *AsyncGroup[In]) String() string {
	return fmt.Sprintf("AsyncGroup[%s](%d)", typeName[In](), g.Len())
}

// ResultGroup is an ordered collection of result actions that is itself a
// result action. Its output holds one value per member, in insertion order.
type ResultGroup[In, Out any] struct {
	members []AnyResultAction[In, Out]
}

// NewResultGroup creates a result group with the given initial members.
func NewResultGroup[In, Out any](actions ...ResultAction[In, Out]) *ResultGroup[In, Out] {
	g := &ResultGroup[In, Out]{members: make([]AnyResultAction[In, Out], 0, len(actions))}
	for _, a := range actions {
		g.Add(a)
	}
	return g
}

// Add appends a to the end of the group and returns the group.
func (g *ResultGroup[In, Out]) Add(a ResultAction[In, Out]) *ResultGroup[In, Out] {
	g.members = append(g.members, AnyResultOf(a))
	return g
}

// Len returns the number of members.
func (g *ResultGroup[In, Out]) Len() int {
	return len(g.members)
}

// Validate reports the first member that was added as nil.
func (g *ResultGroup[In, Out]) Validate() error {
	if g == nil {
		return fmt.Errorf("group: %w", ErrNilAction)
	}
	return validateMembers(g.members)
}

// Any returns an erased result action over a copy of the current members.
func (g *ResultGroup[In, Out]) Any() AnyResultAction[In, []Out] {
	if g == nil {
		return AnyResultAction[In, []Out]{}
	}
	members := slices.Clone(g.members)
	return AnyResultAction[In, []Out]{fn: (&ResultGroup[In, Out]{members: members}).Invoke}
}

// Invoke runs every member with in and collects their outputs. On failure
// it returns nil and the first error. An empty group returns an empty slice.
func (g *ResultGroup[In, Out]) Invoke(ctx context.Context, in In) ([]Out, error) {
	members := g.members
	out := make([]Out, 0, len(members))
	for _, m := range members {
		v, err := m.Invoke(ctx, in)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// InvokeAsync runs the group and returns a resolved future.
func (g *ResultGroup[In, Out]) InvokeAsync(ctx context.Context, in In) Future[[]Out] {
	return Ready[[]Out](g.Invoke(ctx, in))
}

func (g *ResultGroup[In, Out]) String() string {
	return fmt.Sprintf("ResultGroup[%s, %s](%d)", typeName[In](), typeName[Out](), g.Len())
}

// AsyncResultGroup is the asynchronous form of ResultGroup.
type AsyncResultGroup[In, Out any] struct {
	members []AnyAsyncResultAction[In, Out]
}

// NewAsyncResultGroup creates an asynchronous result group with the given
// initial members.
func NewAsyncResultGroup[In, Out any](actions ...AsyncResultAction[In, Out]) *AsyncResultGroup[In, Out] {
	g := &AsyncResultGroup[In, Out]{members: make([]AnyAsyncResultAction[In, Out], 0, len(actions))}
	for _, a := range actions {
		g.Add(a)
	}
	return g
}

// Add appends a to the end of the group and returns the group.
func (g *AsyncResultGroup[In, Out]) Add(a AsyncResultAction[In, Out]) *AsyncResultGroup[In, Out] {
	g.members = append(g.members, AnyAsyncResultOf(a))
	return g
}

// Len returns the number of members.
func (g *AsyncResultGroup[In, Out]) Len() int {
	return len(g.members)
}

// Validate reports the first member that was added as nil.
func (g *AsyncResultGroup[In, Out]) Validate() error {
	if g == nil {
		return fmt.Errorf("group: %w", ErrNilAction)
	}
	return validateMembers(g.members)
}

// Any returns an erased result action over a copy of the current members.
func (g *AsyncResultGroup[In, Out]) Any() AnyAsyncResultAction[In, []Out] {
	if g == nil {
		return AnyAsyncResultAction[In, []Out]{}
	}
	members := slices.Clone(g.members)
	return AnyAsyncResultAction[In, []Out]{fn: (&AsyncResultGroup[In, Out]{members: members}).InvokeAsync}
}

// InvokeAsync returns a future that runs the members in order when awaited
// and resolves to their outputs.
func (g *AsyncResultGroup[In, Out]) InvokeAsync(ctx context.Context, in In) Future[[]Out] {
	members := g.members
	return Defer(func(actx context.Context) ([]Out, error) {
		out := make([]Out, 0, len(members))
		for _, m := range members {
			v, err := m.InvokeAsync(ctx, in).Await(actx)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	})
}

func (g *AsyncResultGroup[In, Out]) String() string {
	return fmt.Sprintf("AsyncResultGroup[%s, %s](%d)", typeName[In](), typeName[Out](), g.Len())
}
