// Package action provides small, composable units of work that consume a typed
// input and optionally produce a typed output, synchronously or asynchronously.
// The package is generic and works with any input and output types.
//
// # Key Features
//
//   - **Contracts**: four action interfaces crossing {side effect, result} with {sync, async}.
//   - **Erasure**: any implementation can be stored behind a uniform value ([AnyAction] and friends).
//   - **Composition**: prepend converters or upstream actions, append downstream actions.
//   - **Groups**: ordered collections of same-signature actions that are themselves actions.
//   - **Middleware**: opt-in logging, invocation ids, tracing and panic recovery.
//
// # Core Concepts
//
//   - **Action**: a unit of work with a single Invoke method. [Action] only performs a
//     side effect, [ResultAction] returns a value.
//   - **Async**: the asynchronous variants return a [Future] from InvokeAsync. Every
//     synchronous action in this package also satisfies the asynchronous contract with
//     a future that is already resolved.
//   - **Converter**: maps one input type to another so it can be attached in front of an action.
//   - **Group**: runs its members one after another, in insertion order, and stops at the first error.
//
// Errors are never wrapped by the composition layer: a caller always observes the error
// returned by the first failing leaf.
//
// The package does not schedule work. Asynchronous composites run their steps when the
// returned [Future] is awaited, and only [Go] starts a goroutine.
package action
