package action

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/ccoveille/go-safecast"
	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// InvocationIDKey is the context key holding the id set by UUIDMiddleware.
const InvocationIDKey contextKey = "invocation_id"

// ErrNoInvocationID is returned by GetInvocationID when the context carries no id.
var ErrNoInvocationID = errors.New("action: no invocation id in context")

// IDGenerator produces invocation ids.
type IDGenerator interface {
	ID() uuid.UUID
}

// RandomID generates random (version 4) UUIDs.
type RandomID struct{}

// ID returns a new random UUID.
func (RandomID) ID() uuid.UUID {
	return uuid.New()
}

// StaticID generates predictable ids from a counter, starting at 1.
// It is meant for tests.
type StaticID struct {
	n atomic.Int64
}

// ID returns the next id in the sequence.
func (s *StaticID) ID() uuid.UUID {
	n, err := safecast.ToUint64(s.n.Add(1))
	if err != nil {
		return uuid.Nil
	}
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[8:], n)
	return id
}

var (
	genMu sync.RWMutex
	gen   IDGenerator = RandomID{}
)

// SetIDGenerator replaces the generator used by UUIDMiddleware.
func SetIDGenerator(g IDGenerator) {
	genMu.Lock()
	defer genMu.Unlock()
	gen = g
}

func nextID() uuid.UUID {
	genMu.RLock()
	defer genMu.RUnlock()
	return gen.ID()
}

func setInvocationID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, InvocationIDKey, id)
}

// GetInvocationID returns the invocation id stored in ctx.
func GetInvocationID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(InvocationIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoInvocationID
	}
	return id, nil
}
