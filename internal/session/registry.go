package session

import (
	"context"
	"time"

	"github.com/msomdec/youth-portal/internal/ttlmap"
)

// Registry maps client ids to their Context. Contexts idle for longer than
// the TTL are dropped, which logs the client out.
type Registry struct {
	contexts *ttlmap.Map[*Context]
}

// NewRegistry creates a Registry with the given idle TTL.
func NewRegistry(idleTTL time.Duration) *Registry {
	return &Registry{contexts: ttlmap.New[*Context](idleTTL)}
}

// Get returns the client's Context, creating an empty one on first use.
func (r *Registry) Get(clientID string) *Context {
	return r.contexts.Get(clientID, NewContext)
}

// Len reports how many clients currently hold a Context.
func (r *Registry) Len() int {
	return r.contexts.Len()
}

// Run sweeps idle contexts until ctx is cancelled.
func (r *Registry) Run(ctx context.Context) {
	r.contexts.Run(ctx, time.Minute)
}
