package flow

import (
	"context"
	"time"

	"github.com/msomdec/youth-portal/internal/ttlmap"
)

// Registry holds one Machine per client and screen.
type Registry struct {
	machines *ttlmap.Map[*Machine]
	otp      *OTPIssuer
}

// NewRegistry creates a registry whose machines expire after idleTTL
// without use.
func NewRegistry(otp *OTPIssuer, idleTTL time.Duration) *Registry {
	return &Registry{
		machines: ttlmap.New[*Machine](idleTTL),
		otp:      otp,
	}
}

// Get returns the machine for clientID on screen, creating a closed one on
// first use.
func (r *Registry) Get(clientID string, screen Screen) *Machine {
	return r.machines.Get(clientID+"/"+string(screen), func() *Machine {
		return NewMachine(r.otp)
	})
}

// Peek returns the machine without creating or refreshing it.
func (r *Registry) Peek(clientID string, screen Screen) (*Machine, bool) {
	return r.machines.Peek(clientID + "/" + string(screen))
}

func (r *Registry) Len() int { return r.machines.Len() }

// Run sweeps idle machines until ctx is cancelled.
func (r *Registry) Run(ctx context.Context) {
	r.machines.Run(ctx, time.Minute)
}
