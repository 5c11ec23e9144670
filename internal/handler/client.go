package handler

import (
	"net/http"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/flow"
	"github.com/msomdec/youth-portal/internal/localstore"
	"github.com/msomdec/youth-portal/internal/session"
	"github.com/msomdec/youth-portal/internal/view"
)

// Clients resolves the per-browser state a request works on.
type Clients struct {
	sessions *session.Registry
	flows    *flow.Registry
	storage  domain.KeyValueStore
}

// NewClients creates a new Clients.
func NewClients(sessions *session.Registry, flows *flow.Registry, storage domain.KeyValueStore) *Clients {
	return &Clients{sessions: sessions, flows: flows, storage: storage}
}

// Client is one browser: its session, its stored users and its modal flows.
type Client struct {
	ID      string
	Session *session.Context
	Users   *localstore.Store

	flows *flow.Registry
}

// For returns the client identified by the request's cookie.
func (c *Clients) For(r *http.Request) Client {
	id := ClientIDFromContext(r.Context())
	return Client{
		ID:      id,
		Session: c.sessions.Get(id),
		Users:   localstore.New(c.storage, id),
		flows:   c.flows,
	}
}

// Flow returns the modal flow for one screen, creating it closed.
func (c Client) Flow(screen flow.Screen) *flow.Machine {
	return c.flows.Get(c.ID, screen)
}

// Env is what flow actions need to log in and register.
func (c Client) Env() flow.Env {
	return flow.Env{Users: c.Users, Session: c.Session}
}

// Page fills the shell data shared by all pages.
func (c Client) Page() view.Page {
	p := view.Page{}
	if u, ok := c.Session.User(); ok {
		p.LoggedIn = true
		p.User = u
	}
	if m, ok := c.flows.Peek(c.ID, flow.ScreenHeader); ok {
		p.HeaderFlow = m.Snapshot()
	}
	return p
}

// snapshot is the current state of a screen's flow without creating one.
func (c Client) snapshot(screen flow.Screen) flow.Snapshot {
	if m, ok := c.flows.Peek(c.ID, screen); ok {
		return m.Snapshot()
	}
	return flow.Snapshot{}
}
