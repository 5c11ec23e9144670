// Package session holds who is logged in for each browser and issues the
// cookie token that identifies the browser.
package session

import (
	"sync"

	"github.com/msomdec/youth-portal/internal/domain"
)

// Context is the logged-in state of one client. It starts empty and is
// never persisted; pages that need persistence use the local user store.
type Context struct {
	mu   sync.RWMutex
	user *domain.User
}

// NewContext returns an empty, logged-out Context.
func NewContext() *Context {
	return &Context{}
}

// User returns the current user, if any.
func (c *Context) User() (domain.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return domain.User{}, false
	}
	return *c.user, true
}

// IsLoggedIn reports whether a user is set.
func (c *Context) IsLoggedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil
}

// Login sets the current user.
func (c *Context) Login(user domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	u := user.Normalize()
	c.user = &u
}

// Logout clears the current user.
func (c *Context) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
}
