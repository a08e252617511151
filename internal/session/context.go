// Package session holds the process-wide record of who is using the
// application right now. The state is transient: it does not survive restart
// and a restarted process always begins empty.
package session

import (
	"sync"

	"github.com/Rakib65104/BCS430HealthcareProject/internal/model"
	"github.com/gofrs/uuid/v5"
)

// Context is the single current-session state. Either all of (id, role,
// profile) are set or none are; transitions are atomic under the mutex.
// The background worker and the interactive thread both touch it, so every
// read-modify-write goes through the lock.
type Context struct {
	mu      sync.RWMutex
	epoch   uint64
	id      uuid.UUID
	role    model.Role
	profile *model.Profile
	tokens  model.Tokens
}

// New returns an empty session context.
func New() *Context { return &Context{} }

// Set populates the session atomically from a successful signup or login.
func (c *Context) Set(id uuid.UUID, role model.Role, profile *model.Profile, tokens model.Tokens) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = id
	c.role = role
	c.profile = profile.Clone()
	c.tokens = tokens
	c.epoch++
}

// Clear empties the session on logout. Any async completion issued before
// the clear becomes stale and will be dropped by Apply.
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = uuid.Nil
	c.role = ""
	c.profile = nil
	c.tokens = model.Tokens{}
	c.epoch++
}

// Epoch returns the current generation counter. Capture it before issuing an
// async operation and pass it to Apply with the result.
func (c *Context) Epoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

// Apply is the check-and-set used by async completion callbacks: the result
// is installed only if the session has not been cleared or replaced since
// the operation was issued. Returns false when the result was dropped.
func (c *Context) Apply(epoch uint64, id uuid.UUID, role model.Role, profile *model.Profile, tokens model.Tokens) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return false
	}
	c.id = id
	c.role = role
	c.profile = profile.Clone()
	c.tokens = tokens
	c.epoch++
	return true
}

// UpdateProfile swaps the cached profile copy after a successful save, but
// only for the currently logged-in identifier.
func (c *Context) UpdateProfile(id uuid.UUID, profile *model.Profile) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.id != id || c.id == uuid.Nil {
		return false
	}
	c.profile = profile.Clone()
	return true
}

// IsLoggedIn reports whether a session is active.
func (c *Context) IsLoggedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id != uuid.Nil
}

// CurrentID returns the authenticated identifier, or uuid.Nil when empty.
func (c *Context) CurrentID() uuid.UUID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

// CurrentRole returns the authenticated role, or "" when empty.
func (c *Context) CurrentRole() model.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.role
}

// CurrentProfile returns a disposable copy of the loaded profile, or nil.
// Mutating the copy does not touch the session; an explicit save through the
// account service followed by UpdateProfile is required.
func (c *Context) CurrentProfile() *model.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile.Clone()
}

// Tokens returns the session tokens issued at login.
func (c *Context) Tokens() model.Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens
}
