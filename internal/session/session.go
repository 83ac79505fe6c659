// Package session holds the storefront's current-principal state. The
// session is an explicit object injected into the managers; it starts
// empty, is set on login, and is cleared on logout.
package session

import (
	"sync"

	"fashionmela/internal/domain"
)

// View is the reduced principal exposed to the rest of the system. The
// password never leaves the identity registry.
type View struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session tracks who is signed in. Identity changes and content changes
// are deliberately separate effects: listeners registered here fire only
// when the principal changes, never when a manager mutates its own data.
type Session struct {
	mu        sync.Mutex
	current   *View
	listeners []func()
}

// New returns an empty (guest) session.
func New() *Session {
	return &Session{}
}

// Current returns the signed-in view, or nil for a guest session.
func (s *Session) Current() *View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	v := *s.current
	return &v
}

// IdentityKey returns the key namespacing per-principal data: the email of
// the signed-in principal, or the guest sentinel.
func (s *Session) IdentityKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.GuestKey
	}
	return s.current.Email
}

// Set replaces the current principal and fires the change listeners.
func (s *Session) Set(v View) {
	s.mu.Lock()
	s.current = &v
	fns := append([]func(){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Clear signs the session out and fires the change listeners.
func (s *Session) Clear() {
	s.mu.Lock()
	s.current = nil
	fns := append([]func(){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// OnChange registers fn to run after every Set or Clear.
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
