// Package cart maintains the (product, quantity) lines for the current
// identity. Loading is driven by identity changes and saving by content
// changes; the two effects are never merged, otherwise a signed-out
// user's lines could be written under the next identity's key.
package cart

import (
	"fmt"
	"sync"

	"fashionmela/internal/domain"
	"fashionmela/internal/notify"
	cartrepo "fashionmela/internal/repository/cart"
	"fashionmela/internal/session"
)

// Service is the cart manager for the current identity.
type Service struct {
	mu       sync.Mutex
	repo     cartrepo.Repository
	sess     *session.Session
	notifier notify.Notifier
	lines    []domain.CartLine
}

// New creates the cart manager, loads the current identity's persisted
// lines, and registers the reload-on-identity-change handler.
func New(repo cartrepo.Repository, sess *session.Session, notifier notify.Notifier) *Service {
	s := &Service{repo: repo, sess: sess, notifier: notifier}
	s.reload()
	sess.OnChange(s.reload)
	return s
}

// reload replaces the in-memory lines with the current identity's
// persisted cart. A failed or empty read yields an empty cart.
func (s *Service) reload() {
	key := s.sess.IdentityKey()
	s.mu.Lock()
	defer s.mu.Unlock()
	carts, err := s.repo.LoadAll()
	if err != nil {
		s.lines = nil
		return
	}
	s.lines = carts[key]
}

// persistLocked writes the in-memory lines under the current identity's
// key. It re-reads the full map first so other identities' carts are
// preserved. Callers hold s.mu.
func (s *Service) persistLocked() error {
	carts, err := s.repo.LoadAll()
	if err != nil {
		return fmt.Errorf("load carts: %w", err)
	}
	carts[s.sess.IdentityKey()] = s.lines
	if err := s.repo.SaveAll(carts); err != nil {
		return fmt.Errorf("save carts: %w", err)
	}
	return nil
}

// Add increments the existing line for the product or appends a new line
// with quantity 1 and a snapshot of the product's display fields.
func (s *Service) Add(p domain.Product) error {
	s.mu.Lock()
	prev := snapshot(s.lines)
	merged := false
	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			s.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, domain.CartLine{Product: p, Quantity: 1})
	}
	if err := s.persistLocked(); err != nil {
		s.lines = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	s.notifier.Success(fmt.Sprintf("%s added to cart!", p.Name))
	return nil
}

// Decrease lowers the product's quantity by one, removing the line when
// the quantity would drop below 1. A product with no line is
// domain.ErrNotFound.
func (s *Service) Decrease(p domain.Product) error {
	s.mu.Lock()
	idx := -1
	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	prev := snapshot(s.lines)
	if s.lines[idx].Quantity == 1 {
		s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	} else {
		s.lines[idx].Quantity--
	}
	if err := s.persistLocked(); err != nil {
		s.lines = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	s.notifier.Info(fmt.Sprintf("Removed one %s from cart.", p.Name))
	return nil
}

// Remove drops the product's line regardless of quantity.
func (s *Service) Remove(p domain.Product) error {
	s.mu.Lock()
	prev := snapshot(s.lines)
	kept := s.lines[:0:0]
	for _, line := range s.lines {
		if line.ID != p.ID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	if err := s.persistLocked(); err != nil {
		s.lines = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	s.notifier.Error(fmt.Sprintf("%s removed from cart.", p.Name))
	return nil
}

// Clear empties the current identity's cart.
func (s *Service) Clear() error {
	s.mu.Lock()
	prev := snapshot(s.lines)
	s.lines = nil
	if err := s.persistLocked(); err != nil {
		s.lines = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	s.notifier.Warn("Cart has been cleared.")
	return nil
}

// Lines returns a copy of the current cart lines.
func (s *Service) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.lines)
}

// Total sums price times quantity over all lines, at the current
// (possibly discounted) price.
func (s *Service) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, line := range s.lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// ItemCount sums quantities across lines: total units, not line count.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func snapshot(lines []domain.CartLine) []domain.CartLine {
	if lines == nil {
		return nil
	}
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}
