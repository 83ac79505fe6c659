// Package order is the append-only (with delete) ledger of placed orders.
// The durable list spans all principals; the in-memory view holds only the
// current principal's orders and is recomputed on every identity change.
// Order status is never advanced here: Shipped/Delivered/Cancelled arrive
// from an external admin system that edits the durable list directly.
package order

import (
	"fmt"
	"sync"
	"time"

	"fashionmela/internal/domain"
	"fashionmela/internal/notify"
	orderrepo "fashionmela/internal/repository/order"
	"fashionmela/internal/session"
)

// Service is the order ledger for the current principal.
type Service struct {
	mu       sync.Mutex
	repo     orderrepo.Repository
	sess     *session.Session
	notifier notify.Notifier
	now      func() time.Time
	orders   []domain.Order
}

// New creates the ledger, computes the initial filtered view, and
// registers the refilter-on-identity-change handler.
func New(repo orderrepo.Repository, sess *session.Session, notifier notify.Notifier) *Service {
	s := &Service{repo: repo, sess: sess, notifier: notifier, now: time.Now}
	s.refilter()
	sess.OnChange(s.refilter)
	return s
}

// refilter recomputes the view as the subset of the durable list owned by
// the current principal. Signed out means an empty view.
func (s *Service) refilter() {
	cur := s.sess.Current()
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur == nil {
		s.orders = nil
		return
	}
	all, err := s.repo.LoadAll()
	if err != nil {
		s.orders = nil
		return
	}
	var mine []domain.Order
	for _, o := range all {
		if o.PrincipalRef == cur.Email {
			mine = append(mine, o)
		}
	}
	s.orders = mine
}

// Add stamps and records a new order: id "ORD-" plus the epoch
// milliseconds, the current date, the owning principal, and the initial
// status (Processing for cash on delivery, Paid otherwise). The stamped
// order is returned.
func (s *Service) Add(draft domain.Order) (domain.Order, error) {
	now := s.now().UTC()
	draft.ID = fmt.Sprintf("ORD-%d", now.UnixMilli())
	draft.Date = now.Format(time.RFC3339)
	draft.PrincipalRef = s.sess.IdentityKey()
	if draft.PaymentMethod == domain.PaymentCOD {
		draft.Status = domain.StatusProcessing
	} else {
		draft.Status = domain.StatusPaid
	}

	s.mu.Lock()
	all, err := s.repo.LoadAll()
	if err != nil {
		s.mu.Unlock()
		return domain.Order{}, fmt.Errorf("load orders: %w", err)
	}
	if err := s.repo.SaveAll(append(all, draft)); err != nil {
		s.mu.Unlock()
		return domain.Order{}, fmt.Errorf("save orders: %w", err)
	}
	s.orders = append(s.orders, draft)
	s.mu.Unlock()

	s.notifier.Success("Order placed successfully!")
	return draft, nil
}

// Delete removes the order from the view and the durable list. An id that
// is not in the current principal's view (including any other principal's
// order) is a harmless no-op; only storage failures are errors.
func (s *Service) Delete(orderID string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	all, err := s.repo.LoadAll()
	if err != nil {
		s.mu.Unlock()
		s.notifier.Error("Failed to delete order.")
		return fmt.Errorf("load orders: %w", err)
	}
	kept := all[:0:0]
	for _, o := range all {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	if err := s.repo.SaveAll(kept); err != nil {
		s.mu.Unlock()
		s.notifier.Error("Failed to delete order.")
		return fmt.Errorf("save orders: %w", err)
	}
	s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
	s.mu.Unlock()

	s.notifier.Success("Order deleted successfully.")
	return nil
}

// GetByID looks the order up within the current principal's view only.
func (s *Service) GetByID(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Orders returns a copy of the current principal's orders.
func (s *Service) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Order(nil), s.orders...)
}
