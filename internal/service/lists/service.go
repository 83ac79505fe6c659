// Package lists maintains the wishlist and compare sets. Both are global
// (not namespaced by principal) and persist on every mutation. Toggling
// is the only mutation: presence of a product id flips add/remove.
package lists

import (
	"errors"
	"fmt"
	"sync"

	"fashionmela/internal/domain"
	"fashionmela/internal/notify"
	listsrepo "fashionmela/internal/repository/lists"
)

// compareCapacity bounds the compare set; additions past it are rejected,
// never evicted.
const compareCapacity = 4

// ErrCompareFull is returned when a toggle would grow the compare set
// past its capacity. The set is left untouched.
var ErrCompareFull = errors.New("compare list is full")

// Service is the wishlist/compare manager.
type Service struct {
	mu       sync.Mutex
	repo     listsrepo.Repository
	notifier notify.Notifier
	wishlist []domain.Product
	compare  []domain.Product
}

// New creates the manager and loads both persisted sets. Failed reads
// start from empty sets.
func New(repo listsrepo.Repository, notifier notify.Notifier) *Service {
	s := &Service{repo: repo, notifier: notifier}
	if items, err := repo.LoadWishlist(); err == nil {
		s.wishlist = items
	}
	if items, err := repo.LoadCompare(); err == nil {
		s.compare = items
	}
	return s
}

// ToggleWishlist removes the product when present, else appends it. The
// wishlist is unbounded.
func (s *Service) ToggleWishlist(p domain.Product) error {
	s.mu.Lock()
	prev := s.wishlist
	items, removed := toggle(s.wishlist, p)
	s.wishlist = items
	if err := s.repo.SaveWishlist(items); err != nil {
		s.wishlist = prev
		s.mu.Unlock()
		return fmt.Errorf("save wishlist: %w", err)
	}
	s.mu.Unlock()
	if removed {
		s.notifier.Info(fmt.Sprintf("%s removed from wishlist.", p.Name))
	} else {
		s.notifier.Success(fmt.Sprintf("%s added to wishlist!", p.Name))
	}
	return nil
}

// ToggleCompare removes the product when present. An addition is rejected
// with ErrCompareFull once the set holds four items.
func (s *Service) ToggleCompare(p domain.Product) error {
	s.mu.Lock()
	if !contains(s.compare, p.ID) && len(s.compare) >= compareCapacity {
		s.mu.Unlock()
		s.notifier.Warn(fmt.Sprintf("You can only compare up to %d items.", compareCapacity))
		return ErrCompareFull
	}
	prev := s.compare
	items, removed := toggle(s.compare, p)
	s.compare = items
	if err := s.repo.SaveCompare(items); err != nil {
		s.compare = prev
		s.mu.Unlock()
		return fmt.Errorf("save compare: %w", err)
	}
	s.mu.Unlock()
	if removed {
		s.notifier.Info(fmt.Sprintf("%s removed from compare list.", p.Name))
	} else {
		s.notifier.Success(fmt.Sprintf("%s added to compare list!", p.Name))
	}
	return nil
}

// ClearCompare empties the compare set.
func (s *Service) ClearCompare() error {
	s.mu.Lock()
	prev := s.compare
	s.compare = nil
	if err := s.repo.SaveCompare(nil); err != nil {
		s.compare = prev
		s.mu.Unlock()
		return fmt.Errorf("save compare: %w", err)
	}
	s.mu.Unlock()
	s.notifier.Warn("Compare list has been cleared.")
	return nil
}

// Wishlist returns a copy of the wishlist items.
func (s *Service) Wishlist() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.wishlist...)
}

// Compare returns a copy of the compare items.
func (s *Service) Compare() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.compare...)
}

// WishlistCount returns the number of wishlist items.
func (s *Service) WishlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.wishlist)
}

// CompareCount returns the number of compare items.
func (s *Service) CompareCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.compare)
}

func contains(items []domain.Product, id int) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// toggle returns the set with p removed when present, else appended. The
// input slice is not mutated.
func toggle(items []domain.Product, p domain.Product) ([]domain.Product, bool) {
	if contains(items, p.ID) {
		out := make([]domain.Product, 0, len(items)-1)
		for _, item := range items {
			if item.ID != p.ID {
				out = append(out, item)
			}
		}
		return out, true
	}
	out := make([]domain.Product, 0, len(items)+1)
	out = append(out, items...)
	return append(out, p), false
}
