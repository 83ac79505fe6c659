package lists

import "fashionmela/internal/domain"

// Repository persists the wishlist and compare sets. The two live under
// separate durable keys and are global, not namespaced by principal.
type Repository interface {
	LoadWishlist() ([]domain.Product, error)
	SaveWishlist(items []domain.Product) error
	LoadCompare() ([]domain.Product, error)
	SaveCompare(items []domain.Product) error
}
