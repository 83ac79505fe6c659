package order

import "fashionmela/internal/domain"

// Repository persists the global order list spanning all principals.
// Per-principal filtering happens in memory, never in storage.
type Repository interface {
	LoadAll() ([]domain.Order, error)
	SaveAll(orders []domain.Order) error
}
