package cart

import "fashionmela/internal/domain"

// Repository persists every identity's cart under one durable entry, a
// mapping from identity key (email or the guest sentinel) to cart lines.
// Callers read the whole map, replace their own slice, and write the whole
// map back so sibling identities are never clobbered.
type Repository interface {
	LoadAll() (map[string][]domain.CartLine, error)
	SaveAll(carts map[string][]domain.CartLine) error
}
