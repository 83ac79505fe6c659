package cart

import (
	"fashionmela/internal/domain"
	"fashionmela/internal/storage"
)

const cartsKey = "cart.byIdentity"

// StoreRepository keeps the per-identity cart map in the durable store.
type StoreRepository struct {
	store *storage.Store
}

// NewStore returns a Repository over store.
func NewStore(store *storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) LoadAll() (map[string][]domain.CartLine, error) {
	carts := map[string][]domain.CartLine{}
	if err := storage.ReadJSON(r.store, cartsKey, &carts); err != nil {
		return nil, err
	}
	if carts == nil {
		carts = map[string][]domain.CartLine{}
	}
	return carts, nil
}

func (r *StoreRepository) SaveAll(carts map[string][]domain.CartLine) error {
	return storage.WriteJSON(r.store, cartsKey, carts)
}
