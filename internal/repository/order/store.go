package order

import (
	"fashionmela/internal/domain"
	"fashionmela/internal/storage"
)

const ordersKey = "orders.all"

// StoreRepository keeps the global order list in the durable store.
type StoreRepository struct {
	store *storage.Store
}

// NewStore returns a Repository over store.
func NewStore(store *storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) LoadAll() ([]domain.Order, error) {
	var orders []domain.Order
	if err := storage.ReadJSON(r.store, ordersKey, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *StoreRepository) SaveAll(orders []domain.Order) error {
	return storage.WriteJSON(r.store, ordersKey, orders)
}
