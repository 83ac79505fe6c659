package lists

import (
	"fashionmela/internal/domain"
	"fashionmela/internal/storage"
)

const (
	wishlistKey = "wishlist.items"
	compareKey  = "compare.items"
)

// StoreRepository keeps both lists in the durable key-value store.
type StoreRepository struct {
	store *storage.Store
}

// NewStore returns a Repository over store.
func NewStore(store *storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) LoadWishlist() ([]domain.Product, error) {
	return load(r.store, wishlistKey)
}

func (r *StoreRepository) SaveWishlist(items []domain.Product) error {
	return storage.WriteJSON(r.store, wishlistKey, items)
}

func (r *StoreRepository) LoadCompare() ([]domain.Product, error) {
	return load(r.store, compareKey)
}

func (r *StoreRepository) SaveCompare(items []domain.Product) error {
	return storage.WriteJSON(r.store, compareKey, items)
}

func load(store *storage.Store, key string) ([]domain.Product, error) {
	var items []domain.Product
	if err := storage.ReadJSON(store, key, &items); err != nil {
		return nil, err
	}
	return items, nil
}
