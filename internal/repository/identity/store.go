package identity

import (
	"encoding/json"

	"fashionmela/internal/domain"
	"fashionmela/internal/session"
	"fashionmela/internal/storage"
)

const (
	registryKey = "identity.registry"
	sessionKey  = "identity.session"
)

// StoreRepository keeps the registry and session record in the durable
// key-value store.
type StoreRepository struct {
	store *storage.Store
}

// NewStore returns a Repository over store.
func NewStore(store *storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) LoadRegistry() ([]domain.Principal, error) {
	var principals []domain.Principal
	if err := storage.ReadJSON(r.store, registryKey, &principals); err != nil {
		return nil, err
	}
	return principals, nil
}

func (r *StoreRepository) SaveRegistry(principals []domain.Principal) error {
	return storage.WriteJSON(r.store, registryKey, principals)
}

// LoadSession returns the persisted session view, or nil when signed out.
// A malformed record reads as signed out.
func (r *StoreRepository) LoadSession() (*session.View, error) {
	raw, ok, err := r.store.Get(sessionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var v session.View
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, nil
	}
	return &v, nil
}

func (r *StoreRepository) SaveSession(v session.View) error {
	return storage.WriteJSON(r.store, sessionKey, v)
}

func (r *StoreRepository) ClearSession() error {
	return r.store.Delete(sessionKey)
}
