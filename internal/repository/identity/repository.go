package identity

import (
	"fashionmela/internal/domain"
	"fashionmela/internal/session"
)

// Repository persists the account registry and the current-session record.
// The two are distinct durable entities and are never written together.
type Repository interface {
	LoadRegistry() ([]domain.Principal, error)
	SaveRegistry(principals []domain.Principal) error
	LoadSession() (*session.View, error)
	SaveSession(v session.View) error
	ClearSession() error
}
