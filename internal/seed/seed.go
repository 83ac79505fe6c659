package seed

import (
	"fmt"
	"strings"

	"fashionmela/internal/domain"
	identityrepo "fashionmela/internal/repository/identity"
)

// Apply inserts demo accounts for manual testing. It is idempotent: an
// account that already exists is updated in place, keyed by email.
func Apply(repo identityrepo.Repository) error {
	accounts := []domain.Principal{
		{
			Email:    "demo@fashionmela.pk",
			Name:     "Demo Shopper",
			Password: "demo123",
			Role:     domain.RoleUser,
		},
		{
			Email:    "admin@fashionmela.pk",
			Name:     "Store Admin",
			Password: "admin123",
			Role:     domain.RoleAdmin,
		},
	}

	registry, err := repo.LoadRegistry()
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	for _, account := range accounts {
		registry = upsert(registry, account)
	}

	if err := repo.SaveRegistry(registry); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	return nil
}

func upsert(registry []domain.Principal, account domain.Principal) []domain.Principal {
	for i := range registry {
		if strings.EqualFold(registry[i].Email, account.Email) {
			registry[i] = account
			return registry
		}
	}
	return append(registry, account)
}
