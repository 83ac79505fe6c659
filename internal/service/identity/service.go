// Package identity implements registration, login and logout against the
// locally persisted account registry.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"fashionmela/internal/domain"
	"fashionmela/internal/notify"
	identityrepo "fashionmela/internal/repository/identity"
	"fashionmela/internal/session"
)

// ErrInvalidCredentials is returned when the password does not match a
// known account. A missing account is domain.ErrNotFound instead; the two
// are deliberately distinct user-visible failures.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service is the identity store. It owns the registry and the persisted
// session record; the in-process session object is shared with the other
// managers.
type Service struct {
	repo     identityrepo.Repository
	sess     *session.Session
	notifier notify.Notifier
}

// New creates the identity Service.
func New(repo identityrepo.Repository, sess *session.Session, notifier notify.Notifier) *Service {
	return &Service{repo: repo, sess: sess, notifier: notifier}
}

// Register appends a new account with the user role. It fails with
// domain.ErrAlreadyExists when the email is taken. Passwords are stored
// verbatim: credentials here are a demo mechanism, not a security model.
func (s *Service) Register(name, email, password string) error {
	email = normalizeEmail(email)
	if email == "" {
		return errors.New("email required")
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("name required")
	}
	if password == "" {
		return errors.New("password required")
	}

	principals, err := s.repo.LoadRegistry()
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}
	for _, p := range principals {
		if p.Email == email {
			return domain.ErrAlreadyExists
		}
	}

	principals = append(principals, domain.Principal{
		Email:    email,
		Name:     strings.TrimSpace(name),
		Password: password,
		Role:     domain.RoleUser,
	})
	if err := s.repo.SaveRegistry(principals); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	return nil
}

// Login validates credentials and signs the session in. The persisted
// session record is written before the in-memory state flips, so a storage
// failure leaves both sides signed out.
func (s *Service) Login(email, password string) (session.View, error) {
	email = normalizeEmail(email)
	principals, err := s.repo.LoadRegistry()
	if err != nil {
		return session.View{}, fmt.Errorf("load registry: %w", err)
	}

	var found *domain.Principal
	for i := range principals {
		if principals[i].Email == email {
			found = &principals[i]
			break
		}
	}
	if found == nil {
		return session.View{}, domain.ErrNotFound
	}
	if found.Password != password {
		return session.View{}, ErrInvalidCredentials
	}

	view := session.View{Email: found.Email, Name: found.Name, Role: found.Role}
	if err := s.repo.SaveSession(view); err != nil {
		return session.View{}, fmt.Errorf("save session: %w", err)
	}
	s.sess.Set(view)
	s.notifier.Success(fmt.Sprintf("Welcome back, %s!", view.Name))
	return view, nil
}

// Logout clears the session record and the in-process session. A storage
// failure aborts before the in-memory state changes.
func (s *Service) Logout() error {
	if err := s.repo.ClearSession(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.sess.Clear()
	s.notifier.Info("You have been logged out.")
	return nil
}

// Restore signs the session back in from the persisted record, if any.
// Called once at startup, after the dependent managers have registered
// their identity-change handlers.
func (s *Service) Restore() error {
	view, err := s.repo.LoadSession()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if view != nil {
		s.sess.Set(*view)
	}
	return nil
}

// IsAdmin reports whether the signed-in principal has the admin role.
func (s *Service) IsAdmin() bool {
	cur := s.sess.Current()
	return cur != nil && cur.Role == domain.RoleAdmin
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
