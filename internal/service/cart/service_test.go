package cart

import (
	"errors"
	"testing"

	"fashionmela/internal/domain"
	"fashionmela/internal/session"
)

type stubRepo struct {
	carts   map[string][]domain.CartLine
	loadErr error
	saveErr error
	saves   int
}

func newStubRepo() *stubRepo {
	return &stubRepo{carts: map[string][]domain.CartLine{}}
}

func (s *stubRepo) LoadAll() (map[string][]domain.CartLine, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := map[string][]domain.CartLine{}
	for k, v := range s.carts {
		out[k] = append([]domain.CartLine(nil), v...)
	}
	return out, nil
}

func (s *stubRepo) SaveAll(carts map[string][]domain.CartLine) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.carts = map[string][]domain.CartLine{}
	for k, v := range carts {
		s.carts[k] = append([]domain.CartLine(nil), v...)
	}
	return nil
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}

func (nopNotifier) Info(string) {}

func (nopNotifier) Warn(string) {}

func (nopNotifier) Error(string) {}

var (
	tee   = domain.Product{ID: 1, Name: "Classic White Tee", Price: 500}
	kurta = domain.Product{ID: 2, Name: "Embroidered Lawn Kurta", Price: 1000, OriginalPrice: 1500}
)

func checkInvariant(t *testing.T, lines []domain.CartLine) {
	t.Helper()
	seen := map[int]bool{}
	for _, line := range lines {
		if line.Quantity < 1 {
			t.Fatalf("line %d has quantity %d", line.ID, line.Quantity)
		}
		if seen[line.ID] {
			t.Fatalf("duplicate line for product %d", line.ID)
		}
		seen[line.ID] = true
	}
}

func TestAddMergesByProductID(t *testing.T) {
	svc := New(newStubRepo(), session.New(), nopNotifier{})

	for i := 0; i < 3; i++ {
		if err := svc.Add(tee); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := svc.Add(kurta); err != nil {
		t.Fatalf("add: %v", err)
	}

	lines := svc.Lines()
	checkInvariant(t, lines)
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if lines[0].ID != 1 || lines[0].Quantity != 3 {
		t.Fatalf("tee line = %+v", lines[0])
	}
	if lines[1].ID != 2 || lines[1].Quantity != 1 {
		t.Fatalf("kurta line = %+v", lines[1])
	}
}

func TestDecreaseRemovesAtQuantityOne(t *testing.T) {
	svc := New(newStubRepo(), session.New(), nopNotifier{})
	if err := svc.Add(tee); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(tee); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.Decrease(tee); err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if lines := svc.Lines(); len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("after first decrease: %+v", lines)
	}

	if err := svc.Decrease(tee); err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if lines := svc.Lines(); len(lines) != 0 {
		t.Fatalf("line should be removed, got %+v", lines)
	}

	if err := svc.Decrease(tee); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("decrease on missing line: %v", err)
	}
}

func TestRemoveDropsLineRegardlessOfQuantity(t *testing.T) {
	svc := New(newStubRepo(), session.New(), nopNotifier{})
	for i := 0; i < 5; i++ {
		if err := svc.Add(tee); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := svc.Remove(tee); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if lines := svc.Lines(); len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestTotalAndItemCountUseCurrentPrice(t *testing.T) {
	svc := New(newStubRepo(), session.New(), nopNotifier{})
	// 2 x 500 + 1 x 1000 (discounted from 1500) = 2000
	if err := svc.Add(tee); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(tee); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(kurta); err != nil {
		t.Fatalf("add: %v", err)
	}

	if got := svc.Total(); got != 2000 {
		t.Fatalf("total = %d, want 2000", got)
	}
	if got := svc.ItemCount(); got != 3 {
		t.Fatalf("item count = %d, want 3", got)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	repo := newStubRepo()
	sess := session.New()
	svc := New(repo, sess, nopNotifier{})
	if err := svc.Add(tee); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if svc.ItemCount() != 0 {
		t.Fatal("cart not empty after clear")
	}
	if got := repo.carts[domain.GuestKey]; len(got) != 0 {
		t.Fatalf("durable guest cart not cleared: %+v", got)
	}
}

func TestIdentitySwitchIsolatesCarts(t *testing.T) {
	repo := newStubRepo()
	sess := session.New()
	svc := New(repo, sess, nopNotifier{})

	// A signs in and adds a product.
	sess.Set(session.View{Email: "a@example.com", Name: "A", Role: domain.RoleUser})
	if err := svc.Add(tee); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A signs out; the guest cart is empty.
	sess.Clear()
	if got := svc.ItemCount(); got != 0 {
		t.Fatalf("guest cart should be empty, has %d items", got)
	}

	// B signs in; B's cart must not contain A's product.
	sess.Set(session.View{Email: "b@example.com", Name: "B", Role: domain.RoleUser})
	if lines := svc.Lines(); len(lines) != 0 {
		t.Fatalf("b sees a's lines: %+v", lines)
	}
	if err := svc.Add(kurta); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A signs back in and still has the original cart.
	sess.Set(session.View{Email: "a@example.com", Name: "A", Role: domain.RoleUser})
	lines := svc.Lines()
	if len(lines) != 1 || lines[0].ID != tee.ID {
		t.Fatalf("a's cart corrupted: %+v", lines)
	}

	// Durable map holds both carts side by side.
	if len(repo.carts["a@example.com"]) != 1 || len(repo.carts["b@example.com"]) != 1 {
		t.Fatalf("durable map clobbered: %+v", repo.carts)
	}
}

func TestSaveFailureRollsBackMemory(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo, session.New(), nopNotifier{})
	if err := svc.Add(tee); err != nil {
		t.Fatalf("add: %v", err)
	}

	repo.saveErr = errors.New("disk full")
	if err := svc.Add(kurta); err == nil {
		t.Fatal("expected save error")
	}

	// Memory still matches the last durable state.
	lines := svc.Lines()
	if len(lines) != 1 || lines[0].ID != tee.ID || lines[0].Quantity != 1 {
		t.Fatalf("in-memory state diverged: %+v", lines)
	}
}
