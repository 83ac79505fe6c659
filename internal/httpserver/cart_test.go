package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fashionmela/internal/domain"
)

func TestAddCartItem(t *testing.T) {
	deps := testDeps()
	cartStub := &stubCart{}
	deps.Cart = cartStub
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(cartStub.added) != 1 || cartStub.added[0].ID != 1 {
		t.Fatalf("expected product 1 added, got %+v", cartStub.added)
	}
}

func TestAddCartItem_UnknownProduct(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":9999}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDecreaseCartItem_NotInCart(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodPost, "/cart/items/1/decrease", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDecreaseCartItem_UsesStoredLine(t *testing.T) {
	deps := testDeps()
	cartStub := &stubCart{lines: []domain.CartLine{
		{Product: domain.Product{ID: 2, Name: "Denim Jacket", Price: 1000}, Quantity: 2},
	}}
	deps.Cart = cartStub
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/cart/items/2/decrease", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(cartStub.decreased) != 1 || cartStub.decreased[0].ID != 2 {
		t.Fatalf("expected product 2 decreased, got %+v", cartStub.decreased)
	}
}

func TestRemoveCartItem(t *testing.T) {
	deps := testDeps()
	cartStub := &stubCart{lines: []domain.CartLine{
		{Product: domain.Product{ID: 3, Name: "Silk Scarf", Price: 400}, Quantity: 1},
	}}
	deps.Cart = cartStub
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/3", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(cartStub.removed) != 1 || cartStub.removed[0].ID != 3 {
		t.Fatalf("expected product 3 removed, got %+v", cartStub.removed)
	}
}

func TestGetCart_Payload(t *testing.T) {
	deps := testDeps()
	deps.Cart = &stubCart{lines: []domain.CartLine{
		{Product: domain.Product{ID: 1, Name: "Classic Tee", Price: 500}, Quantity: 2},
		{Product: domain.Product{ID: 3, Name: "Silk Scarf", Price: 400}, Quantity: 1},
	}}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"total":1400`) {
		t.Fatalf("expected total 1400 in body: %s", body)
	}
	if !strings.Contains(body, `"itemCount":3`) {
		t.Fatalf("expected itemCount 3 in body: %s", body)
	}
}

func TestClearCart(t *testing.T) {
	deps := testDeps()
	cartStub := &stubCart{}
	deps.Cart = cartStub
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !cartStub.cleared {
		t.Fatalf("expected cart cleared")
	}
}
