package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fashionmela/internal/domain"
	"fashionmela/internal/service/checkout"
)

func TestCheckoutHandler_Placed(t *testing.T) {
	deps := testDeps()
	deps.Checkout = &stubCheckout{result: checkout.Result{
		Order:   domain.Order{ID: "ORD-1756376400000", Status: domain.StatusProcessing},
		Outcome: checkout.OutcomePlaced,
	}}
	router := newTestRouter(t, deps)

	body := `{"name":"Ayesha","phone":"03001234567","address":"12 Mall Road","paymentMethod":"cod"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "ORD-1756376400000") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCheckoutHandler_NotSignedIn(t *testing.T) {
	deps := testDeps()
	deps.Checkout = &stubCheckout{err: checkout.ErrNotSignedIn}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCheckoutHandler_EmptyCart(t *testing.T) {
	deps := testDeps()
	deps.Checkout = &stubCheckout{err: checkout.ErrEmptyCart}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCheckoutHandler_PaymentDeclined(t *testing.T) {
	deps := testDeps()
	deps.Checkout = &stubCheckout{result: checkout.Result{
		Order:   domain.Order{ID: "ORD-1756376400001", Status: domain.StatusPaid},
		Outcome: checkout.OutcomeFailure,
	}}
	router := newTestRouter(t, deps)

	body := `{"name":"Ayesha","phone":"03001234567","address":"12 Mall Road","paymentMethod":"easypaisa","easypaisaNumber":"03001234567"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "ORD-1756376400001") {
		t.Fatalf("expected the recorded order in the body: %s", rec.Body.String())
	}
}

func TestCheckoutHandler_ValidationError(t *testing.T) {
	deps := testDeps()
	checkoutStub := &stubCheckout{err: checkout.ErrEmptyCart}
	deps.Checkout = checkoutStub
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
