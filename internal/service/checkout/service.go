// Package checkout turns the current cart into a placed order. Bank and
// easypaisa payments are simulations; easypaisa runs a coin-flip gateway
// with no real settlement behind it.
package checkout

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"fashionmela/internal/catalog"
	"fashionmela/internal/domain"
	"fashionmela/internal/session"
)

var (
	// ErrNotSignedIn rejects guest checkout; orders need an owning principal.
	ErrNotSignedIn = errors.New("sign in to place an order")
	// ErrEmptyCart rejects checkout with nothing to buy.
	ErrEmptyCart = errors.New("cart is empty")
)

// easypaisa accounts are 11-digit mobile numbers starting with 03.
var easypaisaNumber = regexp.MustCompile(`^03\d{9}$`)

// Outcome reports how checkout ended.
type Outcome string

const (
	// OutcomePlaced is a recorded cod/bank order.
	OutcomePlaced Outcome = "placed"
	// OutcomeSuccess is a recorded easypaisa order whose simulated payment went through.
	OutcomeSuccess Outcome = "success"
	// OutcomeFailure is a recorded easypaisa order whose simulated payment was declined.
	// The cart is kept so the user can retry.
	OutcomeFailure Outcome = "failure"
)

// Input is the checkout form.
type Input struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	PaymentMethod   string `json:"paymentMethod"`
	EasypaisaNumber string `json:"easypaisaNumber"`
}

// Result is the stamped order plus the payment outcome.
type Result struct {
	Order   domain.Order `json:"order"`
	Outcome Outcome      `json:"outcome"`
}

// Pricing summarizes a cart at original prices: what the items would cost
// undiscounted, the total saving, and the unit count.
type Pricing struct {
	OriginalSubtotal int64 `json:"originalSubtotal"`
	DiscountAmount   int64 `json:"discountAmount"`
	ItemCount        int   `json:"itemCount"`
}

type cartService interface {
	Lines() []domain.CartLine
	Total() int64
	Clear() error
}

type orderService interface {
	Add(draft domain.Order) (domain.Order, error)
}

type offerProvider interface {
	DiscountInfo(id int) (catalog.DiscountInfo, bool)
}

// Service assembles and places orders.
type Service struct {
	cart   cartService
	orders orderService
	offers offerProvider
	sess   *session.Session
	roll   func() float64
}

// New creates the checkout service with the real payment coin flip.
func New(cartSvc cartService, orderSvc orderService, offers offerProvider, sess *session.Session) *Service {
	return &Service{cart: cartSvc, orders: orderSvc, offers: offers, sess: sess, roll: rand.Float64}
}

// Price summarizes the given cart lines. The subtotal is computed at
// original prices so the discount line can show the saving.
func (s *Service) Price(lines []domain.CartLine) Pricing {
	var p Pricing
	for _, line := range lines {
		original := line.Price
		if info, ok := s.offers.DiscountInfo(line.ID); ok {
			original = info.OriginalPrice
			p.DiscountAmount += (info.OriginalPrice - line.Price) * int64(line.Quantity)
		}
		p.OriginalSubtotal += original * int64(line.Quantity)
		p.ItemCount += line.Quantity
	}
	return p
}

// PlaceOrder validates the form, freezes the cart into order lines, and
// records the order. Cod and bank orders clear the cart immediately; an
// easypaisa order runs the simulated gateway and keeps the cart on a
// declined payment.
func (s *Service) PlaceOrder(in Input) (Result, error) {
	if s.sess.Current() == nil {
		return Result{}, ErrNotSignedIn
	}
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return Result{}, ErrEmptyCart
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.Address) == "" {
		return Result{}, errors.New("name, phone and address are required")
	}

	switch in.PaymentMethod {
	case domain.PaymentCOD, domain.PaymentBank:
	case domain.PaymentEasypaisa:
		if !easypaisaNumber.MatchString(strings.TrimSpace(in.EasypaisaNumber)) {
			return Result{}, errors.New("easypaisa number must be 11 digits starting with 03")
		}
	default:
		return Result{}, errors.New("unsupported payment method")
	}

	pricing := s.Price(lines)
	items := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		frozen := line
		frozen.OriginalPrice = line.Price
		pct := 0
		if info, ok := s.offers.DiscountInfo(line.ID); ok {
			frozen.OriginalPrice = info.OriginalPrice
			pct = info.Percentage
		}
		items = append(items, domain.OrderLine{CartLine: frozen, DiscountPercentage: pct})
	}

	paymentStatus := domain.PaymentPaid
	if in.PaymentMethod == domain.PaymentCOD {
		paymentStatus = domain.PaymentPending
	}
	draft := domain.Order{
		Shipping: domain.ShippingInfo{
			Name:    strings.TrimSpace(in.Name),
			Phone:   strings.TrimSpace(in.Phone),
			Email:   strings.TrimSpace(in.Email),
			Address: strings.TrimSpace(in.Address),
		},
		Items:         items,
		Subtotal:      pricing.OriginalSubtotal,
		Discount:      pricing.DiscountAmount,
		Total:         s.cart.Total(),
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: paymentStatus,
	}

	placed, err := s.orders.Add(draft)
	if err != nil {
		return Result{}, fmt.Errorf("record order: %w", err)
	}

	if in.PaymentMethod == domain.PaymentEasypaisa {
		if s.roll() > 0.5 {
			if err := s.cart.Clear(); err != nil {
				return Result{}, err
			}
			return Result{Order: placed, Outcome: OutcomeSuccess}, nil
		}
		return Result{Order: placed, Outcome: OutcomeFailure}, nil
	}

	if err := s.cart.Clear(); err != nil {
		return Result{}, err
	}
	return Result{Order: placed, Outcome: OutcomePlaced}, nil
}
