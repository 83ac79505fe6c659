package domain

// Payment methods accepted at checkout. Bank and easypaisa are UI-level
// simulations; no real settlement happens anywhere in this codebase.
const (
	PaymentCOD       = "cod"
	PaymentBank      = "bank"
	PaymentEasypaisa = "easypaisa"
)

// Payment states stamped at order creation.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

// Order statuses. Only StatusProcessing and StatusPaid are ever assigned
// here; the remaining values arrive from an external admin system that
// edits the durable order list directly.
const (
	StatusProcessing = "Processing"
	StatusPaid       = "Paid"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// ShippingInfo is the delivery address captured at checkout.
type ShippingInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
}

// OrderLine freezes a cart line at order-placement time. OriginalPrice and
// DiscountPercentage are copied in so the order stays correct even after
// catalog prices change.
type OrderLine struct {
	CartLine
	DiscountPercentage int `json:"discountPercentage"`
}

// Order is one placed order. Items and the money fields are immutable once
// created; only Status (and PaymentStatus) may change, and never through
// this codebase.
type Order struct {
	ID            string       `json:"id"`
	Date          string       `json:"date"`
	PrincipalRef  string       `json:"userId"`
	Shipping      ShippingInfo `json:"shippingInfo"`
	Items         []OrderLine  `json:"items"`
	Subtotal      int64        `json:"subtotal"`
	Discount      int64        `json:"discount"`
	Total         int64        `json:"total"`
	PaymentMethod string       `json:"paymentMethod"`
	PaymentStatus string       `json:"paymentStatus"`
	Status        string       `json:"status"`
}
