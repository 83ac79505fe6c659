package domain

// CartLine is one cart row: a snapshot of the product's display fields
// plus a quantity. A cart holds at most one line per product id and a
// line's quantity never drops below 1; a decrement past 1 removes it.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// GuestKey is the identity key used for cart data when nobody is signed in.
const GuestKey = "guest"
