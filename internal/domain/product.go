package domain

// Product is a catalog entry. Prices are whole rupees. OriginalPrice is
// set only for special-offer products, where Price is the discounted value.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"originalPrice,omitempty"`
	Category      string  `json:"category"`
	Gender        string  `json:"gender"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Image         string  `json:"image"`
	Description   string  `json:"description,omitempty"`
}
