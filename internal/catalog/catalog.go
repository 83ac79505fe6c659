// Package catalog exposes the static product list and the special-offer
// set. The storefront treats it as a read-only collaborator; nothing here
// is persisted or mutated.
package catalog

import (
	"math"

	"fashionmela/internal/domain"
)

// DiscountInfo describes the saving on a special-offer product.
type DiscountInfo struct {
	OriginalPrice int64 `json:"originalPrice"`
	Percentage    int   `json:"percentage"`
}

// Provider serves catalog lookups over the built-in product data.
type Provider struct {
	products []domain.Product
	offers   map[int]struct{}
}

// New returns a Provider over the demo catalog.
func New() *Provider {
	offers := make(map[int]struct{}, len(specialOfferIDs))
	for _, id := range specialOfferIDs {
		offers[id] = struct{}{}
	}
	return &Provider{products: products, offers: offers}
}

// Products returns every catalog entry.
func (p *Provider) Products() []domain.Product {
	out := make([]domain.Product, len(p.products))
	copy(out, p.products)
	return out
}

// Get returns the product with the given id or domain.ErrNotFound.
func (p *Provider) Get(id int) (*domain.Product, error) {
	for i := range p.products {
		if p.products[i].ID == id {
			prod := p.products[i]
			return &prod, nil
		}
	}
	return nil, domain.ErrNotFound
}

// SpecialOffers returns the products currently on offer.
func (p *Provider) SpecialOffers() []domain.Product {
	out := make([]domain.Product, 0, len(p.offers))
	for _, prod := range p.products {
		if _, ok := p.offers[prod.ID]; ok {
			out = append(out, prod)
		}
	}
	return out
}

// IsSpecialOffer reports whether the product id is on offer.
func (p *Provider) IsSpecialOffer(id int) bool {
	_, ok := p.offers[id]
	return ok
}

// DiscountInfo returns the original price and rounded discount percentage
// for an offer product. The second return is false when the product is not
// on offer or has no higher original price.
func (p *Provider) DiscountInfo(id int) (DiscountInfo, bool) {
	if !p.IsSpecialOffer(id) {
		return DiscountInfo{}, false
	}
	prod, err := p.Get(id)
	if err != nil || prod.OriginalPrice <= prod.Price {
		return DiscountInfo{}, false
	}
	pct := int(math.Round(float64(prod.OriginalPrice-prod.Price) / float64(prod.OriginalPrice) * 100))
	return DiscountInfo{OriginalPrice: prod.OriginalPrice, Percentage: pct}, true
}
