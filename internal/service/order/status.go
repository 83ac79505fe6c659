package order

import "fashionmela/internal/domain"

// StatusDetails is the display mapping for an order status. It is pure
// presentation data, never stored.
type StatusDetails struct {
	Icon        string `json:"icon"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

// DetailsFor maps a status to its display details. Unknown statuses fall
// back to a generic "Received" entry at 10 percent.
func DetailsFor(status string) StatusDetails {
	switch status {
	case domain.StatusProcessing:
		return StatusDetails{Icon: "box", Label: "Processing", Description: "Your order is being prepared", Progress: 25}
	case domain.StatusPaid:
		return StatusDetails{Icon: "money", Label: "Payment Received", Description: "Your payment was successful", Progress: 50}
	case domain.StatusShipped:
		return StatusDetails{Icon: "truck", Label: "Shipped", Description: "Your order is on the way", Progress: 75}
	case domain.StatusDelivered:
		return StatusDetails{Icon: "check", Label: "Delivered", Description: "Your order has arrived", Progress: 100}
	case domain.StatusCancelled:
		return StatusDetails{Icon: "cross", Label: "Cancelled", Description: "Order was cancelled", Progress: 0}
	default:
		return StatusDetails{Icon: "warehouse", Label: "Received", Description: "Your order has been received", Progress: 10}
	}
}
