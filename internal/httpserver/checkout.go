package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fashionmela/internal/service/checkout"
)

func checkoutHandler(checkoutSvc checkoutSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkout.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload"})
			return
		}
		result, err := checkoutSvc.PlaceOrder(in)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrNotSignedIn):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to place an order."})
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty."})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		if result.Outcome == checkout.OutcomeFailure {
			// The order is recorded but the simulated payment was declined;
			// the cart is kept for a retry.
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":   "Easypaisa payment failed. Please try again.",
				"order":   result.Order,
				"outcome": result.Outcome,
			})
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}
