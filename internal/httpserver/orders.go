package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fashionmela/internal/domain"
	ordersvc "fashionmela/internal/service/order"
)

type orderPayload struct {
	domain.Order
	StatusDetails ordersvc.StatusDetails `json:"statusDetails"`
}

func listOrdersHandler(orders orderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := orders.Orders()
		payload := make([]orderPayload, 0, len(all))
		for _, o := range all {
			payload = append(payload, orderPayload{Order: o, StatusDetails: ordersvc.DetailsFor(o.Status)})
		}
		c.JSON(http.StatusOK, gin.H{"orders": payload, "total": len(payload)})
	}
}

func getOrderHandler(orders orderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := orders.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
			return
		}
		c.JSON(http.StatusOK, orderPayload{Order: *o, StatusDetails: ordersvc.DetailsFor(o.Status)})
	}
}

func deleteOrderHandler(orders orderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := orders.Delete(c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted."})
	}
}
