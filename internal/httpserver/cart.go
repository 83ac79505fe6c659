package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fashionmela/internal/domain"
)

type addCartItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

func cartPayload(cartMgr cartSvc, checkoutSvc checkoutSvc) gin.H {
	lines := cartMgr.Lines()
	return gin.H{
		"items":     lines,
		"total":     cartMgr.Total(),
		"itemCount": cartMgr.ItemCount(),
		"pricing":   checkoutSvc.Price(lines),
	}
}

func getCartHandler(cartMgr cartSvc, checkoutSvc checkoutSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartPayload(cartMgr, checkoutSvc))
	}
}

func addCartItemHandler(cartMgr cartSvc, checkoutSvc checkoutSvc, cat catalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
			return
		}
		p, err := cat.Get(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}
		if err := cartMgr.Add(*p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, cartPayload(cartMgr, checkoutSvc))
	}
}

// cartLine finds the product as it sits in the cart, so decrease and
// remove act on the stored line rather than the live catalog entry.
func cartLine(cartMgr cartSvc, id int) (domain.Product, bool) {
	for _, line := range cartMgr.Lines() {
		if line.ID == id {
			return line.Product, true
		}
	}
	return domain.Product{}, false
}

func decreaseCartItemHandler(cartMgr cartSvc, checkoutSvc checkoutSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		p, ok := cartLine(cartMgr, id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "item is not in the cart"})
			return
		}
		if err := cartMgr.Decrease(p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, cartPayload(cartMgr, checkoutSvc))
	}
}

func removeCartItemHandler(cartMgr cartSvc, checkoutSvc checkoutSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		p, ok := cartLine(cartMgr, id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "item is not in the cart"})
			return
		}
		if err := cartMgr.Remove(p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, cartPayload(cartMgr, checkoutSvc))
	}
}

func clearCartHandler(cartMgr cartSvc, checkoutSvc checkoutSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cartMgr.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, cartPayload(cartMgr, checkoutSvc))
	}
}
