package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fashionmela/internal/domain"
	listssvc "fashionmela/internal/service/lists"
)

type toggleRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

func getWishlistHandler(lists listsSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": lists.Wishlist(), "count": lists.WishlistCount()})
	}
}

func toggleWishlistHandler(lists listsSvc, cat catalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req toggleRequest
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
		if err := lists.ToggleWishlist(*p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": lists.Wishlist(), "count": lists.WishlistCount()})
	}
}

func getCompareHandler(lists listsSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": lists.Compare(), "count": lists.CompareCount()})
	}
}

func toggleCompareHandler(lists listsSvc, cat catalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req toggleRequest
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
		if err := lists.ToggleCompare(*p); err != nil {
			if errors.Is(err, listssvc.ErrCompareFull) {
				c.JSON(http.StatusConflict, gin.H{"error": "You can compare up to 4 products at a time."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update comparison list"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": lists.Compare(), "count": lists.CompareCount()})
	}
}

func clearCompareHandler(lists listsSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := lists.ClearCompare(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear comparison list"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": lists.Compare(), "count": lists.CompareCount()})
	}
}
