package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fashionmela/internal/domain"
)

func listProductsHandler(cat catalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := cat.Products()

		category := strings.TrimSpace(c.Query("category"))
		gender := strings.TrimSpace(c.Query("gender"))
		if category != "" || gender != "" {
			filtered := make([]domain.Product, 0, len(products))
			for _, p := range products {
				if category != "" && !strings.EqualFold(p.Category, category) {
					continue
				}
				if gender != "" && !strings.EqualFold(p.Gender, gender) {
					continue
				}
				filtered = append(filtered, p)
			}
			products = filtered
		}

		c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
	}
}

func getProductHandler(cat catalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		p, err := cat.Get(id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

type offerPayload struct {
	domain.Product
	DiscountPercentage int `json:"discountPercentage"`
}

func listOffersHandler(cat catalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		offers := cat.SpecialOffers()
		payload := make([]offerPayload, 0, len(offers))
		for _, p := range offers {
			item := offerPayload{Product: p}
			if info, ok := cat.DiscountInfo(p.ID); ok {
				item.DiscountPercentage = info.Percentage
			}
			payload = append(payload, item)
		}
		c.JSON(http.StatusOK, gin.H{"offers": payload, "total": len(payload)})
	}
}
