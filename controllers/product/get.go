package productcontroller

import (
	"net/http"

	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
)

// GetProducts lists every product in display order.
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Products())
	}
}

func GetProductByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := s.Product(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
