package productcontroller

import (
	"errors"
	"net/http"

	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
)

// UpdateProduct merges the fields present in the body into the product.
// Omitted fields, including individual specifications, keep their values.
func UpdateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.ProductPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product, err := s.UpdateProduct(c.Param("id"), patch)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
