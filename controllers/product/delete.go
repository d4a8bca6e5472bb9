package productcontroller

import (
	"errors"
	"net/http"

	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
)

// DeleteProduct removes the product. Reviews and orders that mention it are
// left as they are.
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteProduct(c.Param("id")); errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
