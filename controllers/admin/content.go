package adminController

import (
	"net/http"

	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
)

// GetSiteContent returns the hero, about-us and footer record.
func GetSiteContent(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.SiteContent())
	}
}

// UpdateSiteContent merges a partial record. Sending only
// {"footerContent":{"phone":"..."}} leaves the rest of the footer alone.
func UpdateSiteContent(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.SiteContentPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, s.UpdateSiteContent(patch))
	}
}
