package routes

import (
	sitecontroller "github.com/amandhingra1/charzdev-ev/controllers/site"
	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes registers the visitor-facing pages.
func SetupPublicRoutes(r *gin.Engine, d Deps) {
	r.GET("/", sitecontroller.HomePage(d.Store, d.Contact))
	r.POST("/reviews", sitecontroller.SubmitReviewForm(d.Store))
}
