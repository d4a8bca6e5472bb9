package routes

import (
	adminController "github.com/amandhingra1/charzdev-ev/controllers/admin"
	"github.com/amandhingra1/charzdev-ev/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers "/admin" and the dashboard's form actions.
// Everything except the page itself and login/logout needs a live session.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	r.GET("/admin", adminController.AdminPage(d.Store, d.Gate, d.Cookies))
	r.POST("/admin/login", adminController.LoginForm(d.Gate, d.Cookies))
	r.POST("/admin/logout", adminController.LogoutForm(d.Gate, d.Cookies))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdminPage(d.Gate, d.Cookies))
	{
		// ─────────── Products ───────────
		adminGroup.POST("/products", adminController.CreateProductForm(d.Store))
		adminGroup.POST("/products/:id", adminController.UpdateProductForm(d.Store))
		adminGroup.POST("/products/:id/delete", adminController.DeleteProductForm(d.Store))

		// ─────────── Reviews ───────────
		adminGroup.POST("/reviews", adminController.CreateReviewForm(d.Store))
		adminGroup.POST("/reviews/:id", adminController.UpdateReviewForm(d.Store))
		adminGroup.POST("/reviews/:id/toggle", adminController.ToggleReviewForm(d.Store))
		adminGroup.POST("/reviews/:id/delete", adminController.DeleteReviewForm(d.Store))

		// ─────────── Orders ───────────
		adminGroup.POST("/orders/:id/status", adminController.UpdateOrderStatusForm(d.Store))

		// ─────────── Site settings ───────────
		adminGroup.POST("/content", adminController.SiteContentForm(d.Store))
	}
}
