package routes

import (
	adminController "github.com/amandhingra1/charzdev-ev/controllers/admin"
	orderControllers "github.com/amandhingra1/charzdev-ev/controllers/order"
	productcontroller "github.com/amandhingra1/charzdev-ev/controllers/product"
	reviewcontroller "github.com/amandhingra1/charzdev-ev/controllers/review"
	"github.com/amandhingra1/charzdev-ev/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers "/api/*". The admin half is gated by the same
// session cookie as the HTML panel.
func SetupAPIRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")
	{
		api.GET("/products", productcontroller.GetProducts(d.Store))
		api.GET("/products/:id", productcontroller.GetProductByID(d.Store))
		api.GET("/reviews", reviewcontroller.GetPublicReviews(d.Store))
		api.POST("/reviews", reviewcontroller.CreatePublicReview(d.Store))
		api.GET("/site-content", adminController.GetSiteContent(d.Store))
	}

	session := r.Group("/api/admin")
	{
		session.POST("/login", adminController.Login(d.Gate, d.Cookies))
		session.POST("/logout", adminController.Logout(d.Gate, d.Cookies))
		session.GET("/session", adminController.GetSession(d.Gate, d.Cookies))
	}

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.RequireAdmin(d.Gate, d.Cookies))
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(d.Store))
			productAdmin.POST("", productcontroller.CreateProduct(d.Store))
			productAdmin.PATCH("/:id", productcontroller.UpdateProduct(d.Store))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(d.Store))
		}

		// ─────────── Review Moderation ───────────
		reviewAdmin := adminGroup.Group("/reviews")
		{
			reviewAdmin.GET("", reviewcontroller.GetAllReviews(d.Store))
			reviewAdmin.POST("", reviewcontroller.CreateReview(d.Store))
			reviewAdmin.PATCH("/:id", reviewcontroller.UpdateReview(d.Store))
			reviewAdmin.POST("/:id/toggle", reviewcontroller.ToggleReview(d.Store))
			reviewAdmin.DELETE("/:id", reviewcontroller.DeleteReview(d.Store))
		}

		// ─────────── Orders ───────────
		orders := adminGroup.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrdersHandler(d.Store))
			orders.POST("", orderControllers.CreateOrderHandler(d.Store))
			orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(d.Store))
			orders.PATCH("/:orderID", orderControllers.UpdateOrderHandler(d.Store))
			orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.Store))
			orders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(d.Store))
		}

		adminGroup.PATCH("/site-content", adminController.UpdateSiteContent(d.Store))
		adminGroup.GET("/stats", adminController.GetStats(d.Store))
		adminGroup.GET("/export", adminController.ExportWorkbook(d.Store))

		// websocket endpoint for live dashboard updates
		adminGroup.GET("/events", d.Hub.Handler)
	}
}
