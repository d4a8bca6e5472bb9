package sitecontroller

import (
	"net/http"
	"time"

	reviewcontroller "github.com/amandhingra1/charzdev-ev/controllers/review"
	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/amandhingra1/charzdev-ev/whatsapp"
	"github.com/gin-gonic/gin"
)

type productCard struct {
	models.Product
	BookingURL string
}

type homeView struct {
	Content         models.SiteContent
	Products        []productCard
	Reviews         []models.Review
	AverageRating   float64
	ReviewCount     int
	ReviewSubmitted bool
	BookNowURL      string
	ContactURL      string
	Year            int
}

// HomePage renders the public site. Only approved reviews are shown.
func HomePage(s *store.Store, contact whatsapp.Contact) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews := s.PublicReviews()
		view := homeView{
			Content:         s.SiteContent(),
			Reviews:         reviews,
			AverageRating:   s.AverageRating(),
			ReviewCount:     len(reviews),
			ReviewSubmitted: c.Query("review") == "submitted",
			BookNowURL:      contact.GeneralEnquiry(),
			ContactURL:      contact.Chat(),
			Year:            time.Now().Year(),
		}
		for _, p := range s.Products() {
			view.Products = append(view.Products, productCard{Product: p, BookingURL: contact.ProductEnquiry(p)})
		}
		c.HTML(http.StatusOK, "home.html", view)
	}
}

// SubmitReviewForm takes the public review form. The review waits for
// approval, so the visitor only gets a thank-you notice.
func SubmitReviewForm(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in reviewcontroller.ReviewInput
		if err := c.ShouldBind(&in); err != nil {
			c.Redirect(http.StatusSeeOther, "/#reviews")
			return
		}
		reviewcontroller.SubmitPublic(s, in)
		c.Redirect(http.StatusSeeOther, "/?review=submitted#reviews")
	}
}
