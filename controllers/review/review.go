package reviewcontroller

import (
	"errors"
	"net/http"

	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
)

// ReviewInput is shared by the public form, the public JSON endpoint and the
// admin create endpoint.
type ReviewInput struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Rating      int    `json:"rating" form:"rating"`
	Comment     string `json:"comment" form:"comment"`
	ProductID   string `json:"productId" form:"product_id"`
	ProductName string `json:"productName" form:"product_name"`
	Approved    *bool  `json:"approved" form:"approved"`
}

// rating treats an unset (zero) rating as the form's default of five stars.
// Anything else is clamped by the store.
func (in ReviewInput) rating() int {
	if in.Rating == 0 {
		return models.MaxRating
	}
	return in.Rating
}

// SubmitPublic stores a visitor's review. It is hidden until an admin
// approves it, whatever the input says. The product name is copied from the
// selected product, or "General" when none matches.
func SubmitPublic(s *store.Store, in ReviewInput) models.Review {
	productName := models.GeneralProductName
	if p, ok := s.Product(in.ProductID); ok {
		productName = p.Name
	}
	return s.AddReview(models.Review{
		Name:        in.Name,
		Email:       in.Email,
		Rating:      in.rating(),
		Comment:     in.Comment,
		ProductID:   in.ProductID,
		ProductName: productName,
		Approved:    false,
	})
}

// CreateByAdmin stores a review entered from the admin panel. These are
// approved unless the input says otherwise.
func CreateByAdmin(s *store.Store, in ReviewInput) models.Review {
	approved := true
	if in.Approved != nil {
		approved = *in.Approved
	}
	return s.AddReview(models.Review{
		Name:        in.Name,
		Email:       in.Email,
		Rating:      in.rating(),
		Comment:     in.Comment,
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Approved:    approved,
	})
}

// GetPublicReviews lists approved reviews only.
func GetPublicReviews(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"reviews":       s.PublicReviews(),
			"averageRating": s.AverageRating(),
		})
	}
}

// CreatePublicReview handles POST /api/reviews.
func CreatePublicReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		review := SubmitPublic(s, input)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Thank you for your review! It will be published after admin approval.",
			"review":  review,
		})
	}
}

// GetAllReviews lists every review, approved or not.
func GetAllReviews(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Reviews())
	}
}

func CreateReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, CreateByAdmin(s, input))
	}
}

func UpdateReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.ReviewPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		review, err := s.UpdateReview(c.Param("id"), patch)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// ToggleReview flips the review's approval; calling it twice undoes it.
func ToggleReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		review, err := s.ToggleReviewApproval(c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

func DeleteReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteReview(c.Param("id")); errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
	}
}
