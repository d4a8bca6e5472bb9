package adminController

import (
	"net/http"
	"strconv"
	"strings"

	orderControllers "github.com/amandhingra1/charzdev-ev/controllers/order"
	reviewcontroller "github.com/amandhingra1/charzdev-ev/controllers/review"
	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
)

// Form actions behind the dashboard. They all redirect back to their tab;
// an unknown id is a silent no-op, like everywhere else in the panel.

func backTo(c *gin.Context, tab string) {
	c.Redirect(http.StatusSeeOther, "/admin?tab="+tab)
}

// splitLines turns a textarea into a list, one trimmed entry per line.
func splitLines(v string) []string {
	var out []string
	for _, line := range strings.Split(v, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func productFromForm(c *gin.Context) models.Product {
	return models.Product{
		Name:        c.PostForm("name"),
		Price:       c.PostForm("price"),
		Image:       c.PostForm("image"),
		Description: c.PostForm("description"),
		Specifications: models.Specifications{
			Range:        c.PostForm("range"),
			Charging:     c.PostForm("charging"),
			TopSpeed:     c.PostForm("top_speed"),
			Acceleration: c.PostForm("acceleration"),
		},
		Features: splitLines(c.PostForm("features")),
	}
}

// patchAll turns a fully filled product form into a patch that sets every
// field, which is what the edit form means.
func patchAll(p models.Product) models.ProductPatch {
	return models.ProductPatch{
		Name:        &p.Name,
		Price:       &p.Price,
		Image:       &p.Image,
		Description: &p.Description,
		Specifications: &models.SpecificationsPatch{
			Range:        &p.Specifications.Range,
			Charging:     &p.Specifications.Charging,
			TopSpeed:     &p.Specifications.TopSpeed,
			Acceleration: &p.Specifications.Acceleration,
		},
		Features: &p.Features,
	}
}

func CreateProductForm(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.AddProduct(productFromForm(c))
		backTo(c, "products")
	}
}

func UpdateProductForm(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, _ = s.UpdateProduct(c.Param("id"), patchAll(productFromForm(c)))
		backTo(c, "products")
	}
}

func DeleteProductForm(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = s.DeleteProduct(c.Param("id"))
		backTo(c, "products")
	}
}

func reviewFromForm(c *gin.Context) reviewcontroller.ReviewInput {
	rating, _ := strconv.Atoi(c.PostForm("rating"))
	approved := c.PostForm("approved") != ""
	return reviewcontroller.ReviewInput{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Rating:      rating,
		Comment:     c.PostForm("comment"),
		ProductName: c.PostForm("product_name"),
		Approved:    &approved,
	}
}

func CreateReviewForm(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewcontroller.CreateByAdmin(s, reviewFromForm(c))
		backTo(c, "reviews")
	}
}

func UpdateReviewForm(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := reviewFromForm(c)
		patch := models.ReviewPatch{
			Name:        &in.Name,
			Email:       &in.Email,
			Comment:     &in.Comment,
			ProductName: &in.ProductName,
			Approved:    in.Approved,
		}
		if in.Rating != 0 {
			patch.Rating = &in.Rating
		}
		_, _ = s.UpdateReview(c.Param("id"), patch)
		backTo(c, "reviews")
	}
}

func ToggleReviewForm(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, _ = s.ToggleReviewApproval(c.Param("id"))
		backTo(c, "reviews")
	}
}

func DeleteReviewForm(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = s.DeleteReview(c.Param("id"))
		backTo(c, "reviews")
	}
}

// UpdateOrderStatusForm ignores statuses outside the enum.
func UpdateOrderStatusForm(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, _ = orderControllers.UpdateStatus(s, c.Param("id"), c.PostForm("status"))
		backTo(c, "orders")
	}
}

// SiteContentForm saves the settings tab. Blank inputs keep the stored
// value.
func SiteContentForm(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		field := func(name string) *string {
			v := strings.TrimSpace(c.PostForm(name))
			return &v
		}
		links := splitLines(c.PostForm("quick_links"))

		s.UpdateSiteContent(models.SiteContentPatch{
			HeroImage:    field("hero_image"),
			HeroTitle:    field("hero_title"),
			HeroSubtitle: field("hero_subtitle"),
			AboutUs:      field("about_us"),
			FooterContent: &models.FooterContentPatch{
				Address:    field("address"),
				Phone:      field("phone"),
				Email:      field("email"),
				QuickLinks: &links,
			},
		})
		backTo(c, "settings")
	}
}
