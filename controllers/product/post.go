package productcontroller

import (
	"net/http"

	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
)

// ProductInput is the body of POST /api/admin/products. Any id in the body
// is ignored; the store assigns one.
type ProductInput struct {
	Name           string                `json:"name"`
	Price          string                `json:"price"`
	Image          string                `json:"image"`
	Description    string                `json:"description"`
	Specifications models.Specifications `json:"specifications"`
	Features       []string              `json:"features"`
}

func (in ProductInput) Product() models.Product {
	return models.Product{
		Name:           in.Name,
		Price:          in.Price,
		Image:          in.Image,
		Description:    in.Description,
		Specifications: in.Specifications,
		Features:       in.Features,
	}
}

// CreateProduct adds a product as given. Fields are not validated.
func CreateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, s.AddProduct(input.Product()))
	}
}
