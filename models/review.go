package models

const (
	MinRating = 1
	MaxRating = 5

	// GeneralProductName labels reviews that are not about a listed product.
	GeneralProductName = "General"

	DateLayout = "2006-01-02"
)

type Review struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	Rating      int    `json:"rating" yaml:"rating"`
	Comment     string `json:"comment" yaml:"comment"`
	Date        string `json:"date" yaml:"date"`
	ProductID   string `json:"productId,omitempty" yaml:"productId,omitempty"`
	ProductName string `json:"productName,omitempty" yaml:"productName,omitempty"` // display copy, may dangle
	Approved    bool   `json:"approved" yaml:"approved"`
}

type ReviewPatch struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Rating      *int    `json:"rating"`
	Comment     *string `json:"comment"`
	Date        *string `json:"date"`
	ProductID   *string `json:"productId"`
	ProductName *string `json:"productName"`
	Approved    *bool   `json:"approved"`
}

func (patch ReviewPatch) Apply(r *Review) {
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Email != nil {
		r.Email = *patch.Email
	}
	if patch.Rating != nil {
		r.Rating = ClampRating(*patch.Rating)
	}
	if patch.Comment != nil {
		r.Comment = *patch.Comment
	}
	if patch.Date != nil {
		r.Date = *patch.Date
	}
	if patch.ProductID != nil {
		r.ProductID = *patch.ProductID
	}
	if patch.ProductName != nil {
		r.ProductName = *patch.ProductName
	}
	if patch.Approved != nil {
		r.Approved = *patch.Approved
	}
}

// ClampRating forces a rating into [MinRating, MaxRating].
func ClampRating(rating int) int {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}
