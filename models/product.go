package models

type Specifications struct {
	Range        string `json:"range" yaml:"range"`
	Charging     string `json:"charging" yaml:"charging"`
	TopSpeed     string `json:"topSpeed" yaml:"topSpeed"`
	Acceleration string `json:"acceleration" yaml:"acceleration"`
}

// Product is a vehicle listed on the site. Price and all specifications are
// display strings, never parsed.
type Product struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Price          string         `json:"price" yaml:"price"`
	Image          string         `json:"image" yaml:"image"`
	Description    string         `json:"description" yaml:"description"`
	Specifications Specifications `json:"specifications" yaml:"specifications"`
	Features       []string       `json:"features" yaml:"features"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.Features = append([]string(nil), p.Features...)
	return p
}

type SpecificationsPatch struct {
	Range        *string `json:"range"`
	Charging     *string `json:"charging"`
	TopSpeed     *string `json:"topSpeed"`
	Acceleration *string `json:"acceleration"`
}

// ProductPatch carries a partial product update. Nil fields are left alone.
type ProductPatch struct {
	Name           *string              `json:"name"`
	Price          *string              `json:"price"`
	Image          *string              `json:"image"`
	Description    *string              `json:"description"`
	Specifications *SpecificationsPatch `json:"specifications"`
	Features       *[]string            `json:"features"`
}

// Apply merges the patch into p. Specifications are merged field by field.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if s := patch.Specifications; s != nil {
		if s.Range != nil {
			p.Specifications.Range = *s.Range
		}
		if s.Charging != nil {
			p.Specifications.Charging = *s.Charging
		}
		if s.TopSpeed != nil {
			p.Specifications.TopSpeed = *s.TopSpeed
		}
		if s.Acceleration != nil {
			p.Specifications.Acceleration = *s.Acceleration
		}
	}
	if patch.Features != nil {
		p.Features = append([]string(nil), (*patch.Features)...)
	}
}
