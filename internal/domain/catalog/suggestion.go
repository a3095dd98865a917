package catalog

import "github.com/shophub-cloud/shophub/internal/domain/product"

// MaxSuggestions bounds the autosuggest result size.
const MaxSuggestions = 5

// Suggestion is the display-relevant projection of a product returned by
// the autosuggest path.
type Suggestion struct {
	id       string
	name     string
	category product.Category
	price    float64
	rating   float64
	image    string
	inStock  bool
}

// NewSuggestion projects a product onto its suggestion fields.
func NewSuggestion(p product.Product) Suggestion {
	return Suggestion{
		id:       p.ID(),
		name:     p.Name(),
		category: p.Category(),
		price:    p.Price(),
		rating:   p.Rating(),
		image:    p.Image(),
		inStock:  p.InStock(),
	}
}

// ID returns the product identifier.
func (s *Suggestion) ID() string { return s.id }

// Name returns the product name.
func (s *Suggestion) Name() string { return s.name }

// Category returns the product category.
func (s *Suggestion) Category() product.Category { return s.category }

// Price returns the product price.
func (s *Suggestion) Price() float64 { return s.price }

// Rating returns the product rating.
func (s *Suggestion) Rating() float64 { return s.rating }

// Image returns the product image reference.
func (s *Suggestion) Image() string { return s.image }

// InStock reports whether the product is in stock.
func (s *Suggestion) InStock() bool { return s.inStock }
