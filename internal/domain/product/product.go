package product

import "fmt"

// Field length limits for product attributes.
const (
	MaxNameLength        = 200
	MaxDescriptionLength = 1000
)

// Category is a product category from the fixed storefront taxonomy.
type Category string

// The closed category enumeration.
const (
	Electronics Category = "Electronics"
	Clothing    Category = "Clothing"
	HomeKitchen Category = "Home & Kitchen"
	Books       Category = "Books"
	Sports      Category = "Sports"
	Beauty      Category = "Beauty"
	Toys        Category = "Toys"
)

// Categories returns the full category enumeration in display order.
func Categories() []Category {
	return []Category{Electronics, Clothing, HomeKitchen, Books, Sports, Beauty, Toys}
}

// IsValid reports whether c is part of the enumeration.
func (c Category) IsValid() bool {
	switch c {
	case Electronics, Clothing, HomeKitchen, Books, Sports, Beauty, Toys:
		return true
	}
	return false
}

// Product is the catalog product aggregate (immutable value object).
// Creation and updates happen through the seeding path only; the query
// service treats products as read-only.
type Product struct {
	id          string
	name        string
	category    Category
	price       float64
	rating      float64
	image       string
	description string
	inStock     bool
	createdAt   int64 // unix millis, store-assigned
}

// New validates and creates a Product. The identifier and creation timestamp
// are assigned by the store on upsert, so both may be empty here.
func New(
	id, name string, category Category, price, rating float64,
	image, description string, inStock bool,
) (Product, error) {
	if name == "" {
		return Product{}, fmt.Errorf("product name is required")
	}
	if len(name) > MaxNameLength {
		return Product{}, fmt.Errorf("product name too long (max %d)", MaxNameLength)
	}
	if !category.IsValid() {
		return Product{}, fmt.Errorf("unknown category %q", category)
	}
	if price < 0 {
		return Product{}, fmt.Errorf("price cannot be negative")
	}
	if rating < 0 || rating > 5 {
		return Product{}, fmt.Errorf("rating must be between 0 and 5")
	}
	if image == "" {
		return Product{}, fmt.Errorf("product image is required")
	}
	if len(description) > MaxDescriptionLength {
		return Product{}, fmt.Errorf("description too long (max %d)", MaxDescriptionLength)
	}

	return Product{
		id:          id,
		name:        name,
		category:    category,
		price:       price,
		rating:      rating,
		image:       image,
		description: description,
		inStock:     inStock,
	}, nil
}

// Reconstruct creates a Product without validation (storage hydration).
func Reconstruct(
	id, name string, category Category, price, rating float64,
	image, description string, inStock bool, createdAt int64,
) Product {
	return Product{
		id:          id,
		name:        name,
		category:    category,
		price:       price,
		rating:      rating,
		image:       image,
		description: description,
		inStock:     inStock,
		createdAt:   createdAt,
	}
}

// ID returns the store-assigned product identifier.
func (p *Product) ID() string { return p.id }

// Name returns the product display name.
func (p *Product) Name() string { return p.name }

// Category returns the product category.
func (p *Product) Category() Category { return p.category }

// Price returns the product price.
func (p *Product) Price() float64 { return p.price }

// Rating returns the product rating in [0,5].
func (p *Product) Rating() float64 { return p.rating }

// Image returns the product image reference.
func (p *Product) Image() string { return p.image }

// Description returns the optional product description.
func (p *Product) Description() string { return p.description }

// InStock reports whether the product is in stock.
func (p *Product) InStock() bool { return p.inStock }

// CreatedAt returns the store-assigned creation timestamp in unix millis.
func (p *Product) CreatedAt() int64 { return p.createdAt }

// WithID returns a copy with the given identifier set.
func (p *Product) WithID(id string) Product {
	c := *p
	c.id = id
	return c
}

// WithCreatedAt returns a copy with the given creation timestamp set.
func (p *Product) WithCreatedAt(ts int64) Product {
	c := *p
	c.createdAt = ts
	return c
}
