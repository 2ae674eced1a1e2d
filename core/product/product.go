package product

import "time"

type Product struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Price       float64   `json:"price" firestore:"price"`
	Images      []string  `json:"images" firestore:"images"`
	Category    string    `json:"category" firestore:"category"`
	Rating      float64   `json:"rating" firestore:"rating"`
	StockCount  int       `json:"stockCount" firestore:"stockCount"`
	InStock     bool      `json:"inStock" firestore:"inStock"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type ProductNew struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Stock       int      `json:"stock" validate:"gte=0"`
}

type ProductUp struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Images      *[]string `json:"images"`
	Category    *string   `json:"category"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
}

// Normalize fills the derived and defaulted fields so every read path
// returns the same shape: images always an array, stock flag consistent
// with the count, category never empty.
func Normalize(p Product) Product {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Category == "" {
		p.Category = "Other"
	}
	p.InStock = p.StockCount > 0
	return p
}
