package order

import "time"

type Status string

const (
	Pending Status = "pending"
	Success Status = "success"
)

type Order struct {
	ID        string    `json:"id" firestore:"-"`
	Items     []Item    `json:"items" firestore:"items"`
	Total     float64   `json:"total" firestore:"total"`
	Status    Status    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

type Item struct {
	ProductID string  `json:"productId" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
	Image     string  `json:"image" firestore:"image"`
}

type OrderNew struct {
	Items []ItemNew `json:"items" validate:"required,min=1,dive"`
	Total float64   `json:"total" validate:"gte=0"`
}

type ItemNew struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	Image     string  `json:"image"`
}
