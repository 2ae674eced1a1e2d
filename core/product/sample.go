package product

// SampleProducts is the static dataset served while the document store
// is still empty, so a fresh deployment renders a working storefront.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Premium Wireless Headphones",
			Description: "Experience crystal-clear audio with noise cancellation.",
			Price:       299.99,
			Images: []string{
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=400",
				"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=500&h=400",
			},
			Category:   "electronics",
			Rating:     4.8,
			StockCount: 45,
			InStock:    true,
		},
		{
			ID:          "2",
			Name:        "Smart Fitness Watch",
			Description: "Track fitness with HR monitor, GPS, and 7-day battery life.",
			Price:       249.99,
			Images: []string{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=400",
				"https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?w=500&h=400",
			},
			Category:   "electronics",
			Rating:     4.6,
			StockCount: 23,
			InStock:    true,
		},
		{
			ID:          "3",
			Name:        "Luxury Leather Jacket",
			Description: "Handcrafted from premium genuine leather for style & durability.",
			Price:       399.99,
			Images: []string{
				"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500&h=400",
				"https://images.unsplash.com/photo-1594822095675-42c6ab5cea3c?w=500&h=400",
			},
			Category:   "fashion",
			Rating:     4.9,
			StockCount: 12,
			InStock:    true,
		},
		{
			ID:          "4",
			Name:        "Ergonomic Office Chair",
			Description: "Boost productivity with lumbar support and adjustable height.",
			Price:       499.99,
			Images: []string{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500&h=400",
			},
			Category:   "home",
			Rating:     4.7,
			StockCount: 8,
			InStock:    true,
		},
		{
			ID:          "5",
			Name:        "Vitamin C Serum",
			Description: "Brighten your skin with this antioxidant-rich serum.",
			Price:       34.99,
			Images: []string{
				"https://images.unsplash.com/photo-1620916566398-39f1143ab7be?w=500&h=400",
			},
			Category:   "beauty",
			Rating:     4.5,
			StockCount: 67,
			InStock:    true,
		},
		{
			ID:          "6",
			Name:        "Trail Running Shoes",
			Description: "All-terrain grip with responsive cushioning.",
			Price:       129.99,
			Images: []string{
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&h=400",
			},
			Category:   "sports",
			Rating:     4.4,
			StockCount: 31,
			InStock:    true,
		},
		{
			ID:          "7",
			Name:        "The Art of Programming",
			Description: "A practical guide to writing maintainable software.",
			Price:       42.50,
			Images: []string{
				"https://images.unsplash.com/photo-1532012197267-da84d127e765?w=500&h=400",
			},
			Category:   "books",
			Rating:     4.9,
			StockCount: 0,
			InStock:    false,
		},
		{
			ID:          "8",
			Name:        "Ceramic Pour-Over Coffee Set",
			Description: "Hand-glazed dripper and carafe for a slow morning brew.",
			Price:       58.00,
			Images: []string{
				"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=500&h=400",
			},
			Category:   "home",
			Rating:     4.3,
			StockCount: 19,
			InStock:    true,
		},
	}
}
