package catalog

// Static grocery data: 7 items per store with a wide cost range, covering
// the same products at both stores so price comparison is meaningful.

func promo(price float64) *float64 {
	return &price
}

var walmartItems = []Item{
	{
		ID:           "walmart_001",
		Name:         "Fresh Bananas, per lb",
		Brand:        "Fresh",
		Size:         "per lb",
		RegularPrice: 0.58,
		Category:     "Fresh Produce",
		SNAPEligible: true,
		WICEligible:  false,
		Store:        "Walmart",
	},
	{
		ID:           "walmart_002",
		Name:         "Great Value Canned Black Beans, 15 oz",
		Brand:        "Great Value",
		Size:         "15 oz",
		RegularPrice: 1.08,
		PromoPrice:   promo(0.88),
		Category:     "Pantry",
		SNAPEligible: true,
		WICEligible:  true,
		Store:        "Walmart",
	},
	{
		ID:           "walmart_003",
		Name:         "Great Value Large White Eggs, 12 Count",
		Brand:        "Great Value",
		Size:         "12 Count",
		RegularPrice: 2.32,
		PromoPrice:   promo(1.98),
		Category:     "Dairy",
		SNAPEligible: true,
		WICEligible:  true,
		Store:        "Walmart",
	},
	{
		ID:           "walmart_004",
		Name:         "Great Value Whey Protein Powder, Vanilla, 1 lb",
		Brand:        "Great Value",
		Size:         "1 lb",
		RegularPrice: 3.00,
		Category:     "Health & Wellness",
		SNAPEligible: true,
		WICEligible:  false,
		Store:        "Walmart",
	},
	{
		ID:           "walmart_005",
		Name:         "Great Value Peanut Butter, Creamy, 40 oz",
		Brand:        "Great Value",
		Size:         "40 oz",
		RegularPrice: 3.98,
		PromoPrice:   promo(3.48),
		Category:     "Pantry",
		SNAPEligible: true,
		WICEligible:  true,
		Store:        "Walmart",
	},
	{
		ID:           "walmart_006",
		Name:         "Fresh Ground Beef, 93% Lean, per lb",
		Brand:        "Fresh",
		Size:         "per lb",
		RegularPrice: 5.98,
		Category:     "Meat",
		SNAPEligible: true,
		WICEligible:  false,
		Store:        "Walmart",
	},
	{
		ID:           "walmart_007",
		Name:         "Great Value Boneless Skinless Chicken Breasts, 3 lb",
		Brand:        "Great Value",
		Size:         "3 lb",
		RegularPrice: 8.97,
		PromoPrice:   promo(7.48),
		Category:     "Meat",
		SNAPEligible: true,
		WICEligible:  false,
		Store:        "Walmart",
	},
}

var targetItems = []Item{
	{
		ID:           "target_001",
		Name:         "Fresh Organic Bananas, per lb",
		Brand:        "Fresh",
		Size:         "per lb",
		RegularPrice: 0.79,
		PromoPrice:   promo(0.69),
		Category:     "Fresh Produce",
		SNAPEligible: true,
		WICEligible:  false,
		Store:        "Target",
	},
	{
		ID:           "target_002",
		Name:         "Good & Gather Organic Black Beans, 15 oz",
		Brand:        "Good & Gather",
		Size:         "15 oz",
		RegularPrice: 1.29,
		Category:     "Pantry",
		SNAPEligible: true,
		WICEligible:  true,
		Store:        "Target",
	},
	{
		ID:           "target_003",
		Name:         "Good & Gather Cage Free Large Eggs, 12 Count",
		Brand:        "Good & Gather",
		Size:         "12 Count",
		RegularPrice: 2.79,
		Category:     "Dairy",
		SNAPEligible: true,
		WICEligible:  true,
		Store:        "Target",
	},
	{
		ID:           "target_004",
		Name:         "Good & Gather Whey Protein Powder, Chocolate, 1 lb",
		Brand:        "Good & Gather",
		Size:         "1 lb",
		RegularPrice: 3.49,
		PromoPrice:   promo(2.99),
		Category:     "Health & Wellness",
		SNAPEligible: true,
		WICEligible:  false,
		Store:        "Target",
	},
	{
		ID:           "target_005",
		Name:         "Good & Gather Natural Peanut Butter, 36 oz",
		Brand:        "Good & Gather",
		Size:         "36 oz",
		RegularPrice: 4.49,
		Category:     "Pantry",
		SNAPEligible: true,
		WICEligible:  true,
		Store:        "Target",
	},
	{
		ID:           "target_006",
		Name:         "Good & Gather Ground Turkey, 93% Lean, per lb",
		Brand:        "Good & Gather",
		Size:         "per lb",
		RegularPrice: 6.49,
		PromoPrice:   promo(5.99),
		Category:     "Meat",
		SNAPEligible: true,
		WICEligible:  false,
		Store:        "Target",
	},
	{
		ID:           "target_007",
		Name:         "Good & Gather Boneless Skinless Chicken Breast, 2.5 lb",
		Brand:        "Good & Gather",
		Size:         "2.5 lb",
		RegularPrice: 9.99,
		PromoPrice:   promo(8.49),
		Category:     "Meat",
		SNAPEligible: true,
		WICEligible:  false,
		Store:        "Target",
	},
}

// Default returns the built-in Walmart and Target catalog. The returned
// catalog owns a fresh slice so callers cannot disturb the package data.
func Default() Catalog {
	items := make([]Item, 0, len(walmartItems)+len(targetItems))
	items = append(items, walmartItems...)
	items = append(items, targetItems...)
	return Catalog{Items: items}
}
