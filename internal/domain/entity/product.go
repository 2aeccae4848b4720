package entity

// Product is a catalog item. Discounts are referenced by ID and resolved
// on demand when a caller asks for population.
type Product struct {
	Meta
	Name        string   `firestore:"name" json:"name"`
	Description string   `firestore:"description" json:"description"`
	Price       float64  `firestore:"price" json:"price"`
	Unit        string   `firestore:"unit" json:"unit"`
	CategoryID  string   `firestore:"categoryId" json:"categoryId"`
	DiscountIDs []string `firestore:"discountIds" json:"discountIds"`
	ImageKey    string   `firestore:"imageKey" json:"imageKey,omitempty"`

	// Discounts holds the resolved discount documents when population was
	// requested. Never persisted.
	Discounts []*Discount `firestore:"-" json:"discounts,omitempty"`
}

// Category groups products into a tree via ParentCategoryID.
type Category struct {
	Meta
	Name             string `firestore:"name" json:"name"`
	ParentCategoryID string `firestore:"parentCategoryId" json:"parentCategoryId,omitempty"`
}
