package entity

// Store is a physical location holding inventory.
type Store struct {
	Meta
	Name     string `firestore:"name" json:"name"`
	Location string `firestore:"location" json:"location"`

	// Inventory holds the resolved stock records when population was
	// requested. Never persisted.
	Inventory []*Inventory `firestore:"-" json:"inventory,omitempty"`
}

// Inventory is the stock level of one product at one store.
type Inventory struct {
	Meta
	ProductID string `firestore:"productId" json:"productId"`
	StoreID   string `firestore:"storeId" json:"storeId"`
	Stock     int    `firestore:"stock" json:"stock"`
}
