package firestore

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	cloudfirestore "cloud.google.com/go/firestore"
)

// Collection names are the store's persisted layout; changing one orphans
// existing documents.
const (
	collectionProducts   = "products"
	collectionCategories = "categories"
	collectionOrders     = "orders"
	collectionUsers      = "users"
	collectionDiscounts  = "discounts"
	collectionPromotions = "promotions"
	collectionInventory  = "inventory"
	collectionStores     = "stores"
)

// NewProductRepository creates the product repository.
func NewProductRepository(client *cloudfirestore.Client) repository.ProductRepository {
	return NewCollection[entity.Product](client, collectionProducts)
}

// NewCategoryRepository creates the category repository.
func NewCategoryRepository(client *cloudfirestore.Client) repository.CategoryRepository {
	return NewCollection[entity.Category](client, collectionCategories)
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(client *cloudfirestore.Client) repository.OrderRepository {
	return NewCollection[entity.Order](client, collectionOrders)
}

// NewUserRepository creates the user profile repository.
func NewUserRepository(client *cloudfirestore.Client) repository.UserRepository {
	return NewCollection[entity.User](client, collectionUsers)
}

// NewDiscountRepository creates the discount repository.
func NewDiscountRepository(client *cloudfirestore.Client) repository.DiscountRepository {
	return NewCollection[entity.Discount](client, collectionDiscounts)
}

// NewPromotionRepository creates the promotion repository.
func NewPromotionRepository(client *cloudfirestore.Client) repository.PromotionRepository {
	return NewCollection[entity.Promotion](client, collectionPromotions)
}

// NewInventoryRepository creates the inventory repository.
func NewInventoryRepository(client *cloudfirestore.Client) repository.InventoryRepository {
	return NewCollection[entity.Inventory](client, collectionInventory)
}

// NewStoreRepository creates the store repository.
func NewStoreRepository(client *cloudfirestore.Client) repository.StoreRepository {
	return NewCollection[entity.Store](client, collectionStores)
}
