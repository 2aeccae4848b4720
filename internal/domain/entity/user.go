package entity

// User is the profile document stored for every identity-provider account.
// Its document ID equals the provider UID, so profile lookups never need a
// secondary index. The authoritative role lives in the provider's custom
// claim; the copy here is denormalized for listing and display.
type User struct {
	Meta
	Name     string     `firestore:"name" json:"name"`
	Email    string     `firestore:"email" json:"email"`
	Phone    string     `firestore:"phone" json:"phone"`
	Address  string     `firestore:"address" json:"address"`
	Role     Role       `firestore:"role" json:"role"`
	Wishlist []string   `firestore:"wishlist" json:"wishlist"`
	Cart     []CartItem `firestore:"cart" json:"cart"`
}

// CartItem is a single cart line. A product appears in the cart at most
// once; adding the same product again merges quantities.
type CartItem struct {
	ProductID string `firestore:"productId" json:"productId"`
	Quantity  int    `firestore:"quantity" json:"quantity"`
}

// CartLine returns the index of the line holding productID, or -1.
func (u *User) CartLine(productID string) int {
	for i, item := range u.Cart {
		if item.ProductID == productID {
			return i
		}
	}

	return -1
}

// InWishlist reports whether productID is already wished for.
func (u *User) InWishlist(productID string) bool {
	for _, id := range u.Wishlist {
		if id == productID {
			return true
		}
	}

	return false
}
