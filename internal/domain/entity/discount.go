package entity

import "time"

// DiscountType distinguishes percentage from fixed-amount discounts.
type DiscountType string

const (
	// DiscountTypePercentage reduces the price by Value percent.
	DiscountTypePercentage DiscountType = "percentage"
	// DiscountTypeFixed reduces the price by Value currency units.
	DiscountTypeFixed DiscountType = "fixed"
)

// IsValid checks if the DiscountType is a valid value.
func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountTypePercentage, DiscountTypeFixed:
		return true
	default:
		return false
	}
}

// Discount applies to referenced products or whole categories within its
// validity window.
type Discount struct {
	Meta
	Name        string       `firestore:"name" json:"name"`
	Type        DiscountType `firestore:"type" json:"type"`
	Value       float64      `firestore:"value" json:"value"`
	ValidFrom   time.Time    `firestore:"validFrom" json:"validFrom"`
	ValidTo     time.Time    `firestore:"validTo" json:"validTo"`
	ProductIDs  []string     `firestore:"productIds" json:"productIds"`
	CategoryIDs []string     `firestore:"categoryIds" json:"categoryIds"`

	// Populated references, never persisted.
	Products   []*Product  `firestore:"-" json:"products,omitempty"`
	Categories []*Category `firestore:"-" json:"categories,omitempty"`
}

// AvailableAt reports whether the validity window contains now.
// Both window boundaries are inclusive.
func (d *Discount) AvailableAt(now time.Time) bool {
	return !now.Before(d.ValidFrom) && !now.After(d.ValidTo)
}

// Promotion is a code-gated campaign with its own validity window.
type Promotion struct {
	Meta
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description"`
	Code        string    `firestore:"code" json:"code"`
	Value       float64   `firestore:"value" json:"value"`
	ValidFrom   time.Time `firestore:"validFrom" json:"validFrom"`
	ValidTo     time.Time `firestore:"validTo" json:"validTo"`
	ProductIDs  []string  `firestore:"productIds" json:"productIds"`
}

// AvailableAt reports whether the validity window contains now, boundaries
// inclusive.
func (p *Promotion) AvailableAt(now time.Time) bool {
	return !now.Before(p.ValidFrom) && !now.After(p.ValidTo)
}
