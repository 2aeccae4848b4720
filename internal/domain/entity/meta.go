// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Meta carries the store-assigned identity and timestamps shared by every
// persisted record. The ID is the document ID and is never written as a
// field; the store adapter sets it after reads and creates.
type Meta struct {
	ID        string    `firestore:"-" json:"id"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// SetID records the document ID assigned by the store.
func (m *Meta) SetID(id string) {
	m.ID = id
}

// StampNew sets both timestamps at creation time.
func (m *Meta) StampNew(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Touch updates the modification timestamp.
func (m *Meta) Touch(now time.Time) {
	m.UpdatedAt = now
}
