package entity

import "time"

// Category groups products on the menu. DisplayOrder is the rank used by
// the customer-facing menu; Visible hides the whole group at once.
type Category struct {
	ID           string        `json:"id" firestore:"-"`
	Name         LocalizedText `json:"name" firestore:"name"`
	Color        string        `json:"color,omitempty" firestore:"color,omitempty"`
	Visible      bool          `json:"visible" firestore:"visible"`
	DisplayOrder int           `json:"order" firestore:"order"`
	CreatedAt    time.Time     `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// Product is a menu item. CategoryID must reference an existing Category.
type Product struct {
	ID          string        `json:"id" firestore:"-"`
	Name        LocalizedText `json:"name" firestore:"name"`
	Description LocalizedText `json:"description,omitempty" firestore:"description,omitempty"`
	Price       float64       `json:"price" firestore:"price"`
	CategoryID  string        `json:"category" firestore:"category"`
	Image       string        `json:"image,omitempty" firestore:"image,omitempty"`
	Available   bool          `json:"available" firestore:"available"`
	CreatedAt   time.Time     `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
