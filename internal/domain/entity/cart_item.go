package entity

import "github.com/google/uuid"

// CartItem is one entry of a user's cart ledger: a (user, product) pair with
// a positive quantity. The pair is unique; adding the same product again
// increments the quantity instead of creating a second row.
type CartItem struct {
	ID        uint      // Surrogate key.
	UserID    uuid.UUID // Owner of the cart entry.
	ProductID uuid.UUID // Referenced catalog product.
	Quantity  int       // Always > 0; zero or negative means removal.

	// Product is the joined catalog product, populated on reads that need
	// pricing or display data. Nil when not loaded.
	Product *Product
}
