package entity

import "github.com/google/uuid"

// Product is a catalog item. Stock is advisory only: cart and checkout never
// reject on insufficient stock. Sales is a counter incremented inside the
// checkout transaction.
type Product struct {
	ID          uuid.UUID // The unique identifier for the product.
	Name        string    // Product display name.
	Price       float64   // Current catalog price; orders snapshot it.
	Category    string    // Category name; empty means uncategorized.
	Image       string    // Primary image URL.
	Description string    // Long-form description.
	Rating      float64   // Average review rating.
	Sales       int       // Units sold, incremented at checkout.
	Stock       int       // Advisory stock level.
	Status      string    // Listing status, e.g. "active".
}
