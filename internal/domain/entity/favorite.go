package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is one entry of a user's wishlist: a (user, product) pair. The
// pair is unique; favoriting the same product again is a no-op that returns
// the existing entry.
type Favorite struct {
	ID         uint      // Surrogate key.
	UserID     uuid.UUID // Owner of the wishlist entry.
	ProductID  uuid.UUID // Referenced catalog product.
	CreateTime time.Time // Timestamp the product was favorited.

	// Product is the joined catalog product for display purposes. Nil when
	// not loaded.
	Product *Product
}
