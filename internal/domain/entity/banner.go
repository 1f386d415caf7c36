package entity

import "time"

// Banner is a promotional banner managed in the operations store.
type Banner struct {
	ID          uint      // Surrogate key.
	Title       string    // Banner headline.
	ImageURL    string    // Image location.
	Description string    // Optional description.
	LinkURL     string    // Optional click-through target.
	SortOrder   int       // Ascending display order.
	IsActive    bool      // Whether the banner is shown.
	CreateTime  time.Time // Timestamp of creation.
}
