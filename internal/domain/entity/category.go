package entity

// Category is a product category managed in the operations store. Products
// reference categories by name only; there is no cross-store foreign key.
type Category struct {
	ID          uint   // Surrogate key.
	Name        string // Unique category name.
	Description string // Short description.
	Icon        string // Display icon used by the admin frontend.
	Color       string // Display color used by the admin frontend.
	SortOrder   int    // Ascending display order.
	IsActive    bool   // Whether the category is visible.
}
