package entity

import "github.com/google/uuid"

// VIPLevel is a membership tier users can belong to. Name and rank are both
// unique; a level with members attached cannot be deleted.
type VIPLevel struct {
	ID       uuid.UUID // The unique identifier for the level.
	Name     string    // Unique human-readable name, e.g. "Gold".
	Level    int       // Unique numeric rank, ascending with privilege.
	Discount int       // Discount percentage granted to members.
	MinSpend float64   // Minimum cumulative spend to reach this level.
	Color    string    // Display color used by the admin frontend.
	Icon     string    // Display icon used by the admin frontend.
	Benefits []string  // Free-form benefit descriptions.
}
