package entity

import "time"

// Vendor is a supplier purchase orders are placed with.
type Vendor struct {
	ID        string
	Name      string
	Contact   string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
