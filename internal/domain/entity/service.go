package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service statuses.
const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
)

// ServiceCategories is the fixed catalogue of service categories.
var ServiceCategories = []string{"Tax", "Audit", "Corporate", "Accounting", "Consulting"}

// ValidServiceCategory reports whether category belongs to the fixed set.
func ValidServiceCategory(category string) bool {
	for _, c := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Service is an offering of the practice (GST registration, audit, etc).
// Inactive services stay listed but cannot appear on new quotations.
type Service struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Status      string // active | inactive
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
