package entity

import "time"

// Customer types.
const (
	CustomerTypeIndividual = "Individual"
	CustomerTypeBusiness   = "Business"
)

// Customer represents a client of the practice.
// PAN and GSTIN are the Indian tax identifiers; GSTIN is empty for
// unregistered individuals.
type Customer struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	BusinessName string
	Type         string // Individual | Business
	PAN          string
	GSTIN        string
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
