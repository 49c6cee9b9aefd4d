package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body for POST /api/customers.
// OpeningBalance seeds the customer's ledger entry (may be zero).
type CreateCustomerRequest struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	BusinessName   string          `json:"business_name,omitempty"`
	Type           string          `json:"type"` // Individual | Business
	PAN            string          `json:"pan,omitempty"`
	GSTIN          string          `json:"gstin,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance,omitempty"`
}

// UpdateCustomerRequest body for PUT /api/customers/:id.
// Version is the optimistic-concurrency guard (0 skips the check).
type UpdateCustomerRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessName string `json:"business_name,omitempty"`
	Type         string `json:"type"`
	PAN          string `json:"pan,omitempty"`
	GSTIN        string `json:"gstin,omitempty"`
	Version      int    `json:"version,omitempty"`
}

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessName string `json:"business_name,omitempty"`
	Type         string `json:"type"`
	PAN          string `json:"pan,omitempty"`
	GSTIN        string `json:"gstin,omitempty"`
	Version      int    `json:"version"`
}
