package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest body for POST /api/services.
type CreateServiceRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"` // Tax | Audit | Corporate | Accounting | Consulting
	Price       decimal.Decimal `json:"price"`
}

// UpdateServiceRequest body for PUT /api/services/:id.
type UpdateServiceRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Version     int             `json:"version,omitempty"`
}

// ServiceResponse service in responses.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Version     int             `json:"version"`
}
