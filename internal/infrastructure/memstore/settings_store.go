package memstore

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

// SettingsStore keeps the singleton firm settings in memory.
type SettingsStore struct {
	mu       sync.RWMutex
	settings entity.FirmSettings
}

// NewSettingsStore builds a store preloaded with the firm defaults.
func NewSettingsStore(now time.Time) *SettingsStore {
	return &SettingsStore{
		settings: entity.FirmSettings{
			FirmName: "CS A Associates",
			Email:    "contact@csaassociates.com",
			Phone:    "+91 98765 43210",
			Address:  "123 Business District, Mumbai, Maharashtra 400001",
			GSTIN:    "27AAAAA0000A1Z5",
			PAN:      "AAAAA0000A",

			InvoicePrefix:    "INV",
			QuotationPrefix:  "QT",
			SequenceYear:     now.Year(),
			NextInvoiceSeq:   1,
			NextQuotationSeq: 1,
			DefaultTaxRate:   decimal.NewFromInt(18), // GST on professional services

			Terms:       "Payment due within 15 days of invoice date.\nLate payments may incur additional charges.",
			BankDetails: "Bank: HDFC Bank\nAccount: 50200012345678\nIFSC: HDFC0001234",
			Version:     1,
			UpdatedAt:   now,
		},
	}
}

// Get returns a copy of the current settings.
func (s *SettingsStore) Get() (*entity.FirmSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.settings
	return &out, nil
}

// Update replaces the settings, bumping the version. The incoming Version
// must match the stored one (0 skips the check).
func (s *SettingsStore) Update(in *entity.FirmSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.Version != 0 && in.Version != s.settings.Version {
		return domain.ErrConflict
	}
	in.Version = s.settings.Version + 1
	in.UpdatedAt = time.Now()
	s.settings = *in
	return nil
}
