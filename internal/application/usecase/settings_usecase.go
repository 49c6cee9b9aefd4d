package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/csaassociates/ca-admin-api/internal/application/dto"
	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
	"github.com/csaassociates/ca-admin-api/internal/domain/repository"
)

// sequenceRetries attempts when two callers race for the same document
// number; the store's version check detects the collision.
const sequenceRetries = 3

// SettingsUseCase reads and updates the firm settings, and owns the
// document numbering sequences (INV-2025-005 style). Sequences reset on
// year rollover.
type SettingsUseCase struct {
	repo repository.SettingsRepository
	now  func() time.Time
}

// NewSettingsUseCase builds the use case. now may be nil (wall clock).
func NewSettingsUseCase(repo repository.SettingsRepository, now func() time.Time) *SettingsUseCase {
	if now == nil {
		now = time.Now
	}
	return &SettingsUseCase{repo: repo, now: now}
}

// Get returns the current settings with the upcoming document numbers.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// UpdateFirm patches the letterhead details.
func (uc *SettingsUseCase) UpdateFirm(in dto.UpdateFirmRequest) (*dto.SettingsResponse, error) {
	if in.FirmName == "" || in.Email == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: firm name, email and phone are required", domain.ErrInvalidInput)
	}
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	s.FirmName = in.FirmName
	s.Email = in.Email
	s.Phone = in.Phone
	s.Address = in.Address
	s.GSTIN = in.GSTIN
	s.PAN = in.PAN
	if in.Version != 0 {
		s.Version = in.Version
	}
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// UpdateInvoiceSettings patches the billing defaults.
func (uc *SettingsUseCase) UpdateInvoiceSettings(in dto.UpdateInvoiceSettingsRequest) (*dto.SettingsResponse, error) {
	if in.InvoicePrefix == "" || in.QuotationPrefix == "" {
		return nil, fmt.Errorf("%w: prefixes are required", domain.ErrInvalidInput)
	}
	if in.DefaultTaxRate.Sign() < 0 {
		return nil, fmt.Errorf("%w: tax rate %s", domain.ErrInvalidAmount, in.DefaultTaxRate)
	}
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	s.InvoicePrefix = in.InvoicePrefix
	s.QuotationPrefix = in.QuotationPrefix
	s.DefaultTaxRate = in.DefaultTaxRate
	s.Terms = in.Terms
	s.BankDetails = in.BankDetails
	if in.Version != 0 {
		s.Version = in.Version
	}
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// NextInvoiceNo reserves and returns the next invoice number.
func (uc *SettingsUseCase) NextInvoiceNo() (string, error) {
	return uc.reserve(func(s *entity.FirmSettings) string {
		no := formatDocNo(s.InvoicePrefix, s.SequenceYear, s.NextInvoiceSeq)
		s.NextInvoiceSeq++
		return no
	})
}

// NextQuotationNo reserves and returns the next quotation number.
func (uc *SettingsUseCase) NextQuotationNo() (string, error) {
	return uc.reserve(func(s *entity.FirmSettings) string {
		no := formatDocNo(s.QuotationPrefix, s.SequenceYear, s.NextQuotationSeq)
		s.NextQuotationSeq++
		return no
	})
}

// DefaultTaxRate returns the firm's configured GST percentage.
func (uc *SettingsUseCase) DefaultTaxRate() (decimal.Decimal, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return decimal.Zero, err
	}
	return s.DefaultTaxRate, nil
}

// reserve applies take under the optimistic write loop, resetting the
// sequences first when the year has rolled over.
func (uc *SettingsUseCase) reserve(take func(*entity.FirmSettings) string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < sequenceRetries; attempt++ {
		s, err := uc.repo.Get()
		if err != nil {
			return "", err
		}
		if year := uc.now().Year(); year != s.SequenceYear {
			s.SequenceYear = year
			s.NextInvoiceSeq = 1
			s.NextQuotationSeq = 1
		}
		no := take(s)
		if err := uc.repo.Update(s); err != nil {
			if err == domain.ErrConflict {
				lastErr = err
				continue
			}
			return "", err
		}
		return no, nil
	}
	return "", lastErr
}

func formatDocNo(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

func toSettingsResponse(s *entity.FirmSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		FirmName:        s.FirmName,
		Email:           s.Email,
		Phone:           s.Phone,
		Address:         s.Address,
		GSTIN:           s.GSTIN,
		PAN:             s.PAN,
		InvoicePrefix:   s.InvoicePrefix,
		QuotationPrefix: s.QuotationPrefix,
		NextInvoiceNo:   formatDocNo(s.InvoicePrefix, s.SequenceYear, s.NextInvoiceSeq),
		NextQuotationNo: formatDocNo(s.QuotationPrefix, s.SequenceYear, s.NextQuotationSeq),
		DefaultTaxRate:  s.DefaultTaxRate,
		Terms:           s.Terms,
		BankDetails:     s.BankDetails,
		Version:         s.Version,
	}
}
