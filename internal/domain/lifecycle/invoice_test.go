package lifecycle_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
	"github.com/csaassociates/ca-admin-api/internal/domain/lifecycle"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyPayment
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyPayment_PartialThenPaid(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceNo:  "INV-2025-010",
		Amount:     d("10000"),
		AmountPaid: decimal.Zero,
		Status:     entity.InvoiceStatusPending,
	}

	status, err := lifecycle.ApplyPayment(inv, d("4000"))
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPartial, status,
		"4000 of 10000 leaves the invoice partial")

	inv.AmountPaid = d("4000")
	inv.Status = entity.InvoiceStatusPartial

	status, err = lifecycle.ApplyPayment(inv, d("6000"))
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, status,
		"reaching the full amount settles the invoice")
}

func TestApplyPayment_ExactAndOverpaymentBothSettle(t *testing.T) {
	inv := &entity.Invoice{Amount: d("500"), Status: entity.InvoiceStatusPending}

	status, err := lifecycle.ApplyPayment(inv, d("500"))
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, status)

	status, err = lifecycle.ApplyPayment(inv, d("500.01"))
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, status,
		"paying past the amount still reports paid")
}

func TestApplyPayment_RejectsNonPositiveAmounts(t *testing.T) {
	inv := &entity.Invoice{Amount: d("100"), Status: entity.InvoiceStatusPending}

	_, err := lifecycle.ApplyPayment(inv, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "zero payment is invalid")

	_, err = lifecycle.ApplyPayment(inv, d("-50"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "negative payment is invalid")
}

func TestApplyPayment_RejectsAlreadyPaid(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceNo:  "INV-2025-011",
		Amount:     d("100"),
		AmountPaid: d("100"),
		Status:     entity.InvoiceStatusPaid,
	}
	_, err := lifecycle.ApplyPayment(inv, d("1"))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"a settled invoice accepts no further payments")
}

// ──────────────────────────────────────────────────────────────────────────────
// EffectiveStatus: overdue is derived, never stored
// ──────────────────────────────────────────────────────────────────────────────

func TestEffectiveStatus_DerivesOverdue(t *testing.T) {
	now := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		Status:  entity.InvoiceStatusPending,
		DueDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, entity.InvoiceStatusOverdue, lifecycle.EffectiveStatus(inv, now),
		"pending past due reads as overdue")

	inv.Status = entity.InvoiceStatusPartial
	assert.Equal(t, entity.InvoiceStatusOverdue, lifecycle.EffectiveStatus(inv, now),
		"partial past due reads as overdue")

	assert.Equal(t, entity.InvoiceStatusPartial, inv.Status,
		"the stored status is never rewritten")
}

func TestEffectiveStatus_PaidNeverOverdue(t *testing.T) {
	now := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		Status:  entity.InvoiceStatusPaid,
		DueDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, entity.InvoiceStatusPaid, lifecycle.EffectiveStatus(inv, now))
}

func TestEffectiveStatus_DueTodayIsNotOverdue(t *testing.T) {
	// Calendar-day comparison: time of day on the due date is irrelevant.
	now := time.Date(2025, 7, 10, 23, 59, 0, 0, time.UTC)
	inv := &entity.Invoice{
		Status:  entity.InvoiceStatusPending,
		DueDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, entity.InvoiceStatusPending, lifecycle.EffectiveStatus(inv, now),
		"an invoice due today is not yet overdue")
}

func TestEffectiveStatus_FutureDueDate(t *testing.T) {
	now := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		Status:  entity.InvoiceStatusPending,
		DueDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, entity.InvoiceStatusPending, lifecycle.EffectiveStatus(inv, now))
}
