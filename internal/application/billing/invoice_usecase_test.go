package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csaassociates/ca-admin-api/internal/application/dto"
	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

func (e *testEnv) createInvoice(t *testing.T, amount int64) *dto.InvoiceResponse {
	t.Helper()
	inv, err := e.invoices.Create(dto.CreateInvoiceRequest{
		CustomerID: e.customerID,
		Amount:     decimal.NewFromInt(amount),
	})
	require.NoError(t, err)
	return inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_DefaultsAndLedgerDebit(t *testing.T) {
	env := newTestEnv(t)

	inv := env.createInvoice(t, 10000)

	assert.Equal(t, "INV-2025-001", inv.InvoiceNo)
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
	assert.Equal(t, "2025-07-01", inv.Date, "defaults to today")
	assert.Equal(t, "2025-07-16", inv.DueDate, "due 15 days after the invoice date")

	entry, err := env.stores.Ledgers.GetByCustomerID(env.customerID)
	require.NoError(t, err)
	assert.True(t, entry.TotalInvoices.Equal(decimal.NewFromInt(10000)))
	assert.True(t, entry.Outstanding.Equal(decimal.NewFromInt(10000)))
}

func TestInvoiceCreate_Validations(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.invoices.Create(dto.CreateInvoiceRequest{
		CustomerID: env.customerID, Amount: decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = env.invoices.Create(dto.CreateInvoiceRequest{
		CustomerID: env.customerID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "a zero amount is rejected")

	_, err = env.invoices.Create(dto.CreateInvoiceRequest{
		CustomerID: env.customerID, Amount: decimal.NewFromInt(100),
		Date: "2025-07-10", DueDate: "2025-07-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "due date before invoice date")

	_, err = env.invoices.Create(dto.CreateInvoiceRequest{
		CustomerID: "ghost", Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Payments
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordPayment_PartialThenSettled(t *testing.T) {
	env := newTestEnv(t)
	inv := env.createInvoice(t, 10000)

	out, err := env.invoices.RecordPayment(inv.ID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(4000), Reference: "NEFT/UTR001",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPartial, out.Status)
	assert.True(t, out.AmountPaid.Equal(decimal.NewFromInt(4000)))

	out, err = env.invoices.RecordPayment(inv.ID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(6000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, out.Status)

	// The ledger cleared along the way.
	entry, err := env.stores.Ledgers.GetByCustomerID(env.customerID)
	require.NoError(t, err)
	assert.True(t, entry.Outstanding.IsZero(),
		"invoices fully paid, nothing outstanding: got %s", entry.Outstanding)

	// Both payments are on record, in order.
	payments, err := env.invoices.Payments(inv.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "NEFT/UTR001", payments[0].Reference)
}

func TestRecordPayment_RejectsSettledInvoice(t *testing.T) {
	env := newTestEnv(t)
	inv := env.createInvoice(t, 500)

	_, err := env.invoices.RecordPayment(inv.ID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	_, err = env.invoices.RecordPayment(inv.ID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	env := newTestEnv(t)
	inv := env.createInvoice(t, 500)

	_, err := env.invoices.RecordPayment(inv.ID, dto.RecordPaymentRequest{
		Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceDelete_ReversesLedgerDebit(t *testing.T) {
	env := newTestEnv(t)
	inv := env.createInvoice(t, 7000)

	require.NoError(t, env.invoices.Delete(inv.ID, 0))

	entry, err := env.stores.Ledgers.GetByCustomerID(env.customerID)
	require.NoError(t, err)
	assert.True(t, entry.TotalInvoices.IsZero(), "the debit is reversed")
	assert.True(t, entry.Outstanding.IsZero())
}

func TestInvoiceDelete_RefusedOncePaid(t *testing.T) {
	env := newTestEnv(t)
	inv := env.createInvoice(t, 1000)

	_, err := env.invoices.RecordPayment(inv.ID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, env.invoices.Delete(inv.ID, 0), domain.ErrConflict,
		"invoices with recorded payments are immutable history")
}

// ──────────────────────────────────────────────────────────────────────────────
// Derived status and stats
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceList_DerivesOverdue(t *testing.T) {
	env := newTestEnv(t)

	// Due before the fixed clock (2025-07-01).
	_, err := env.invoices.Create(dto.CreateInvoiceRequest{
		CustomerID: env.customerID,
		Amount:     decimal.NewFromInt(100),
		Date:       "2025-06-01",
		DueDate:    "2025-06-10",
	})
	require.NoError(t, err)

	list, err := env.invoices.List("")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.InvoiceStatusOverdue, list[0].Status,
		"the response carries the derived status")

	stored, err := env.stores.Invoices.GetByID(list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPending, stored.Status,
		"the store keeps the real status")
}

func TestInvoiceStats(t *testing.T) {
	env := newTestEnv(t)

	paid := env.createInvoice(t, 1000)
	_, err := env.invoices.RecordPayment(paid.ID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	env.createInvoice(t, 2000) // pending, due in the future

	_, err = env.invoices.Create(dto.CreateInvoiceRequest{ // overdue
		CustomerID: env.customerID,
		Amount:     decimal.NewFromInt(3000),
		Date:       "2025-06-01",
		DueDate:    "2025-06-10",
	})
	require.NoError(t, err)

	stats, err := env.invoices.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Paid)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Overdue)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(1000)),
		"revenue counts paid invoices only")
}
