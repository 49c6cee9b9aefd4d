package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csaassociates/ca-admin-api/internal/application/billing"
	"github.com/csaassociates/ca-admin-api/internal/application/dto"
	"github.com/csaassociates/ca-admin-api/internal/application/usecase"
	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
	"github.com/csaassociates/ca-admin-api/internal/infrastructure/memstore"
)

// testEnv wires the billing use cases against fresh in-memory stores with
// a deterministic clock.
type testEnv struct {
	stores      *memstore.Stores
	quotations  *billing.QuotationUseCase
	invoices    *billing.InvoiceUseCase
	customers   *usecase.CustomerUseCase
	clock       time.Time
	customerID  string
	auditSvcID  string
	filingSvcID string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	st := memstore.NewStores(clock)
	settingsUC := usecase.NewSettingsUseCase(st.Settings, now)
	customersUC := usecase.NewCustomerUseCase(st.Customers, st.Ledgers, st.Quotations, st.Invoices)

	env := &testEnv{
		stores:    st,
		customers: customersUC,
		clock:     clock,
		quotations: billing.NewQuotationUseCase(
			st.Quotations, st.Customers, st.Services, st.Invoices, st.Ledgers, settingsUC, now,
		),
		invoices: billing.NewInvoiceUseCase(
			st.Invoices, st.Customers, st.Payments, st.Ledgers, settingsUC, now,
		),
	}

	customer, err := customersUC.Create(dto.CreateCustomerRequest{
		Name: "Rajesh Kumar", Email: "rajesh@example.com", Phone: "+91 98765 43210",
		Type: entity.CustomerTypeBusiness, BusinessName: "Kumar Enterprises",
	})
	require.NoError(t, err)
	env.customerID = customer.ID

	audit := &entity.Service{
		ID: "svc-audit", Name: "Audit Services", Category: "Audit",
		Price: decimal.NewFromInt(15000), Status: entity.ServiceStatusActive,
	}
	filing := &entity.Service{
		ID: "svc-filing", Name: "Income Tax Filing", Category: "Tax",
		Price: decimal.NewFromInt(3000), Status: entity.ServiceStatusActive,
	}
	require.NoError(t, st.Services.Create(audit))
	require.NoError(t, st.Services.Create(filing))
	env.auditSvcID = audit.ID
	env.filingSvcID = filing.ID

	return env
}

func (e *testEnv) draftQuotation(t *testing.T, services ...string) *dto.QuotationResponse {
	t.Helper()
	q, err := e.quotations.Create(dto.CreateQuotationRequest{
		CustomerID: e.customerID,
		Services:   services,
	})
	require.NoError(t, err)
	return q
}

// ──────────────────────────────────────────────────────────────────────────────
// Create and pricing
// ──────────────────────────────────────────────────────────────────────────────

func TestQuotationCreate_PricesFromCatalogue(t *testing.T) {
	env := newTestEnv(t)

	q := env.draftQuotation(t, "Audit Services", "Income Tax Filing")

	assert.Equal(t, "QT-2025-001", q.QuotationNo)
	assert.Equal(t, entity.QuotationStatusDraft, q.Status, "new quotations start as drafts")
	assert.True(t, q.SubTotal.Equal(decimal.NewFromInt(18000)), "got %s", q.SubTotal)
	assert.True(t, q.TaxRate.Equal(decimal.NewFromInt(18)), "firm default GST applies")
	assert.True(t, q.Total.Equal(decimal.NewFromInt(21240)),
		"18000 plus 18%% GST, got %s", q.Total)
}

func TestQuotationCreate_RejectsUnknownService(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.quotations.Create(dto.CreateQuotationRequest{
		CustomerID: env.customerID,
		Services:   []string{"Ghost Service"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuotationCreate_RejectsInactiveService(t *testing.T) {
	env := newTestEnv(t)

	svc, err := env.stores.Services.GetByID(env.auditSvcID)
	require.NoError(t, err)
	svc.Status = entity.ServiceStatusInactive
	require.NoError(t, env.stores.Services.Update(svc))

	_, err = env.quotations.Create(dto.CreateQuotationRequest{
		CustomerID: env.customerID,
		Services:   []string{"Audit Services"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"inactive services cannot be quoted")
}

func TestQuotationCreate_ExplicitTaxRate(t *testing.T) {
	env := newTestEnv(t)

	q, err := env.quotations.Create(dto.CreateQuotationRequest{
		CustomerID: env.customerID,
		Services:   []string{"Income Tax Filing"},
		TaxRate:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(3150)),
		"3000 plus 5%%, got %s", q.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lifecycle
// ──────────────────────────────────────────────────────────────────────────────

func TestQuotationLifecycle_HappyPath(t *testing.T) {
	env := newTestEnv(t)
	q := env.draftQuotation(t, "Audit Services")

	sent, err := env.quotations.Send(q.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationStatusSent, sent.Status)

	accepted, err := env.quotations.Accept(q.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationStatusAccepted, accepted.Status)
}

func TestQuotationLifecycle_DraftCannotBeAccepted(t *testing.T) {
	env := newTestEnv(t)
	q := env.draftQuotation(t, "Audit Services")

	_, err := env.quotations.Accept(q.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"a draft must be sent before it can be accepted")
}

func TestQuotationUpdate_FrozenOnceTerminal(t *testing.T) {
	env := newTestEnv(t)
	q := env.draftQuotation(t, "Audit Services")

	_, err := env.quotations.Send(q.ID)
	require.NoError(t, err)
	_, err = env.quotations.Reject(q.ID)
	require.NoError(t, err)

	_, err = env.quotations.Update(q.ID, dto.UpdateQuotationRequest{
		Services: []string{"Income Tax Filing"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"rejected quotations are frozen")
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversion
// ──────────────────────────────────────────────────────────────────────────────

func TestConvertToInvoice_FromAccepted(t *testing.T) {
	env := newTestEnv(t)
	q := env.draftQuotation(t, "Audit Services")
	_, err := env.quotations.Send(q.ID)
	require.NoError(t, err)
	_, err = env.quotations.Accept(q.ID)
	require.NoError(t, err)

	inv, err := env.quotations.ConvertToInvoice(q.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusPending, inv.Status, "a converted invoice starts pending")
	assert.True(t, inv.Amount.Equal(q.Total), "the invoice carries the quotation total")
	assert.Equal(t, q.ID, inv.QuotationID, "the invoice links back to its quotation")
	assert.Equal(t, "2025-07-16", inv.DueDate, "due 15 days after conversion")

	// The source quotation is untouched.
	src, err := env.quotations.GetByID(q.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationStatusAccepted, src.Status)

	// The customer's ledger picked up the debit.
	entry, err := env.stores.Ledgers.GetByCustomerID(env.customerID)
	require.NoError(t, err)
	assert.True(t, entry.TotalInvoices.Equal(inv.Amount))
	assert.True(t, entry.Outstanding.Equal(inv.Amount))
}

func TestConvertToInvoice_RefusedUnlessAccepted(t *testing.T) {
	env := newTestEnv(t)
	q := env.draftQuotation(t, "Audit Services")

	_, err := env.quotations.ConvertToInvoice(q.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "drafts do not convert")

	_, err = env.quotations.Send(q.ID)
	require.NoError(t, err)
	_, err = env.quotations.ConvertToInvoice(q.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "sent quotations do not convert")
}

// ──────────────────────────────────────────────────────────────────────────────
// List / filter
// ──────────────────────────────────────────────────────────────────────────────

func TestQuotationList_FilterByNumberAndCustomer(t *testing.T) {
	env := newTestEnv(t)
	env.draftQuotation(t, "Audit Services")
	env.draftQuotation(t, "Income Tax Filing")

	out, err := env.quotations.List("qt-2025-002")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "QT-2025-002", out[0].QuotationNo)

	out, err = env.quotations.List("rajesh")
	require.NoError(t, err)
	assert.Len(t, out, 2, "both quotations belong to Rajesh Kumar")

	out, err = env.quotations.List("zzz")
	require.NoError(t, err)
	assert.Empty(t, out)
}
