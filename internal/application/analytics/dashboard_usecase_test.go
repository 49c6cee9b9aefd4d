package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csaassociates/ca-admin-api/internal/application/analytics"
	"github.com/csaassociates/ca-admin-api/internal/application/dto"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
	"github.com/csaassociates/ca-admin-api/internal/infrastructure/memstore"
)

func TestDashboardSummary_AgainstSeedFixtures(t *testing.T) {
	clock := time.Date(2025, time.November, 10, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	st := memstore.NewStores(clock)
	require.NoError(t, memstore.SeedDemo(st))

	uc := analytics.NewDashboardUseCase(st.Customers, st.Invoices, st.Ledgers, now)
	out, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 5, out.TotalCustomers)
	assert.Equal(t, 4, out.InvoiceStats.Total)
	assert.Equal(t, 1, out.InvoiceStats.Paid)
	// INV-2025-003's due date (2025-11-08) is past the clock, so it reads
	// overdue; INV-2025-002 is still pending, INV-2025-004 partial.
	assert.Equal(t, 1, out.InvoiceStats.Overdue)
	assert.Equal(t, 1, out.InvoiceStats.Pending)
	assert.Equal(t, 1, out.InvoiceStats.Partial)
	assert.Equal(t, 3, out.PendingInvoices, "everything not fully paid counts as open")
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(9440)),
		"revenue is the one paid invoice, got %s", out.TotalRevenue)

	require.Len(t, out.RecentInvoices, 4, "fewer than five invoices exist, all are recent")
	assert.Equal(t, "INV-2025-004", out.RecentInvoices[0].InvoiceNo,
		"recent invoices come newest first")
	assert.NotEmpty(t, out.RecentInvoices[0].CustomerName)
	assert.Equal(t, entity.InvoiceStatusOverdue, statusOf(out.RecentInvoices, "INV-2025-003"),
		"recent invoices carry derived statuses")
}

func statusOf(invoices []dto.InvoiceResponse, invoiceNo string) string {
	for _, inv := range invoices {
		if inv.InvoiceNo == invoiceNo {
			return inv.Status
		}
	}
	return ""
}
