package memstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

// SeedDemo loads the demo fixtures used in development: a handful of
// customers, the service catalogue, open quotations, a mixed invoice
// register and the matching ledger entries. Intended for an empty store.
func SeedDemo(st *Stores) error {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	amt := decimal.NewFromInt

	type seedCustomer struct {
		entity.Customer
		opening decimal.Decimal
	}
	customers := []seedCustomer{
		{Customer: entity.Customer{
			Name: "Rajesh Kumar", Email: "rajesh@example.com", Phone: "+91 98765 43210",
			BusinessName: "Kumar Enterprises", Type: entity.CustomerTypeBusiness,
			PAN: "ABCDE1234F", GSTIN: "29ABCDE1234F1Z5",
		}, opening: amt(5000)},
		{Customer: entity.Customer{
			Name: "Priya Sharma", Email: "priya@example.com", Phone: "+91 87654 32109",
			Type: entity.CustomerTypeIndividual, PAN: "XYZAB5678C",
		}},
		{Customer: entity.Customer{
			Name: "Tech Solutions Ltd", Email: "accounts@techsolutions.in", Phone: "+91 99887 76655",
			BusinessName: "Tech Solutions Ltd", Type: entity.CustomerTypeBusiness,
			PAN: "AABCT1234D", GSTIN: "27AABCT1234D1Z3",
		}, opening: amt(10000)},
		{Customer: entity.Customer{
			Name: "Global Enterprises", Email: "finance@globalenterprises.in", Phone: "+91 91234 56780",
			BusinessName: "Global Enterprises", Type: entity.CustomerTypeBusiness,
			PAN: "AAGCE5678K", GSTIN: "27AAGCE5678K1Z9",
		}},
		{Customer: entity.Customer{
			Name: "Sunrise Industries", Email: "office@sunriseindustries.in", Phone: "+91 90909 80807",
			BusinessName: "Sunrise Industries", Type: entity.CustomerTypeBusiness,
			PAN: "AASFS9012L", GSTIN: "24AASFS9012L1Z1",
		}, opening: amt(2000)},
	}

	idByName := make(map[string]string, len(customers))
	for _, c := range customers {
		c.ID = uuid.New().String()
		c.CreatedAt = day("2025-10-01")
		c.UpdatedAt = c.CreatedAt
		if err := st.Customers.Create(&c.Customer); err != nil {
			return err
		}
		idByName[c.Name] = c.ID
	}

	services := []entity.Service{
		{Name: "GST Registration", Description: "Complete GST registration and filing services", Category: "Tax", Price: amt(5000), Status: entity.ServiceStatusActive},
		{Name: "Income Tax Filing", Description: "Individual and business tax filing", Category: "Tax", Price: amt(3000), Status: entity.ServiceStatusActive},
		{Name: "Audit Services", Description: "Statutory and internal audit services", Category: "Audit", Price: amt(15000), Status: entity.ServiceStatusActive},
		{Name: "Company Registration", Description: "Private limited company incorporation", Category: "Corporate", Price: amt(10000), Status: entity.ServiceStatusInactive},
		{Name: "Accounting Services", Description: "Monthly bookkeeping and accounting", Category: "Accounting", Price: amt(8000), Status: entity.ServiceStatusActive},
	}
	for i := range services {
		services[i].ID = uuid.New().String()
		services[i].CreatedAt = day("2025-10-01")
		services[i].UpdatedAt = services[i].CreatedAt
		if err := st.Services.Create(&services[i]); err != nil {
			return err
		}
	}

	gst := amt(18)
	quotations := []entity.Quotation{
		{QuotationNo: "QT-2025-001", CustomerID: idByName["Rajesh Kumar"], Date: day("2025-11-01"),
			Services: []string{"GST Registration", "Income Tax Filing"},
			SubTotal: amt(8000), TaxRate: gst, Total: amt(9440), Status: entity.QuotationStatusSent},
		{QuotationNo: "QT-2025-002", CustomerID: idByName["Priya Sharma"], Date: day("2025-11-05"),
			Services: []string{"Audit Services"},
			SubTotal: amt(15000), TaxRate: gst, Total: amt(17700), Status: entity.QuotationStatusAccepted},
		{QuotationNo: "QT-2025-003", CustomerID: idByName["Tech Solutions Ltd"], Date: day("2025-11-08"),
			Services: []string{"Company Registration", "Accounting Services"},
			SubTotal: amt(18000), TaxRate: gst, Total: amt(21240), Status: entity.QuotationStatusDraft},
	}
	for i := range quotations {
		quotations[i].ID = uuid.New().String()
		quotations[i].CreatedAt = quotations[i].Date
		quotations[i].UpdatedAt = quotations[i].Date
		if err := st.Quotations.Create(&quotations[i]); err != nil {
			return err
		}
	}

	invoices := []entity.Invoice{
		{InvoiceNo: "INV-2025-001", CustomerID: idByName["Rajesh Kumar"], Date: day("2025-11-01"),
			DueDate: day("2025-11-15"), Amount: amt(9440), AmountPaid: amt(9440), Status: entity.InvoiceStatusPaid},
		{InvoiceNo: "INV-2025-002", CustomerID: idByName["Priya Sharma"], Date: day("2025-11-05"),
			DueDate: day("2025-11-20"), Amount: amt(17700), AmountPaid: decimal.Zero, Status: entity.InvoiceStatusPending},
		{InvoiceNo: "INV-2025-003", CustomerID: idByName["Tech Solutions Ltd"], Date: day("2025-10-25"),
			DueDate: day("2025-11-08"), Amount: amt(21240), AmountPaid: decimal.Zero, Status: entity.InvoiceStatusPending},
		{InvoiceNo: "INV-2025-004", CustomerID: idByName["Global Enterprises"], Date: day("2025-11-06"),
			DueDate: day("2025-11-21"), Amount: amt(12500), AmountPaid: amt(6250), Status: entity.InvoiceStatusPartial},
	}
	for i := range invoices {
		invoices[i].ID = uuid.New().String()
		invoices[i].CreatedAt = invoices[i].Date
		invoices[i].UpdatedAt = invoices[i].Date
		if err := st.Invoices.Create(&invoices[i]); err != nil {
			return err
		}
	}

	payments := []entity.Payment{
		{InvoiceID: invoices[0].ID, CustomerID: invoices[0].CustomerID, Amount: amt(9440),
			Date: day("2025-11-08"), Reference: "NEFT/UTR2511089912"},
		{InvoiceID: invoices[3].ID, CustomerID: invoices[3].CustomerID, Amount: amt(6250),
			Date: day("2025-11-06"), Reference: "CHQ 004512"},
	}
	for i := range payments {
		payments[i].ID = uuid.New().String()
		payments[i].CreatedAt = payments[i].Date
		if err := st.Payments.Create(&payments[i]); err != nil {
			return err
		}
	}

	// Ledger balances include history that predates the seeded documents
	// (e.g. Tech Solutions' earlier payments), so the totals are seeded as
	// fixtures rather than recomputed from the invoices above. The
	// outstanding identity still holds for every row.
	type seedLedger struct {
		name                        string
		opening, invoices, payments int64
		last                        string
	}
	ledgers := []seedLedger{
		{"Rajesh Kumar", 5000, 9440, 9440, "2025-11-08"},
		{"Priya Sharma", 0, 17700, 0, "2025-11-05"},
		{"Tech Solutions Ltd", 10000, 21240, 15000, "2025-10-25"},
		{"Global Enterprises", 0, 12500, 6250, "2025-11-06"},
		{"Sunrise Industries", 2000, 8500, 10500, "2025-11-07"},
	}
	for _, l := range ledgers {
		entry := entity.LedgerEntry{
			ID:              uuid.New().String(),
			CustomerID:      idByName[l.name],
			OpeningBalance:  amt(l.opening),
			TotalInvoices:   amt(l.invoices),
			TotalPayments:   amt(l.payments),
			LastTransaction: day(l.last),
			CreatedAt:       day("2025-10-01"),
			UpdatedAt:       day(l.last),
		}
		entry.Recalculate()
		if err := st.Ledgers.Create(&entry); err != nil {
			return err
		}
	}

	// Continue the document sequences where the fixtures stop.
	settings, err := st.Settings.Get()
	if err != nil {
		return err
	}
	settings.SequenceYear = 2025
	settings.NextInvoiceSeq = 5
	settings.NextQuotationSeq = 4
	if err := st.Settings.Update(settings); err != nil {
		return err
	}

	// Default operator so the console is usable straight away.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return st.Users.Create(&entity.User{
		ID:           uuid.New().String(),
		Email:        "admin@csaassociates.com",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    day("2025-10-01"),
		UpdatedAt:    day("2025-10-01"),
	})
}
