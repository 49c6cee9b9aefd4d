// Package lifecycle holds the status machines for quotations and invoices.
// All rules are pure: they inspect state and report a typed error, they
// never mutate the store themselves.
package lifecycle

import (
	"fmt"

	"github.com/csaassociates/ca-admin-api/internal/domain"
	"github.com/csaassociates/ca-admin-api/internal/domain/entity"
)

// quotationTransitions lists the allowed moves. Accepted and rejected have
// no outgoing edges: they are terminal.
var quotationTransitions = map[string][]string{
	entity.QuotationStatusDraft: {entity.QuotationStatusSent},
	entity.QuotationStatusSent:  {entity.QuotationStatusAccepted, entity.QuotationStatusRejected},
}

// TransitionQuotation validates the move from → to.
// Returns domain.ErrInvalidTransition when the edge does not exist.
func TransitionQuotation(from, to string) error {
	for _, next := range quotationTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: quotation %s -> %s", domain.ErrInvalidTransition, from, to)
}

// QuotationEditable reports whether the quotation may still be modified.
// Terminal quotations are frozen.
func QuotationEditable(status string) bool {
	return status == entity.QuotationStatusDraft || status == entity.QuotationStatusSent
}

// CanConvert checks the one-way conversion rule: only accepted quotations
// become invoices. The source quotation is never mutated by a conversion.
func CanConvert(q *entity.Quotation) error {
	if q.Status != entity.QuotationStatusAccepted {
		return fmt.Errorf("%w: cannot convert %s quotation %s to invoice",
			domain.ErrInvalidTransition, q.Status, q.QuotationNo)
	}
	return nil
}
