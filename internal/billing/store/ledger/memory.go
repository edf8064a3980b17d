package ledger

import (
	"context"
	"sort"
	"sync"

	"caseflow/internal/billing/models"
	id "caseflow/pkg/domain"
)

// InMemory is a mutex-guarded ledger store used by tests and broker-less
// development setups. Invoices keep insertion order per client; installment
// schedules are returned ascending by installment number, matching the
// ordering contract of the postgres store.
type InMemory struct {
	mu           sync.RWMutex
	invoices     map[id.ClientID][]models.Invoice
	installments map[id.InvoiceID][]models.Installment
}

func NewInMemory() *InMemory {
	return &InMemory{
		invoices:     make(map[id.ClientID][]models.Invoice),
		installments: make(map[id.InvoiceID][]models.Installment),
	}
}

// AddInvoice records an invoice at the end of its client's fetch order.
func (m *InMemory) AddInvoice(invoice models.Invoice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices[invoice.ClientID] = append(m.invoices[invoice.ClientID], invoice)
}

// AddInstallment records a schedule entry, keeping the schedule sorted by
// installment number.
func (m *InMemory) AddInstallment(installment models.Installment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	schedule := append(m.installments[installment.InvoiceID], installment)
	sort.SliceStable(schedule, func(i, j int) bool {
		return schedule[i].Number < schedule[j].Number
	})
	m.installments[installment.InvoiceID] = schedule
}

func (m *InMemory) FindInvoicesByClient(_ context.Context, clientID id.ClientID) ([]models.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := m.invoices[clientID]
	out := make([]models.Invoice, len(stored))
	copy(out, stored)
	return out, nil
}

func (m *InMemory) FindInstallmentsByInvoice(_ context.Context, invoiceID id.InvoiceID) ([]models.Installment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := m.installments[invoiceID]
	out := make([]models.Installment, len(stored))
	copy(out, stored)
	return out, nil
}
