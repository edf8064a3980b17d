package ledger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"caseflow/internal/billing/models"
	id "caseflow/pkg/domain"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemorySuite) TestFindInvoicesByClient() {
	clientID := id.ClientID(uuid.New())
	other := id.ClientID(uuid.New())

	s.Run("unknown client returns empty set", func() {
		invoices, err := s.store.FindInvoicesByClient(s.ctx, clientID)
		s.Require().NoError(err)
		s.Empty(invoices)
	})

	s.Run("preserves insertion order", func() {
		for _, number := range []string{"INV-1", "INV-2", "INV-3"} {
			s.store.AddInvoice(models.Invoice{
				ID:            id.InvoiceID(uuid.New()),
				ClientID:      clientID,
				InvoiceNumber: number,
				Status:        models.InvoiceStatusUnpaid,
			})
		}
		s.store.AddInvoice(models.Invoice{
			ID:            id.InvoiceID(uuid.New()),
			ClientID:      other,
			InvoiceNumber: "INV-X",
			Status:        models.InvoiceStatusPaid,
		})

		invoices, err := s.store.FindInvoicesByClient(s.ctx, clientID)
		s.Require().NoError(err)
		s.Require().Len(invoices, 3)
		s.Equal("INV-1", invoices[0].InvoiceNumber)
		s.Equal("INV-2", invoices[1].InvoiceNumber)
		s.Equal("INV-3", invoices[2].InvoiceNumber)
	})

	s.Run("returned slice is a copy", func() {
		invoices, err := s.store.FindInvoicesByClient(s.ctx, clientID)
		s.Require().NoError(err)
		invoices[0].InvoiceNumber = "mutated"

		again, err := s.store.FindInvoicesByClient(s.ctx, clientID)
		s.Require().NoError(err)
		s.Equal("INV-1", again[0].InvoiceNumber)
	})
}

func (s *InMemorySuite) TestFindInstallmentsByInvoice() {
	invoiceID := id.InvoiceID(uuid.New())

	s.Run("unknown invoice returns empty schedule", func() {
		installments, err := s.store.FindInstallmentsByInvoice(s.ctx, invoiceID)
		s.Require().NoError(err)
		s.Empty(installments)
	})

	s.Run("sorted ascending regardless of insertion order", func() {
		for _, number := range []int{3, 1, 2} {
			s.store.AddInstallment(models.Installment{
				ID:        id.InstallmentID(uuid.New()),
				InvoiceID: invoiceID,
				Number:    number,
				Amount:    1_000,
				Status:    models.InstallmentStatusUnpaid,
			})
		}

		installments, err := s.store.FindInstallmentsByInvoice(s.ctx, invoiceID)
		s.Require().NoError(err)
		s.Require().Len(installments, 3)
		s.Equal(1, installments[0].Number)
		s.Equal(2, installments[1].Number)
		s.Equal(3, installments[2].Number)
	})
}
