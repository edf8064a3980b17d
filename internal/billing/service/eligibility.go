package service

import (
	"context"
	"fmt"
	"time"

	"caseflow/internal/audit"
	"caseflow/internal/billing/models"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
)

// Evaluate decides whether the client may have a new case opened against
// them. A client qualifies if any invoice is paid in full, or if any
// installment invoice has its first installment paid.
//
// The result is a point-in-time snapshot, not a lock: ledger state can
// change between this read and a subsequent case-creation write. Callers
// needing that guarantee must re-validate inside their own transaction via
// EvaluateSnapshot, or enforce it with optimistic checks at write time.
//
// Ledger read failures are returned as unavailable errors with the stable
// "payment validation failed" prefix; they are never swallowed or retried.
func (s *Service) Evaluate(ctx context.Context, clientID id.ClientID) (*models.EligibilityResult, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Evaluate")
	defer span.End()
	start := time.Now()

	invoices, err := s.ledger.FindInvoicesByClient(ctx, clientID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "payment validation failed")
	}

	result, err := evaluateInvoices(invoices, func(invoiceID id.InvoiceID) ([]models.Installment, error) {
		installments, err := s.ledger.FindInstallmentsByInvoice(ctx, invoiceID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "payment validation failed")
		}
		return installments, nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveEvaluate(start)
	s.metrics.IncrementOutcome(outcomeLabels(result))
	s.emitVerdict(ctx, audit.ActionEligibilityEvaluated, clientID, decisionLabel(result.Eligible), result.Message)
	return result, nil
}

// Snapshot is a caller-supplied view of ledger state. Case-creation
// workflows fetch it inside the same transaction that writes the case
// record, closing the gap between eligibility check and case creation that
// the store-fetching Evaluate cannot close.
type Snapshot struct {
	// Invoices in insertion order.
	Invoices []models.Invoice
	// Installments per invoice, ascending by installment number. Invoices
	// absent from the map are treated as having empty schedules.
	Installments map[id.InvoiceID][]models.Installment
}

// EvaluateSnapshot applies the eligibility rules to a caller-supplied
// snapshot. Pure compute: no ledger reads, no metrics, no audit.
func (s *Service) EvaluateSnapshot(snap Snapshot) *models.EligibilityResult {
	result, _ := evaluateInvoices(snap.Invoices, func(invoiceID id.InvoiceID) ([]models.Installment, error) {
		return snap.Installments[invoiceID], nil
	})
	return result
}

// installmentSource lazily fetches an invoice's installment schedule,
// ascending by installment number.
type installmentSource func(invoiceID id.InvoiceID) ([]models.Installment, error)

// evaluateInvoices applies the eligibility rules over invoices in fetch
// order. Per invoice, in fixed priority:
//  1. full payment: status is "paid"
//  2. first installment: the schedule's head is installment #1 and it is paid
//
// The first qualifying invoice wins and later invoices are not examined. Any
// qualifying invoice is sufficient proof of eligibility; there is no notion
// of a "best" one. Schedules are only fetched for installment invoices.
func evaluateInvoices(invoices []models.Invoice, fetch installmentSource) (*models.EligibilityResult, error) {
	if len(invoices) == 0 {
		// Expected input, not a failure: clients without invoices simply
		// cannot have cases opened yet.
		return &models.EligibilityResult{Eligible: false, Message: models.MsgNoInvoices}, nil
	}

	for _, inv := range invoices {
		if inv.Status == models.InvoiceStatusPaid {
			return fullPaymentResult(inv), nil
		}
		if !inv.IsInstallment {
			continue
		}
		installments, err := fetch(inv.ID)
		if err != nil {
			return nil, err
		}
		if head, ok := firstInstallment(installments); ok && head.Status == models.InstallmentStatusPaid {
			return installmentResult(inv, head), nil
		}
		// An empty schedule or unpaid first installment is not failure yet;
		// a later invoice may still qualify.
	}

	return ineligibleResult(invoices), nil
}

// firstInstallment returns the schedule entry with installment number 1.
// Schedules arrive ascending, so only the head needs inspection; a schedule
// whose head is not #1 is missing its first installment and cannot qualify.
func firstInstallment(installments []models.Installment) (models.Installment, bool) {
	if len(installments) == 0 || installments[0].Number != 1 {
		return models.Installment{}, false
	}
	return installments[0], true
}

func fullPaymentResult(inv models.Invoice) *models.EligibilityResult {
	return &models.EligibilityResult{
		Eligible: true,
		Message:  fmt.Sprintf("Invoice %s is paid in full.", inv.InvoiceNumber),
		Qualifying: &models.QualifyingPayment{
			InvoiceID:     inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			PaymentType:   models.PaymentTypeFull,
			TotalAmount:   inv.TotalAmount,
			PaidAmount:    inv.PaidAmount,
		},
	}
}

func installmentResult(inv models.Invoice, head models.Installment) *models.EligibilityResult {
	return &models.EligibilityResult{
		Eligible: true,
		Message:  fmt.Sprintf("First installment of invoice %s is paid.", inv.InvoiceNumber),
		Qualifying: &models.QualifyingPayment{
			InvoiceID:         inv.ID,
			InvoiceNumber:     inv.InvoiceNumber,
			PaymentType:       models.PaymentTypeInstallment,
			InstallmentNumber: head.Number,
			InstallmentAmount: head.Amount,
			TotalAmount:       inv.TotalAmount,
			PaidAmount:        inv.PaidAmount,
			RemainingAmount:   inv.RemainingAmount,
		},
	}
}

// ineligibleResult carries per-invoice diagnostics so staff can see exactly
// why eligibility failed, not just that it did.
func ineligibleResult(invoices []models.Invoice) *models.EligibilityResult {
	projections := make([]models.InvoiceProjection, 0, len(invoices))
	for _, inv := range invoices {
		projections = append(projections, models.InvoiceProjection{
			InvoiceNumber: inv.InvoiceNumber,
			Status:        inv.Status,
			TotalAmount:   inv.TotalAmount,
			PaidAmount:    inv.PaidAmount,
			IsInstallment: inv.IsInstallment,
		})
	}
	return &models.EligibilityResult{
		Eligible: false,
		Message:  models.MsgNoQualifyingInvoice,
		Diagnostics: &models.Diagnostics{
			TotalInvoices: len(invoices),
			Invoices:      projections,
		},
	}
}

func outcomeLabels(result *models.EligibilityResult) (string, string) {
	basis := "none"
	switch {
	case result.Qualifying != nil:
		basis = string(result.Qualifying.PaymentType)
	case result.Diagnostics == nil:
		basis = "no_invoices"
	}
	return decisionLabel(result.Eligible), basis
}
