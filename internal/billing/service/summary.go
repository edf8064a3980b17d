package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"caseflow/internal/audit"
	"caseflow/internal/billing/models"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
)

// Summarize reduces the client's invoices into count and amount statistics
// and embeds the eligibility verdict for case creation.
//
// The aggregate totals and the embedded verdict come from two independent
// ledger reads, run concurrently; under concurrent mutation they can observe
// different snapshots. Without concurrent mutation the output is identical
// to a single shared read. Totals are always internally consistent with the
// invoice set observed by the summary's own read.
//
// Ledger read failures are returned as unavailable errors with the stable
// "failed to get payment summary" prefix; no partial summary is ever
// returned.
func (s *Service) Summarize(ctx context.Context, clientID id.ClientID) (*models.PaymentSummary, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Summarize")
	defer span.End()
	start := time.Now()

	var (
		invoices []models.Invoice
		verdict  *models.EligibilityResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = s.ledger.FindInvoicesByClient(gctx, clientID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to get payment summary")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		verdict, err = s.Evaluate(gctx, clientID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to get payment summary")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := buildSummary(clientID, invoices, verdict)

	s.metrics.ObserveSummarize(start)
	s.emitVerdict(ctx, audit.ActionSummaryGenerated, clientID, decisionLabel(summary.CanCreateCase), summary.Reason)
	return summary, nil
}

// buildSummary accumulates totals and counters over the invoice set. Pure
// compute over the snapshot passed in.
func buildSummary(clientID id.ClientID, invoices []models.Invoice, verdict *models.EligibilityResult) *models.PaymentSummary {
	summary := &models.PaymentSummary{
		ClientID:      clientID,
		TotalInvoices: len(invoices),
	}
	for _, inv := range invoices {
		summary.TotalAmount += inv.TotalAmount
		summary.TotalPaidAmount += inv.PaidAmount
		summary.TotalRemainingAmount += inv.RemainingAmount

		switch inv.Status {
		case models.InvoiceStatusPaid:
			summary.FullyPaidInvoices++
		case models.InvoiceStatusPartiallyPaid:
			summary.PartiallyPaidInvoices++
		case models.InvoiceStatusUnpaid:
			summary.UnpaidInvoices++
		case models.InvoiceStatusOverdue:
			summary.OverdueInvoices++
		default:
			// Statuses outside the four known values increment no counter:
			// aggregation must keep working when billing introduces new ones.
		}

		if inv.IsInstallment {
			summary.InstallmentInvoices++
		}
	}
	summary.CanCreateCase = verdict.Eligible
	summary.Reason = verdict.Message
	return summary
}
