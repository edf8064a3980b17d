// Package service implements the payment-eligibility engine: deciding
// whether a client may have a new case opened against them, and aggregating
// their invoices into a reporting summary. The engine only reads ledger
// state; invoices and installment schedules are created and mutated
// exclusively by the billing subsystem.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"caseflow/internal/audit"
	"caseflow/internal/billing/metrics"
	"caseflow/internal/billing/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/requestcontext"
)

// LedgerStore is the read-only view of persisted financial records. The
// ordering contract matters: eligibility short-circuits on the first
// qualifying invoice in fetch order, so implementations must return stable,
// documented orderings.
type LedgerStore interface {
	// FindInvoicesByClient returns the client's invoices in insertion order.
	// An unknown client yields an empty slice, not an error.
	FindInvoicesByClient(ctx context.Context, clientID id.ClientID) ([]models.Invoice, error)

	// FindInstallmentsByInvoice returns the invoice's installment schedule
	// ordered by ascending installment number.
	FindInstallmentsByInvoice(ctx context.Context, invoiceID id.InvoiceID) ([]models.Installment, error)
}

// Service evaluates payment eligibility and aggregates payment summaries.
// It holds no state between calls; every operation is a self-contained
// read-and-compute, safe for concurrent use.
type Service struct {
	ledger         LedgerStore
	logger         *slog.Logger
	auditPublisher audit.Publisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(ledger LedgerStore, opts ...Option) (*Service, error) {
	if ledger == nil {
		return nil, errors.New("ledger store is required")
	}
	s := &Service{
		ledger: ledger,
		tracer: otel.Tracer("caseflow/billing"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// emitVerdict logs the verdict and forwards it to the audit trail. Audit
// delivery failures are logged and swallowed: a verdict must never fail
// because its audit record could not be written.
func (s *Service) emitVerdict(ctx context.Context, action audit.Action, clientID id.ClientID, decision string, reason string) {
	requestID := requestcontext.RequestID(ctx)
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(action),
			"client_id", clientID,
			"decision", decision,
			"reason", reason,
			"request_id", requestID,
			"log_type", "audit",
		)
	}
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Action:    action,
		Timestamp: time.Now(),
		ClientID:  clientID,
		Decision:  decision,
		Reason:    reason,
		RequestID: requestID,
	})
	if err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "audit emit failed",
			"action", action,
			"client_id", clientID,
			"error", err,
		)
	}
}

func decisionLabel(eligible bool) string {
	if eligible {
		return "eligible"
	}
	return "ineligible"
}
