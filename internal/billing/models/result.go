package models

import (
	id "caseflow/pkg/domain"
)

// PaymentType names the basis on which a client qualified for case creation.
type PaymentType string

const (
	PaymentTypeFull        PaymentType = "full"
	PaymentTypeInstallment PaymentType = "installment"
)

// Messages returned with eligibility verdicts. Staff-facing surfaces display
// these verbatim, so treat changes as user-visible.
const (
	MsgNoInvoices          = "No invoice found for this client. Please create an invoice first."
	MsgNoQualifyingInvoice = "Client must either pay the invoice in full or pay the first installment before case registration."
)

// QualifyingPayment is the evidence attached to a positive verdict: the first
// invoice, in fetch order, that satisfied an eligibility rule.
type QualifyingPayment struct {
	InvoiceID         id.InvoiceID
	InvoiceNumber     string
	PaymentType       PaymentType
	InstallmentNumber int   // set only for PaymentTypeInstallment
	InstallmentAmount int64 // set only for PaymentTypeInstallment
	TotalAmount       int64
	PaidAmount        int64
	RemainingAmount   int64 // set only for PaymentTypeInstallment
}

// InvoiceProjection is the per-invoice slice of a failure diagnostic, enough
// for staff to see why no invoice qualified.
type InvoiceProjection struct {
	InvoiceNumber string
	Status        InvoiceStatus
	TotalAmount   int64
	PaidAmount    int64
	IsInstallment bool
}

// Diagnostics explains a no-qualifying-invoice verdict invoice by invoice.
type Diagnostics struct {
	TotalInvoices int
	Invoices      []InvoiceProjection
}

// EligibilityResult is the verdict for one evaluation. Exactly one of
// Qualifying and Diagnostics is set when Eligible is true or false with
// invoices present; both are nil for the empty-invoice-set verdict.
//
// A result is a point-in-time snapshot of ledger state, not a lock: payments
// recorded (or reversed) after the evaluation are not reflected, and callers
// gating writes on it must re-validate inside their own transaction scope
// (see Service.EvaluateSnapshot).
type EligibilityResult struct {
	Eligible    bool
	Message     string
	Qualifying  *QualifyingPayment
	Diagnostics *Diagnostics
}

// PaymentSummary aggregates a client's invoices for reporting, with the
// eligibility verdict embedded. Totals are consistent with the invoice set
// observed during the summary's own read; the verdict comes from an
// independent read and may trail under concurrent mutation.
type PaymentSummary struct {
	ClientID              id.ClientID
	TotalInvoices         int
	FullyPaidInvoices     int
	PartiallyPaidInvoices int
	UnpaidInvoices        int
	OverdueInvoices       int
	InstallmentInvoices   int
	TotalAmount           int64
	TotalPaidAmount       int64
	TotalRemainingAmount  int64
	CanCreateCase         bool
	Reason                string
}
