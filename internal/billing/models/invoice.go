package models

import (
	id "caseflow/pkg/domain"
)

// InvoiceStatus is the ledger's settlement state for an invoice. It stays a
// string type rather than a closed set so statuses added by the billing
// subsystem flow through unharmed: aggregation skips them instead of
// crashing (see PaymentSummary counters).
type InvoiceStatus string

const (
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusUnpaid        InvoiceStatus = "unpaid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
)

// Known reports whether the status is one of the four states this engine
// understands.
func (s InvoiceStatus) Known() bool {
	switch s {
	case InvoiceStatusPaid, InvoiceStatusPartiallyPaid, InvoiceStatusUnpaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// InstallmentStatus is the settlement state of a single installment. Only
// "paid" is semantically significant to eligibility.
type InstallmentStatus string

const (
	InstallmentStatusPaid   InstallmentStatus = "paid"
	InstallmentStatusUnpaid InstallmentStatus = "unpaid"
)

// Invoice is a read-only projection of a ledger invoice. The billing
// subsystem owns creation and mutation; this engine only observes snapshots.
//
// Invariants (held by the ledger, not re-validated here):
//   - Status is the single source of truth for "fully settled"
//   - PaidAmount + RemainingAmount == TotalAmount
//   - amounts are non-negative, in minor currency units
type Invoice struct {
	ID              id.InvoiceID
	ClientID        id.ClientID
	InvoiceNumber   string
	Status          InvoiceStatus
	TotalAmount     int64
	PaidAmount      int64
	RemainingAmount int64
	IsInstallment   bool
}

// Installment is one entry of an invoice's installment schedule. Number
// defines payment order; 1 is the first due.
type Installment struct {
	ID        id.InstallmentID
	InvoiceID id.InvoiceID
	Number    int
	Amount    int64
	Status    InstallmentStatus
}
