package handler

import (
	"caseflow/internal/billing/models"
)

// EligibilityResponse is the HTTP response for payment-eligibility checks.
// Details is nil, a QualifyingDetails, or a DiagnosticsDetails depending on
// the verdict. Callers present Message/Details to staff; raw store errors
// never reach this response.
type EligibilityResponse struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// QualifyingDetails is attached when the client qualifies.
type QualifyingDetails struct {
	InvoiceID         string `json:"invoice_id"`
	InvoiceNumber     string `json:"invoice_number"`
	PaymentType       string `json:"payment_type"`
	InstallmentNumber int    `json:"installment_number,omitempty"`
	InstallmentAmount int64  `json:"installment_amount,omitempty"`
	TotalAmount       int64  `json:"total_amount"`
	PaidAmount        int64  `json:"paid_amount"`
	RemainingAmount   int64  `json:"remaining_amount,omitempty"`
}

// DiagnosticsDetails is attached when no invoice qualifies.
type DiagnosticsDetails struct {
	TotalInvoices int                 `json:"total_invoices"`
	Invoices      []InvoiceProjection `json:"invoices"`
}

// InvoiceProjection is one invoice's slice of the failure diagnostics.
type InvoiceProjection struct {
	InvoiceNumber string `json:"invoice_number"`
	Status        string `json:"status"`
	TotalAmount   int64  `json:"total_amount"`
	PaidAmount    int64  `json:"paid_amount"`
	IsInstallment bool   `json:"is_installment"`
}

// FromResult converts a domain EligibilityResult to an HTTP response.
func FromResult(result *models.EligibilityResult) *EligibilityResponse {
	resp := &EligibilityResponse{
		IsValid: result.Eligible,
		Message: result.Message,
	}
	switch {
	case result.Qualifying != nil:
		q := result.Qualifying
		resp.Details = &QualifyingDetails{
			InvoiceID:         q.InvoiceID.String(),
			InvoiceNumber:     q.InvoiceNumber,
			PaymentType:       string(q.PaymentType),
			InstallmentNumber: q.InstallmentNumber,
			InstallmentAmount: q.InstallmentAmount,
			TotalAmount:       q.TotalAmount,
			PaidAmount:        q.PaidAmount,
			RemainingAmount:   q.RemainingAmount,
		}
	case result.Diagnostics != nil:
		d := result.Diagnostics
		invoices := make([]InvoiceProjection, 0, len(d.Invoices))
		for _, inv := range d.Invoices {
			invoices = append(invoices, InvoiceProjection{
				InvoiceNumber: inv.InvoiceNumber,
				Status:        string(inv.Status),
				TotalAmount:   inv.TotalAmount,
				PaidAmount:    inv.PaidAmount,
				IsInstallment: inv.IsInstallment,
			})
		}
		resp.Details = &DiagnosticsDetails{
			TotalInvoices: d.TotalInvoices,
			Invoices:      invoices,
		}
	}
	return resp
}

// SummaryResponse is the HTTP response for payment summaries.
type SummaryResponse struct {
	ClientID              string `json:"client_id"`
	TotalInvoices         int    `json:"total_invoices"`
	FullyPaidInvoices     int    `json:"fully_paid_invoices"`
	PartiallyPaidInvoices int    `json:"partially_paid_invoices"`
	UnpaidInvoices        int    `json:"unpaid_invoices"`
	OverdueInvoices       int    `json:"overdue_invoices"`
	InstallmentInvoices   int    `json:"installment_invoices"`
	TotalAmount           int64  `json:"total_amount"`
	TotalPaidAmount       int64  `json:"total_paid_amount"`
	TotalRemainingAmount  int64  `json:"total_remaining_amount"`
	CanCreateCase         bool   `json:"can_create_case"`
	Reason                string `json:"reason"`
}

// FromSummary converts a domain PaymentSummary to an HTTP response.
func FromSummary(summary *models.PaymentSummary) *SummaryResponse {
	return &SummaryResponse{
		ClientID:              summary.ClientID.String(),
		TotalInvoices:         summary.TotalInvoices,
		FullyPaidInvoices:     summary.FullyPaidInvoices,
		PartiallyPaidInvoices: summary.PartiallyPaidInvoices,
		UnpaidInvoices:        summary.UnpaidInvoices,
		OverdueInvoices:       summary.OverdueInvoices,
		InstallmentInvoices:   summary.InstallmentInvoices,
		TotalAmount:           summary.TotalAmount,
		TotalPaidAmount:       summary.TotalPaidAmount,
		TotalRemainingAmount:  summary.TotalRemainingAmount,
		CanCreateCase:         summary.CanCreateCase,
		Reason:                summary.Reason,
	}
}
