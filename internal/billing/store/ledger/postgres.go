package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"caseflow/internal/billing/models"
	id "caseflow/pkg/domain"
)

// Postgres reads ledger records from the billing database. The billing
// subsystem owns writes; this store is strictly read-only.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// FindInvoicesByClient returns the client's invoices in insertion order,
// pinned by (created_at, id) so the eligibility tie-break is reproducible
// across replicas.
func (p *Postgres) FindInvoicesByClient(ctx context.Context, clientID id.ClientID) ([]models.Invoice, error) {
	query := `
		SELECT id, client_id, invoice_number, status,
		       total_amount, paid_amount, remaining_amount, is_installment
		FROM invoices
		WHERE client_id = $1
		ORDER BY created_at, id
	`
	rows, err := p.pool.Query(ctx, query, uuid.UUID(clientID))
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		var (
			inv                 models.Invoice
			invoiceID, ownerUID uuid.UUID
			status              string
		)
		err := rows.Scan(
			&invoiceID,
			&ownerUID,
			&inv.InvoiceNumber,
			&status,
			&inv.TotalAmount,
			&inv.PaidAmount,
			&inv.RemainingAmount,
			&inv.IsInstallment,
		)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.ID = id.InvoiceID(invoiceID)
		inv.ClientID = id.ClientID(ownerUID)
		inv.Status = models.InvoiceStatus(status)
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}
	return invoices, nil
}

// FindInstallmentsByInvoice returns the invoice's schedule ascending by
// installment number.
func (p *Postgres) FindInstallmentsByInvoice(ctx context.Context, invoiceID id.InvoiceID) ([]models.Installment, error) {
	query := `
		SELECT id, invoice_id, installment_number, amount, status
		FROM installment_schedules
		WHERE invoice_id = $1
		ORDER BY installment_number
	`
	rows, err := p.pool.Query(ctx, query, uuid.UUID(invoiceID))
	if err != nil {
		return nil, fmt.Errorf("query installments: %w", err)
	}
	defer rows.Close()

	var installments []models.Installment
	for rows.Next() {
		var (
			entry             models.Installment
			entryID, ownerUID uuid.UUID
			status            string
		)
		err := rows.Scan(
			&entryID,
			&ownerUID,
			&entry.Number,
			&entry.Amount,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		entry.ID = id.InstallmentID(entryID)
		entry.InvoiceID = id.InvoiceID(ownerUID)
		entry.Status = models.InstallmentStatus(status)
		installments = append(installments, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate installments: %w", err)
	}
	return installments, nil
}
