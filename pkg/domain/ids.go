// Package domain holds the typed identifiers shared across modules. Distinct
// uuid-backed types keep a client ID from ever being passed where an invoice
// ID is expected.
package domain

import (
	"github.com/google/uuid"

	dErrors "caseflow/pkg/domain-errors"
)

// ClientID identifies a client the firm may open cases against.
type ClientID uuid.UUID

// InvoiceID identifies an invoice in the ledger.
type InvoiceID uuid.UUID

// InstallmentID identifies a single installment-schedule entry.
type InstallmentID uuid.UUID

func (id ClientID) String() string      { return uuid.UUID(id).String() }
func (id InvoiceID) String() string     { return uuid.UUID(id).String() }
func (id InstallmentID) String() string { return uuid.UUID(id).String() }

func (id ClientID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id InvoiceID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// Defined types do not inherit uuid.UUID's text marshaling, so without these
// the IDs serialize as raw byte arrays in JSON bodies, audit events, and
// slog attrs.

func (id ClientID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id InvoiceID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }
func (id InstallmentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ClientID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

func (id *InvoiceID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

func (id *InstallmentID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// ParseClientID parses and validates a client ID from its string form.
func ParseClientID(s string) (ClientID, error) {
	u, err := parseUUID(s, "client id")
	return ClientID(u), err
}

// ParseInvoiceID parses and validates an invoice ID from its string form.
func ParseInvoiceID(s string) (InvoiceID, error) {
	u, err := parseUUID(s, "invoice id")
	return InvoiceID(u), err
}

// parseUUID enforces the shared invariant: IDs must be valid, non-empty,
// non-nil UUIDs.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" must not be the nil UUID")
	}
	return u, nil
}
