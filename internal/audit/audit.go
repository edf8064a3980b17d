// Package audit defines the events emitted when the engine renders a verdict
// that downstream workflows act on. Events are transport-agnostic so sinks
// (Kafka, in-memory) can fan out.
package audit

import (
	"context"
	"time"

	id "caseflow/pkg/domain"
)

// Action names an auditable occurrence.
type Action string

const (
	// ActionEligibilityEvaluated records a pass/fail eligibility verdict.
	ActionEligibilityEvaluated Action = "eligibility_evaluated"
	// ActionSummaryGenerated records a payment summary being produced.
	ActionSummaryGenerated Action = "payment_summary_generated"
)

// Event captures one verdict for the audit trail. Keep fields primitive; the
// Kafka sink serializes this as JSON.
type Event struct {
	Action    Action      `json:"action"`
	Timestamp time.Time   `json:"timestamp"`
	ClientID  id.ClientID `json:"client_id"`
	Decision  string      `json:"decision,omitempty"`
	Reason    string      `json:"reason,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Publisher delivers audit events to a sink. Implementations must tolerate
// concurrent Emit calls; delivery failures are the caller's to log, never to
// surface to end users.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}
