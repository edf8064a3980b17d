package audit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "caseflow/pkg/domain"
)

func TestEventJSON(t *testing.T) {
	clientID := id.ClientID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))
	event := Event{
		Action:    ActionEligibilityEvaluated,
		Timestamp: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		ClientID:  clientID,
		Decision:  "eligible",
		Reason:    "Invoice INV-1 is paid in full.",
		RequestID: "req-123",
	}

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	// The client ID must serialize as its UUID string, not a byte array;
	// consumers correlate a client's trail by this field.
	assert.Contains(t, string(payload), `"client_id":"11111111-2222-3333-4444-555555555555"`)
	assert.Contains(t, string(payload), `"action":"eligibility_evaluated"`)

	var decoded Event
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, event, decoded)
}

func TestEventJSON_OmitsEmptyFields(t *testing.T) {
	payload, err := json.Marshal(Event{Action: ActionSummaryGenerated})
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "decision")
	assert.NotContains(t, string(payload), "reason")
	assert.NotContains(t, string(payload), "request_id")
}
