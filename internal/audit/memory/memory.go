// Package memory provides an in-process audit sink, used in tests and in
// deployments without a Kafka cluster.
package memory

import (
	"context"
	"sync"

	"caseflow/internal/audit"
)

// Publisher records events in memory in emission order.
type Publisher struct {
	mu     sync.Mutex
	events []audit.Event
}

func New() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Emit(_ context.Context, event audit.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything emitted so far.
func (p *Publisher) Events() []audit.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]audit.Event, len(p.events))
	copy(out, p.events)
	return out
}
