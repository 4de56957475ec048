package observability

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventValidateStart EventType = "validate_start"
	EventValidateDone  EventType = "validate_done"
)

// Direction tells an import call from an export call.
type Direction string

const (
	DirectionImport Direction = "import"
	DirectionExport Direction = "export"
)

// ValidationEvent describes one validation call.
type ValidationEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Direction Direction `json:"direction"`
	Version   string    `json:"version"`
	Source    string    `json:"source,omitempty"`

	// Set on EventValidateDone only.
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
	Kind     string        `json:"kind,omitempty"` // error kind, empty on success
	Path     string        `json:"path,omitempty"`
}

// Outcome is "success" or "failure".
func (e *ValidationEvent) Outcome() string {
	if e.Err != nil {
		return "failure"
	}
	return "success"
}

// LifecycleHooks defines callbacks for validation observability.
type LifecycleHooks struct {
	OnValidateStart func(context.Context, *ValidationEvent)
	OnValidateDone  func(context.Context, *ValidationEvent)
}

// Combine fans each event out to every set of hooks, in order.
func Combine(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnValidateStart: func(ctx context.Context, e *ValidationEvent) {
			for _, h := range hooks {
				if h.OnValidateStart != nil {
					h.OnValidateStart(ctx, e)
				}
			}
		},
		OnValidateDone: func(ctx context.Context, e *ValidationEvent) {
			for _, h := range hooks {
				if h.OnValidateDone != nil {
					h.OnValidateDone(ctx, e)
				}
			}
		},
	}
}
