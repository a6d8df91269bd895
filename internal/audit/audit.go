package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Actions recorded against the audit stream.
const (
	ActionUserRegistered  = "user.registered"
	ActionUserLoggedIn    = "user.logged_in"
	ActionDocumentCreated = "document.created"
	ActionDocumentUpdated = "document.updated"
	ActionDocumentDeleted = "document.deleted"
)

// Event is one append-only audit record. Events are advisory telemetry, not
// a consistency mechanism; losing one must never fail the user's request.
type Event struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Action   string    `json:"action"`
	EntityID string    `json:"entity_id,omitempty"`
	At       time.Time `json:"at"`
}

// NewEvent stamps an event with an id and the current time.
func NewEvent(userID, action, entityID string) Event {
	return Event{
		ID:       uuid.NewString(),
		UserID:   userID,
		Action:   action,
		EntityID: entityID,
		At:       time.Now().UTC(),
	}
}

// Publisher delivers audit events somewhere durable.
type Publisher interface {
	Publish(ctx context.Context, event Event)
	Close()
}

// Noop drops events; used when no brokers are configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) {}
func (Noop) Close()                         {}
