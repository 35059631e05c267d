package events

import (
	"encoding/json"
	"time"
)

const ResourceChangesTopic = "facepay.resource.changes.v1"

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ResourceChangedEvent is published after every committed write to a
// resource. EventType is "<resource>_<action>", e.g. employee_created.
type ResourceChangedEvent struct {
	EventType  string          `json:"event_type"`
	Resource   string          `json:"resource"`
	ResourceID string          `json:"resource_id"`
	Action     string          `json:"action"`
	Actor      string          `json:"actor,omitempty"`
	ActorEmail string          `json:"actor_email,omitempty"`
	RequestID  string          `json:"request_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data,omitempty"`
}

func EventType(resource, action string) string {
	return resource + "_" + action
}
