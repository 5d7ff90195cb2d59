package domain

// Project event types published to the restoration:project-events stream.
const (
	EventProjectCreated = "project.created"
	EventProjectUpdated = "project.updated"
	EventProjectDeleted = "project.deleted"
)

// ProjectEventsStream is the Redis stream carrying project change events.
const ProjectEventsStream = "restoration:project-events"

// ProjectEvent is the payload written to the project events stream.
type ProjectEvent struct {
	Type      string `json:"type"`
	ProjectID int64  `json:"project_id"`
}

// StreamMessage is a raw message read from a Redis stream consumer group.
type StreamMessage struct {
	ID   string
	Data string
}
