package models

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// AssistantMessage is one message of the reflection-assistant transcript.
// The transcript is append-only and resettable to a single greeting.
type AssistantMessage struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
