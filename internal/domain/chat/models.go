package chat

import "fmt"

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a support-chat conversation. The full transcript
// is resupplied by the caller on every request; the server keeps no
// conversation memory.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Validate rejects messages with an unknown role or empty content.
func (m Message) Validate() error {
	switch m.Role {
	case RoleSystem, RoleUser, RoleAssistant:
	default:
		return fmt.Errorf("invalid message role %q", m.Role)
	}
	if m.Content == "" {
		return fmt.Errorf("empty message content")
	}
	return nil
}

// HasSystemMessage reports whether the transcript already carries a system
// prompt.
func HasSystemMessage(msgs []Message) bool {
	for _, m := range msgs {
		if m.Role == RoleSystem {
			return true
		}
	}
	return false
}
