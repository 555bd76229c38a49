package domain

// ChatMessage is the provider-agnostic chat message shape exchanged between
// the conversation use case and the LLM integration.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat message roles understood by OpenAI-compatible completion APIs.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)
