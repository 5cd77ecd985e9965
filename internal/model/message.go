package model

// Role is the client-facing role vocabulary. Conversation history is always
// stored in this vocabulary; translation to the generator vocabulary happens
// only at the generator call boundary.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r belongs to the closed client vocabulary.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is one immutable turn of a conversation.
type Message struct {
	Role    Role
	Content string
}
