package chat

// --- UseCase Inputs ---

type SendMessageInput struct {
	Message   string
	SessionID string // empty means start a new session
}

// --- UseCase Outputs ---

type SendMessageOutput struct {
	Reply     string
	SessionID string // the only state a caller must keep across turns
}
