package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// SendMessage runs one conversation turn: resolve the session, call the
	// generator with the normalized history, persist both turns, return the
	// reply and the session token.
	SendMessage(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)
}
