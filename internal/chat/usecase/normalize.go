package usecase

import (
	"fmt"

	"emoch-backend/internal/chat"
	"emoch-backend/internal/model"
	"emoch-backend/pkg/gemini"
)

// normalizeRole maps the client role vocabulary onto the generator
// vocabulary. The mapping is total over the closed Role enum; anything else
// is a hard error so a turn can never be silently dropped from the context
// sent to the generator.
func normalizeRole(r model.Role) (string, error) {
	switch r {
	case model.RoleUser:
		return gemini.RoleUser, nil
	case model.RoleAssistant:
		return gemini.RoleModel, nil
	default:
		return "", fmt.Errorf("%w: %q", chat.ErrUnknownRole, r)
	}
}
