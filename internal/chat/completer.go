package chat

import (
	"context"

	domainchat "cricket-data-service/internal/domain/chat"
)

// Completer produces one assistant reply for a full conversation
// transcript.
type Completer interface {
	Complete(ctx context.Context, msgs []domainchat.Message) (string, error)
	Name() string
}
