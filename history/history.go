// Package history defines the session store boundary: a keyed,
// append-only log of conversation messages. The merge core never
// touches a store directly; stores produce the ordered sequences the
// merger consumes.
package history

import (
	"context"

	"github.com/teilomillet/msgkit/types"
)

// Store maps a session identifier to an ordered, append-only sequence
// of messages. Implementations must be safe for concurrent use.
type Store interface {
	// Append adds a message to the end of the session's sequence,
	// creating the session if it does not exist.
	Append(ctx context.Context, sessionID string, msg types.Message) error

	// List returns the session's messages in append order. An unknown
	// session yields an empty sequence, not an error.
	List(ctx context.Context, sessionID string) ([]types.Message, error)

	// Clear removes the session and all its messages.
	Clear(ctx context.Context, sessionID string) error
}
