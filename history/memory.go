package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/teilomillet/msgkit/merge"
	"github.com/teilomillet/msgkit/types"
	"github.com/teilomillet/msgkit/utils"
)

type entry struct {
	msg    types.Message
	tokens int
}

type session struct {
	entries     []entry
	totalTokens int
}

// MemoryStore is the in-process reference implementation of Store. It
// keeps each session's messages in memory and, when a token budget is
// set, drops the oldest messages of a session once its textual content
// exceeds the budget. All operations are thread-safe.
type MemoryStore struct {
	sessions  map[string]*session
	mutex     sync.Mutex
	maxTokens int                // Per-session token budget; 0 disables truncation
	encoding  *tiktoken.Tiktoken // Token encoder for the model
	logger    utils.Logger
}

// NewMemoryStore creates a MemoryStore. maxTokens is the per-session
// token budget (0 keeps everything); model names the tokenizer used to
// count a message's textual content.
func NewMemoryStore(maxTokens int, model string, logger utils.Logger) (*MemoryStore, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		logger.Warn("Failed to get encoding for model, defaulting to gpt-4o", "model", model, "error", err)
		encoding, err = tiktoken.EncodingForModel("gpt-4o")
		if err != nil {
			return nil, fmt.Errorf("failed to get default encoding: %v", err)
		}
	}

	return &MemoryStore{
		sessions:  make(map[string]*session),
		maxTokens: maxTokens,
		encoding:  encoding,
		logger:    logger,
	}, nil
}

// Append validates the message and adds a copy to the end of the
// session, truncating the session's oldest messages if the token
// budget is exceeded.
func (s *MemoryStore) Append(_ context.Context, sessionID string, msg types.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}

	tokens := len(s.encoding.Encode(msg.Text(), nil, nil))
	sess.entries = append(sess.entries, entry{msg: msg.Clone(), tokens: tokens})
	sess.totalTokens += tokens

	s.truncate(sessionID, sess)
	s.logger.Debug("Appended message to session", "session_id", sessionID, "role", string(msg.Role), "tokens", tokens, "total_tokens", sess.totalTokens)
	return nil
}

// truncate removes a session's oldest messages until its token total is
// within budget. The newest message always survives.
func (s *MemoryStore) truncate(sessionID string, sess *session) {
	if s.maxTokens <= 0 {
		return
	}
	for sess.totalTokens > s.maxTokens && len(sess.entries) > 1 {
		removed := sess.entries[0]
		sess.entries = sess.entries[1:]
		sess.totalTokens -= removed.tokens
		s.logger.Debug("Removed message from session", "session_id", sessionID, "role", string(removed.msg.Role), "tokens", removed.tokens, "total_tokens", sess.totalTokens)
	}
}

// List returns copies of the session's messages in append order.
func (s *MemoryStore) List(_ context.Context, sessionID string) ([]types.Message, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return []types.Message{}, nil
	}
	out := make([]types.Message, len(sess.entries))
	for i, e := range sess.entries {
		out[i] = e.msg.Clone()
	}
	return out, nil
}

// ListMerged returns the session's messages with consecutive same-role
// runs collapsed. This is the usual read path when the history feeds a
// model invocation.
func (s *MemoryStore) ListMerged(ctx context.Context, sessionID string, opts ...merge.Option) ([]types.Message, error) {
	messages, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return merge.Runs(messages, opts...)
}

// Clear removes the session and all its messages.
func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.sessions, sessionID)
	s.logger.Debug("Cleared session", "session_id", sessionID)
	return nil
}
