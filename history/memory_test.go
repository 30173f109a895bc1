package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teilomillet/msgkit/types"
	"github.com/teilomillet/msgkit/utils"
)

func newTestLogger() *utils.MockLogger {
	logger := &utils.MockLogger{}
	logger.On("Debug", "Appended message to session", mock.Anything).Return()
	logger.On("Debug", "Removed message from session", mock.Anything).Return()
	logger.On("Debug", "Cleared session", mock.Anything).Return()
	return logger
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	t.Run("NewMemoryStore", func(t *testing.T) {
		store, err := NewMemoryStore(100, "gpt-4o-mini", logger)
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("Append and List", func(t *testing.T) {
		store, _ := NewMemoryStore(0, "gpt-4o-mini", logger)
		require.NoError(t, store.Append(ctx, "s1", types.NewHumanMessage("Hello")))
		require.NoError(t, store.Append(ctx, "s1", types.NewAIMessage("Hi there!")))

		messages, err := store.List(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, types.RoleHuman, messages[0].Role)
		assert.Equal(t, types.RoleAI, messages[1].Role)
	})

	t.Run("sessions are independent", func(t *testing.T) {
		store, _ := NewMemoryStore(0, "gpt-4o-mini", logger)
		require.NoError(t, store.Append(ctx, "a", types.NewHumanMessage("for a")))
		require.NoError(t, store.Append(ctx, "b", types.NewHumanMessage("for b")))

		messages, err := store.List(ctx, "a")
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, types.Text("for a"), messages[0].Content)
	})

	t.Run("unknown session lists empty", func(t *testing.T) {
		store, _ := NewMemoryStore(0, "gpt-4o-mini", logger)
		messages, err := store.List(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("invalid message is rejected", func(t *testing.T) {
		store, _ := NewMemoryStore(0, "gpt-4o-mini", logger)
		err := store.Append(ctx, "s1", types.Message{Role: "robot", Content: types.Text("beep")})
		require.Error(t, err)
	})

	t.Run("Truncate", func(t *testing.T) {
		store, _ := NewMemoryStore(10, "gpt-4o-mini", logger)
		require.NoError(t, store.Append(ctx, "s1", types.NewHumanMessage("This is a long message that exceeds the token limit")))
		require.NoError(t, store.Append(ctx, "s1", types.NewAIMessage("Short reply")))

		messages, err := store.List(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, types.RoleAI, messages[0].Role)
	})

	t.Run("Clear", func(t *testing.T) {
		store, _ := NewMemoryStore(0, "gpt-4o-mini", logger)
		require.NoError(t, store.Append(ctx, "s1", types.NewHumanMessage("Hello")))
		require.NoError(t, store.Clear(ctx, "s1"))

		messages, err := store.List(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("ListMerged collapses runs", func(t *testing.T) {
		store, _ := NewMemoryStore(0, "gpt-4o-mini", logger)
		require.NoError(t, store.Append(ctx, "s1", types.NewHumanMessage("first")))
		require.NoError(t, store.Append(ctx, "s1", types.NewHumanMessage("second")))
		require.NoError(t, store.Append(ctx, "s1", types.NewAIMessage("reply")))

		messages, err := store.ListMerged(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, types.Text("first\nsecond"), messages[0].Content)
	})

	t.Run("listed messages do not alias the store", func(t *testing.T) {
		store, _ := NewMemoryStore(0, "gpt-4o-mini", logger)
		msg := types.Message{Role: types.RoleAI, Content: types.Text("x"), Metadata: map[string]any{"count": 1}}
		require.NoError(t, store.Append(ctx, "s1", msg))

		listed, err := store.List(ctx, "s1")
		require.NoError(t, err)
		listed[0].Metadata["count"] = 99

		again, err := store.List(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 1, again[0].Metadata["count"])
	})

	logger.AssertExpectations(t)
}
