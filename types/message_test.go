package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleSystem, RoleHuman, RoleAI, RoleTool, RoleFunction} {
		assert.True(t, role.Valid(), string(role))
	}
	assert.False(t, Role("robot").Valid())
	assert.False(t, Role("").Valid())
}

func TestMessageValidate(t *testing.T) {
	t.Run("valid text message", func(t *testing.T) {
		assert.NoError(t, NewHumanMessage("hi").Validate())
	})

	t.Run("valid block message", func(t *testing.T) {
		msg := Message{Role: RoleAI, Content: Blocks{
			StringBlock("hello"),
			ObjectBlock{"type": "text", "text": "world"},
		}}
		assert.NoError(t, msg.Validate())
	})

	t.Run("empty text is valid", func(t *testing.T) {
		assert.NoError(t, NewHumanMessage("").Validate())
	})

	t.Run("empty block sequence is valid", func(t *testing.T) {
		msg := Message{Role: RoleAI, Content: Blocks{}}
		assert.NoError(t, msg.Validate())
	})

	t.Run("unrecognized role", func(t *testing.T) {
		err := Message{Role: "robot", Content: Text("beep")}.Validate()
		require.Error(t, err)
		var msgErr *MessageError
		require.ErrorAs(t, err, &msgErr)
		assert.Equal(t, ErrorTypeInvalidInput, msgErr.Type)
	})

	t.Run("nil content", func(t *testing.T) {
		err := Message{Role: RoleHuman}.Validate()
		require.Error(t, err)
	})

	t.Run("nil block", func(t *testing.T) {
		err := Message{Role: RoleHuman, Content: Blocks{StringBlock("ok"), nil}}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index 1")
	})
}

func TestMessageClone(t *testing.T) {
	original := Message{
		Role:     RoleAI,
		Name:     "assistant",
		Content:  Blocks{ObjectBlock{"type": "text", "text": "hi"}},
		Metadata: map[string]any{"count": 1},
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	clone.Metadata["count"] = 2
	clone.Content.(Blocks)[0].(ObjectBlock)["text"] = "changed"

	assert.Equal(t, 1, original.Metadata["count"])
	assert.Equal(t, "hi", original.Content.(Blocks)[0].(ObjectBlock)["text"])
}

func TestMessageText(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		assert.Equal(t, "hi", NewHumanMessage("hi").Text())
	})

	t.Run("blocks join text parts", func(t *testing.T) {
		msg := Message{Role: RoleAI, Content: Blocks{
			StringBlock("one"),
			ObjectBlock{"type": "text", "text": "two"},
			ObjectBlock{"type": "image_url", "image_url": "https://example.com/a.png"},
		}}
		assert.Equal(t, "one\ntwo", msg.Text())
	})

	t.Run("nil content", func(t *testing.T) {
		assert.Equal(t, "", Message{Role: RoleHuman}.Text())
	})
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, RoleSystem, NewSystemMessage("s").Role)
	assert.Equal(t, RoleHuman, NewHumanMessage("h").Role)
	assert.Equal(t, RoleAI, NewAIMessage("a").Role)

	tool := NewToolMessage("search", "result")
	assert.Equal(t, RoleTool, tool.Role)
	assert.Equal(t, "search", tool.Name)
}

func TestBlockKind(t *testing.T) {
	assert.Equal(t, "string", StringBlock("x").Kind())
	assert.Equal(t, "image_url", ObjectBlock{"type": "image_url"}.Kind())
	assert.Equal(t, "", ObjectBlock{"text": "no type"}.Kind())
}
