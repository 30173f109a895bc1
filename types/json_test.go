package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageJSON(t *testing.T) {
	t.Run("text content encodes as a string", func(t *testing.T) {
		data, err := json.Marshal(NewHumanMessage("hi"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"role":"human","content":"hi"}`, string(data))
	})

	t.Run("block content encodes as an array", func(t *testing.T) {
		msg := Message{Role: RoleAI, Content: Blocks{
			StringBlock("hello"),
			ObjectBlock{"type": "text", "text": "world"},
		}}
		data, err := json.Marshal(msg)
		require.NoError(t, err)
		assert.JSONEq(t, `{"role":"ai","content":["hello",{"type":"text","text":"world"}]}`, string(data))
	})

	t.Run("string content decodes to Text", func(t *testing.T) {
		var msg Message
		require.NoError(t, json.Unmarshal([]byte(`{"role":"human","content":"hi","metadata":{"id":"m1"}}`), &msg))
		assert.Equal(t, RoleHuman, msg.Role)
		assert.Equal(t, Text("hi"), msg.Content)
		assert.Equal(t, "m1", msg.Metadata["id"])
	})

	t.Run("array content decodes to Blocks", func(t *testing.T) {
		var msg Message
		require.NoError(t, json.Unmarshal([]byte(`{"role":"tool","name":"search","content":["a",{"type":"text","text":"b"}]}`), &msg))
		assert.Equal(t, "search", msg.Name)
		require.IsType(t, Blocks{}, msg.Content)
		blocks := msg.Content.(Blocks)
		assert.Equal(t, StringBlock("a"), blocks[0])
		assert.Equal(t, ObjectBlock{"type": "text", "text": "b"}, blocks[1])
	})

	t.Run("unrecognized role is rejected", func(t *testing.T) {
		var msg Message
		err := json.Unmarshal([]byte(`{"role":"robot","content":"beep"}`), &msg)
		require.Error(t, err)
		var msgErr *MessageError
		require.ErrorAs(t, err, &msgErr)
		assert.Equal(t, ErrorTypeInvalidInput, msgErr.Type)
	})

	t.Run("malformed content is rejected", func(t *testing.T) {
		var msg Message
		err := json.Unmarshal([]byte(`{"role":"human","content":42}`), &msg)
		require.Error(t, err)

		err = json.Unmarshal([]byte(`{"role":"human","content":[true]}`), &msg)
		require.Error(t, err)

		err = json.Unmarshal([]byte(`{"role":"human"}`), &msg)
		require.Error(t, err)
	})

	t.Run("marshal of invalid message fails", func(t *testing.T) {
		_, err := json.Marshal(Message{Role: "robot", Content: Text("beep")})
		require.Error(t, err)
	})
}

func TestMessageSchema(t *testing.T) {
	data, err := MessageSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "role")
	assert.Contains(t, props, "content")
	assert.Contains(t, props, "metadata")
}
