package types

import (
	"encoding/json"
	"fmt"
)

// wireMessage is the JSON wire form of a Message. Content is either a
// JSON string or an array whose elements are strings or objects,
// matching the content shapes produced by chat model providers.
type wireMessage struct {
	Role     string          `json:"role"`
	Name     string          `json:"name,omitempty"`
	Content  json.RawMessage `json:"content"`
	Metadata map[string]any  `json:"metadata,omitempty"`
}

// MarshalJSON encodes the message in its wire form: plain text content
// as a JSON string, block content as a JSON array.
func (m Message) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var content any
	switch c := m.Content.(type) {
	case Text:
		content = string(c)
	case Blocks:
		blocks := make([]any, len(c))
		for i, b := range c {
			blocks[i] = b
		}
		content = blocks
	}
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireMessage{
		Role:     string(m.Role),
		Name:     m.Name,
		Content:  raw,
		Metadata: m.Metadata,
	})
}

// UnmarshalJSON decodes a message from its wire form. Malformed
// content shapes and unrecognized roles surface as
// ErrorTypeInvalidInput.
func (m *Message) UnmarshalJSON(data []byte) error {
	var wire wireMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return NewMessageError(ErrorTypeInvalidInput, "malformed message", err)
	}
	content, err := decodeContent(wire.Content)
	if err != nil {
		return err
	}
	decoded := Message{
		Role:     Role(wire.Role),
		Name:     wire.Name,
		Content:  content,
		Metadata: wire.Metadata,
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*m = decoded
	return nil
}

func decodeContent(raw json.RawMessage) (Content, error) {
	if len(raw) == 0 {
		return nil, NewMessageError(ErrorTypeInvalidInput, "message content is missing", nil)
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return Text(text), nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, NewMessageError(ErrorTypeInvalidInput, "content must be a string or an array of blocks", err)
	}
	blocks := make(Blocks, 0, len(elems))
	for i, elem := range elems {
		block, err := decodeBlock(elem)
		if err != nil {
			return nil, NewMessageError(ErrorTypeInvalidInput, fmt.Sprintf("invalid content block at index %d", i), err)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func decodeBlock(raw json.RawMessage) (Block, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return StringBlock(text), nil
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("block must be a string or an object: %w", err)
	}
	return ObjectBlock(obj), nil
}
