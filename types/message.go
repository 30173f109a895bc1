package types

import (
	"fmt"
	"strings"
)

// Role is the fixed discriminator of a message: who (or what) produced it.
type Role string

const (
	RoleSystem   Role = "system"
	RoleHuman    Role = "human"
	RoleAI       Role = "ai"
	RoleTool     Role = "tool"
	RoleFunction Role = "function"
)

// Valid reports whether r is a recognized message role.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleHuman, RoleAI, RoleTool, RoleFunction:
		return true
	}
	return false
}

// Message is a single message in a conversation. Messages are treated
// as immutable: operations in msgkit never mutate a Message they
// receive and deep-copy everything they return.
//
// Name is an optional identity tag distinguishing otherwise same-role
// messages (e.g. distinct tool callers); two messages with the same
// Role but different Names are never merged.
//
// Metadata is an open mapping for auxiliary fields (response metadata,
// usage counts, identifiers). It is carried through merges under the
// policy documented in the merge package.
type Message struct {
	Role     Role           // Role of the message sender (e.g., "system", "human", "ai", "tool")
	Name     string         // Optional identity tag within a role
	Content  Content        // Text or Blocks
	Metadata map[string]any // Additional provider-specific metadata
}

// Validate checks that the message has a recognized role and a
// well-formed content value. It returns a MessageError of type
// ErrorTypeInvalidInput on the first violation found.
func (m Message) Validate() error {
	if !m.Role.Valid() {
		return NewMessageError(ErrorTypeInvalidInput, fmt.Sprintf("unrecognized message role %q", string(m.Role)), nil)
	}
	switch c := m.Content.(type) {
	case Text:
	case Blocks:
		for i, b := range c {
			if b == nil {
				return NewMessageError(ErrorTypeInvalidInput, fmt.Sprintf("nil content block at index %d", i), nil)
			}
		}
	case nil:
		return NewMessageError(ErrorTypeInvalidInput, "message content is nil", nil)
	default:
		return NewMessageError(ErrorTypeInvalidInput, fmt.Sprintf("unsupported content type %T", m.Content), nil)
	}
	return nil
}

// Clone returns a deep copy of the message. The copy shares no maps or
// slices with the original.
func (m Message) Clone() Message {
	out := Message{
		Role:    m.Role,
		Name:    m.Name,
		Content: CloneContent(m.Content),
	}
	if m.Metadata != nil {
		out.Metadata = make(map[string]any, len(m.Metadata))
		for k, v := range m.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

// Text returns the textual content of the message: the string itself
// for plain content, or the text payloads of the blocks joined by
// newlines for structured content. Non-text blocks contribute nothing.
func (m Message) Text() string {
	switch c := m.Content.(type) {
	case Text:
		return string(c)
	case Blocks:
		var parts []string
		for _, b := range c {
			if t := BlockText(b); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

// NewSystemMessage creates a message with the system role and plain
// text content.
func NewSystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: Text(text)}
}

// NewHumanMessage creates a message with the human role and plain text
// content.
func NewHumanMessage(text string) Message {
	return Message{Role: RoleHuman, Content: Text(text)}
}

// NewAIMessage creates a message with the ai role and plain text
// content.
func NewAIMessage(text string) Message {
	return Message{Role: RoleAI, Content: Text(text)}
}

// NewToolMessage creates a message with the tool role, a caller name,
// and plain text content.
func NewToolMessage(name, text string) Message {
	return Message{Role: RoleTool, Name: name, Content: Text(text)}
}
