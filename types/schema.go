package types

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// schemaMessage mirrors wireMessage with concrete field types so the
// reflector can describe the wire format. Content is left untyped
// because it is a union of string and block-array forms.
type schemaMessage struct {
	Role     string         `json:"role" jsonschema:"enum=system,enum=human,enum=ai,enum=tool,enum=function"`
	Name     string         `json:"name,omitempty"`
	Content  any            `json:"content" jsonschema:"oneof_type=string;array"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// MessageSchema returns the JSON schema of the message wire format.
// Consumers can use it to validate serialized conversations before
// handing them to the merger.
func MessageSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&schemaMessage{})
	return json.MarshalIndent(schema, "", "  ")
}
