// Package types contains the shared message data model used across the
// msgkit library. It helps avoid import cycles while providing common
// data structures.
package types

// Content is the payload of a message: either plain text or an ordered
// sequence of content blocks. The two forms are Text and Blocks; no
// other implementations exist.
type Content interface {
	content()
}

// Text is plain string content.
type Text string

func (Text) content() {}

// Blocks is structured content: an ordered sequence of content blocks.
type Blocks []Block

func (Blocks) content() {}

// Block is one unit of structured content. A block is either a bare
// string (StringBlock) or a structured object (ObjectBlock) carrying at
// least a "type" field. Blocks are opaque to msgkit: merging
// concatenates them verbatim and never interprets non-text payloads.
type Block interface {
	// Kind reports the block's type tag: "string" for a bare string
	// block, otherwise the value of the object's "type" field.
	Kind() string
}

// StringBlock is a content block that is a bare string.
type StringBlock string

func (StringBlock) Kind() string { return "string" }

// ObjectBlock is a structured content block, e.g. {"type": "text",
// "text": "..."} or an image or tool payload.
type ObjectBlock map[string]any

func (b ObjectBlock) Kind() string {
	if t, ok := b["type"].(string); ok {
		return t
	}
	return ""
}

// BlockText returns the textual payload of a block: the string itself for a
// StringBlock, the "text" field for an ObjectBlock of type "text", and
// "" otherwise.
func BlockText(b Block) string {
	switch blk := b.(type) {
	case StringBlock:
		return string(blk)
	case ObjectBlock:
		if blk.Kind() == "text" {
			if t, ok := blk["text"].(string); ok {
				return t
			}
		}
	}
	return ""
}

// NormalizeContent returns c as a block sequence: Text becomes a
// one-element sequence holding a StringBlock, Blocks is returned
// unchanged. Nil content normalizes to nil.
func NormalizeContent(c Content) Blocks {
	switch v := c.(type) {
	case Text:
		return Blocks{StringBlock(v)}
	case Blocks:
		return v
	default:
		return nil
	}
}

// CloneContent returns a copy of c that shares no mutable state with
// the original. Object blocks are copied one level deep; their values
// are treated as immutable payloads.
func CloneContent(c Content) Content {
	switch v := c.(type) {
	case Text:
		return v
	case Blocks:
		out := make(Blocks, len(v))
		for i, b := range v {
			if ob, ok := b.(ObjectBlock); ok {
				cp := make(ObjectBlock, len(ob))
				for k, val := range ob {
					cp[k] = val
				}
				out[i] = cp
				continue
			}
			out[i] = b
		}
		return out
	default:
		return nil
	}
}
