// Package merge collapses runs of consecutive same-role messages into
// single messages. It is a pure structural transformation: content is
// concatenated, metadata is combined under a deterministic policy, and
// nothing is trimmed, deduplicated, or summarized.
package merge

import (
	"fmt"

	"github.com/teilomillet/msgkit/types"
	"github.com/teilomillet/msgkit/utils"
)

// DefaultSeparator joins two plain-text contents when their messages
// are merged.
const DefaultSeparator = "\n"

// Option configures a Merger.
type Option func(*Merger)

// WithSeparator sets the string placed between two plain-text contents
// when they are joined. The default is a single newline.
func WithSeparator(sep string) Option {
	return func(m *Merger) {
		m.separator = sep
	}
}

// WithLogger attaches a logger for debug traces of merge activity.
func WithLogger(logger utils.Logger) Option {
	return func(m *Merger) {
		m.logger = logger
	}
}

// Merger collapses runs of consecutive messages that share a role and
// name tag. The zero-argument NewMerger form produces the default
// behavior; a Merger is stateless after construction and safe for
// concurrent use.
type Merger struct {
	separator string
	logger    utils.Logger
}

// NewMerger creates a Merger. With no options it applies the default
// newline separator and logs nothing.
func NewMerger(opts ...Option) *Merger {
	m := &Merger{separator: DefaultSeparator}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Runs is the eager form: it merges consecutive same-role, same-name
// messages in a single pass and returns the new sequence. The input is
// never mutated; returned messages share no maps or slices with it.
func Runs(messages []types.Message, opts ...Option) ([]types.Message, error) {
	return NewMerger(opts...).Merge(messages)
}

// Merge collapses runs of consecutive mergeable messages. Two messages
// are mergeable when their roles and name tags are both equal. The
// relative order of surviving messages equals the relative order of the
// first message in each run.
//
// Merge fails with an ErrorTypeInvalidInput error on the first element
// whose role is unrecognized or whose content is malformed; nothing
// past that element is processed.
func (mr *Merger) Merge(messages []types.Message) ([]types.Message, error) {
	merged := make([]types.Message, 0, len(messages))
	var acc *types.Message
	for i, msg := range messages {
		if err := msg.Validate(); err != nil {
			return nil, types.NewMessageError(types.ErrorTypeInvalidInput, fmt.Sprintf("message at index %d", i), err)
		}
		if acc == nil {
			next := msg.Clone()
			acc = &next
			continue
		}
		if msg.Role == acc.Role && msg.Name == acc.Name {
			mr.mergeInto(acc, msg)
			continue
		}
		merged = append(merged, *acc)
		next := msg.Clone()
		acc = &next
	}
	if acc != nil {
		merged = append(merged, *acc)
	}
	if mr.logger != nil {
		mr.logger.Debug("Merged message runs", "in", len(messages), "out", len(merged))
	}
	return merged, nil
}

// mergeInto folds next into the accumulator. The accumulator is a clone
// owned by the current Merge call, so it may be extended in place; next
// is caller-owned and is only read.
func (mr *Merger) mergeInto(acc *types.Message, next types.Message) {
	acc.Content = mr.mergeContent(acc.Content, next.Content)
	acc.Metadata = mergeMetadata(acc.Metadata, next.Metadata)
}

// mergeContent combines two content values. Two plain strings join with
// the separator; any other combination normalizes both sides to block
// sequences and concatenates them verbatim, preserving each block's
// original form.
func (mr *Merger) mergeContent(a, b types.Content) types.Content {
	at, aText := a.(types.Text)
	bt, bText := b.(types.Text)
	if aText && bText {
		return types.Text(string(at) + mr.separator + string(bt))
	}
	left := types.NormalizeContent(a)
	right := types.NormalizeContent(types.CloneContent(b))
	out := make(types.Blocks, 0, len(left)+len(right))
	out = append(out, left...)
	out = append(out, right...)
	return out
}
