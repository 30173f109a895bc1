package merge

import (
	"context"
	"fmt"

	"github.com/teilomillet/msgkit/types"
)

// Transformer is a composable pipeline stage: it consumes an ordered
// message sequence and produces a new one. Implementations must not
// mutate their input.
type Transformer interface {
	Transform(ctx context.Context, messages []types.Message) ([]types.Message, error)
}

// Transform is the deferred form of Merge, letting a Merger sit in a
// pipeline of Transformers. The semantics are identical to Merge; the
// context is accepted for interface conformance only, since a merge is
// a bounded single pass with nothing to cancel.
func (mr *Merger) Transform(_ context.Context, messages []types.Message) ([]types.Message, error) {
	return mr.Merge(messages)
}

// Chain applies a fixed sequence of Transformers in order, feeding each
// stage's output to the next.
type Chain []Transformer

// NewChain builds a Chain from the given stages.
func NewChain(stages ...Transformer) Chain {
	return Chain(stages)
}

// Transform runs the chain. It stops at the first stage error or when
// the context is cancelled between stages.
func (c Chain) Transform(ctx context.Context, messages []types.Message) ([]types.Message, error) {
	out := messages
	for i, stage := range c {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var err error
		out, err = stage.Transform(ctx, out)
		if err != nil {
			return nil, fmt.Errorf("chain stage %d: %w", i, err)
		}
	}
	return out, nil
}
