package merge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/teilomillet/msgkit/types"
	"github.com/teilomillet/msgkit/utils"
)

// BatchTransformer applies a Transformer to many independent message
// sequences concurrently, gated by a rate limiter. Each sequence is
// processed in its own goroutine; results keep the positional order of
// the input.
type BatchTransformer struct {
	Transformer Transformer
	Logger      utils.Logger
	rateLimiter *rate.Limiter
}

// BatchResult is the outcome for one input sequence.
type BatchResult struct {
	Messages []types.Message
	Error    error
}

// NewBatchTransformer creates a BatchTransformer around the given
// stage with a permissive default rate limit.
func NewBatchTransformer(t Transformer) *BatchTransformer {
	return &BatchTransformer{
		Transformer: t,
		rateLimiter: rate.NewLimiter(rate.Every(10*time.Millisecond), 1),
	}
}

// SetRateLimit replaces the rate limiter.
func (bt *BatchTransformer) SetRateLimit(r rate.Limit, b int) {
	bt.rateLimiter = rate.NewLimiter(r, b)
}

// Transform processes every sequence in batches concurrently and
// returns one BatchResult per input, in input order. Per-item failures
// are reported in the corresponding result; a cancelled context
// surfaces as a rate limiter error on the items not yet started.
func (bt *BatchTransformer) Transform(ctx context.Context, batches [][]types.Message) []BatchResult {
	results := make([]BatchResult, len(batches))
	var wg sync.WaitGroup
	for i, messages := range batches {
		wg.Add(1)
		go func(i int, messages []types.Message) {
			defer wg.Done()

			if err := bt.rateLimiter.Wait(ctx); err != nil {
				results[i] = BatchResult{Error: fmt.Errorf("rate limiter error: %w", err)}
				return
			}

			out, err := bt.Transformer.Transform(ctx, messages)
			results[i] = BatchResult{Messages: out, Error: err}
			if bt.Logger != nil {
				bt.Logger.Debug("Batch item transformed", "index", i, "in", len(messages), "out", len(out))
			}
		}(i, messages)
	}
	wg.Wait()
	return results
}
