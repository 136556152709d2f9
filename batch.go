package memocache

import (
	"context"
	"errors"
)

// ErrInvalidBatchSize is returned when InBatches is called with a batch
// size below 1.
var ErrInvalidBatchSize = errors.New("memocache: batch size must be positive")

// BulkFunc processes one chunk of items. It must return one result per
// input item, in input order; InBatches does not validate this.
type BulkFunc[T, R any] func(ctx context.Context, items []T) ([]R, error)

/*
InBatches runs bulk over items in chunks of at most batchSize.

When the whole input fits in one chunk, bulk is called exactly once and
its result is returned unchanged. Otherwise items is split into
consecutive chunks (only the final one may be shorter), bulk runs once
per chunk in input order, and the per-chunk results are concatenated.

Chunking never changes the output, only the number of bulk calls:
ceil(len(items)/batchSize) of them.

Failure is fail-fast: the first chunk error aborts the remaining chunks
and discards results from the chunks that already succeeded.
*/
func InBatches[T, R any](ctx context.Context, items []T, batchSize int, bulk BulkFunc[T, R]) ([]R, error) {
	if batchSize < 1 {
		return nil, ErrInvalidBatchSize
	}

	if len(items) <= batchSize {
		return bulk(ctx, items)
	}

	results := make([]R, 0, len(items))
	for start := 0; start < len(items); start += batchSize {
		end := min(start+batchSize, len(items))

		part, err := bulk(ctx, items[start:end])
		if err != nil {
			return nil, err
		}
		results = append(results, part...)
	}
	return results, nil
}
