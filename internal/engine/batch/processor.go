package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Default chunking configuration.
const (
	// DefaultChunkSize is the default number of items per chunk.
	DefaultChunkSize = 25

	// MinChunkSize is the minimum allowed chunk size.
	MinChunkSize = 1

	// MaxChunkSize is the maximum allowed chunk size.
	MaxChunkSize = 1000

	// DefaultConcurrency is the default number of chunks evaluated at once.
	DefaultConcurrency = 4
)

// Common processing errors.
var (
	ErrInvalidChunkSize = errors.New("chunk size must be between 1 and 1000")
	ErrNilCallback      = errors.New("chunk callback cannot be nil")
	ErrEmptyItems       = errors.New("items slice cannot be empty")
)

// ChunkCallback processes one chunk. offset is the index of the chunk's first item
// in the full input.
type ChunkCallback[T any] func(ctx context.Context, chunk []T, offset int) error

// ProgressCallback is invoked after each chunk completes.
type ProgressCallback func(snapshot ProgressSnapshot)

// Processor splits items into fixed-size chunks and runs a callback on each.
type Processor[T any] struct {
	chunkSize  int
	onProgress ProgressCallback
}

// NewProcessor creates a processor with the given chunk size.
func NewProcessor[T any](chunkSize int) (*Processor[T], error) {
	if chunkSize < MinChunkSize || chunkSize > MaxChunkSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, chunkSize)
	}
	return &Processor[T]{chunkSize: chunkSize}, nil
}

// WithProgressCallback sets a progress callback for the processor.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// ChunkSize returns the configured chunk size.
func (p *Processor[T]) ChunkSize() int {
	return p.chunkSize
}

// Process runs the callback on each chunk with at most maxConcurrency chunks in
// flight. The first callback error cancels the context passed to the remaining
// chunks and is returned.
func (p *Processor[T]) Process(
	ctx context.Context,
	items []T,
	callback ChunkCallback[T],
	maxConcurrency int,
) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	bounds := p.Chunks(len(items))
	progress := NewProgress(len(items), len(bounds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)
	for _, b := range bounds {
		if gctx.Err() != nil {
			break
		}
		start, end := b[0], b[1]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := callback(gctx, items[start:end], start); err != nil {
				return fmt.Errorf("chunk at %d failed: %w", start, err)
			}
			progress.AddProcessed(end - start)
			if p.onProgress != nil {
				p.onProgress(progress.Snapshot())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Chunks returns the [start, end) boundaries of every chunk for n items.
func (p *Processor[T]) Chunks(n int) [][2]int {
	count := n / p.chunkSize
	if n%p.chunkSize > 0 {
		count++
	}
	out := make([][2]int, count)
	for i := range count {
		start := i * p.chunkSize
		out[i] = [2]int{start, min(start+p.chunkSize, n)}
	}
	return out
}
