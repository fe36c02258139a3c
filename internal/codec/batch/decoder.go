// Package batch decodes many serialized objects concurrently on top of the
// synchronous binary codec.
package batch

import (
	"context"
	"encoding/hex"
	"fmt"
	"runtime"
	"sync/atomic"

	binarycodec "github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types"
	"github.com/LeJamon/goXRPLcodec/internal/crypto"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultCacheSize is the number of decoded blobs remembered when no size is given.
const DefaultCacheSize = 1024

// Result is the outcome of decoding one blob. Index is the blob's position in the input.
type Result struct {
	Index  int
	Object map[string]any
	Err    error
	Cached bool
}

// Stats counts what a Decoder has done since it was created.
type Stats struct {
	Decoded   uint64
	CacheHits uint64
	Failed    uint64
}

// Option represents a functional option for configuring a Decoder.
type Option func(*Decoder)

// WithWorkers sets the number of concurrent decodes. Values below one mean one per CPU.
func WithWorkers(n int) Option {
	return func(d *Decoder) {
		d.workers = n
	}
}

// WithCacheSize sets the number of decoded blobs kept for deduplication. Zero disables the cache.
func WithCacheSize(size int) Option {
	return func(d *Decoder) {
		d.cacheSize = size
	}
}

// WithLogger sets the logger for the decoder and the codec calls it makes.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithCodecOptions sets the mode and depth limit passed to every decode.
func WithCodecOptions(opts types.Options) Option {
	return func(d *Decoder) {
		d.codec = opts
	}
}

// Decoder decodes hex blobs with a bounded pool of goroutines. Identical
// blobs are decoded once while they stay in the cache, and their results
// share the same map, so results must be treated as read-only.
type Decoder struct {
	workers   int
	cacheSize int
	logger    *zap.Logger
	codec     types.Options
	cache     *lru.Cache[[32]byte, map[string]any]

	decoded   atomic.Uint64
	cacheHits atomic.Uint64
	failed    atomic.Uint64
}

// NewDecoder returns a Decoder configured by opts.
func NewDecoder(opts ...Option) (*Decoder, error) {
	d := &Decoder{
		workers:   runtime.NumCPU(),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.workers < 1 {
		d.workers = runtime.NumCPU()
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	if d.codec.Logger == nil {
		d.codec.Logger = d.logger
	}
	if d.cacheSize < 0 {
		return nil, fmt.Errorf("cache size cannot be negative: %d", d.cacheSize)
	}
	if d.cacheSize > 0 {
		cache, err := lru.New[[32]byte, map[string]any](d.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create decode cache: %w", err)
		}
		d.cache = cache
	}
	return d, nil
}

// Decode decodes every blob and returns the results in input order. A blob
// that fails to decode sets Err on its own result only. The returned error
// is non-nil only when ctx is done before all blobs are processed.
func (d *Decoder) Decode(ctx context.Context, blobs []string) ([]Result, error) {
	results := make([]Result, len(blobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, blob := range blobs {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = d.decodeOne(i, blob)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.logger.Debug("batch decoded",
		zap.Int("blobs", len(blobs)),
		zap.Int("workers", d.workers))
	return results, nil
}

func (d *Decoder) decodeOne(i int, blob string) Result {
	raw, err := hex.DecodeString(blob)
	if err != nil {
		d.failed.Add(1)
		return Result{Index: i, Err: fmt.Errorf("%w: %v", binarycodec.ErrInvalidHex, err)}
	}

	var key [32]byte
	if d.cache != nil {
		key = crypto.Sha512Half(raw)
		if obj, ok := d.cache.Get(key); ok {
			d.cacheHits.Add(1)
			return Result{Index: i, Object: obj, Cached: true}
		}
	}

	obj, err := binarycodec.DecodeWithOptions(blob, d.codec)
	if err != nil {
		d.failed.Add(1)
		d.logger.Debug("blob failed to decode", zap.Int("index", i), zap.Error(err))
		return Result{Index: i, Err: err}
	}
	d.decoded.Add(1)
	if d.cache != nil {
		d.cache.Add(key, obj)
	}
	return Result{Index: i, Object: obj}
}

// Stats returns the decoder's counters.
func (d *Decoder) Stats() Stats {
	return Stats{
		Decoded:   d.decoded.Load(),
		CacheHits: d.cacheHits.Load(),
		Failed:    d.failed.Load(),
	}
}
