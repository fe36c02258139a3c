package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/LeJamon/goXRPLcodec/internal/codec/batch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type batchLine struct {
	Index  int            `json:"index"`
	Object map[string]any `json:"object,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func newBatchDecodeCmd(o *rootOptions) *cobra.Command {
	var (
		compressed bool
		workers    int
		cacheSize  int
	)

	cmd := &cobra.Command{
		Use:   "batch-decode <file|->",
		Short: "Decode a file of hex blobs, one per line",
		Long: `Decode a file of newline separated hex blobs concurrently and print one
JSON result per blob, in input order. Use --lz4 for an LZ4 framed file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			blobs, err := batch.ReadBlobs(in, compressed)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = o.cfg.Batch.Workers
			}
			if !cmd.Flags().Changed("cache-size") {
				cacheSize = o.cfg.Batch.CacheSize
			}
			decoder, err := batch.NewDecoder(
				batch.WithWorkers(workers),
				batch.WithCacheSize(cacheSize),
				batch.WithLogger(o.logger),
				batch.WithCodecOptions(o.codecOptions()),
			)
			if err != nil {
				return err
			}

			start := time.Now()
			results, err := decoder.Decode(cmd.Context(), blobs)
			if err != nil {
				return err
			}

			lines := make([]batchLine, len(results))
			for i, r := range results {
				lines[i] = batchLine{Index: r.Index, Object: r.Object}
				if r.Err != nil {
					lines[i].Error = r.Err.Error()
				}
			}
			if err := printJSON(cmd, lines); err != nil {
				return err
			}

			stats := decoder.Stats()
			o.logger.Info("batch decode finished",
				zap.Int("blobs", len(blobs)),
				zap.Uint64("decoded", stats.Decoded),
				zap.Uint64("cache_hits", stats.CacheHits),
				zap.Uint64("failed", stats.Failed),
				zap.Duration("elapsed", time.Since(start)))
			if stats.Failed > 0 {
				return fmt.Errorf("%d of %d blobs failed to decode", stats.Failed, len(blobs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&compressed, "lz4", false, "input is an LZ4 frame")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent decodes (default from [batch] workers)")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 0, "decoded blobs kept for deduplication (default from [batch] cache_size)")
	return cmd
}
