package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types"
	"github.com/LeJamon/goXRPLcodec/internal/config"
	"github.com/LeJamon/goXRPLcodec/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is the xrplcodec release, overridden at link time.
var Version = "0.1.0-dev"

// rootOptions carries the global flags and what they resolve to.
type rootOptions struct {
	configFile string
	debug      bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "xrplcodec",
		Short: "XRPL binary and address codec",
		Long: `xrplcodec converts XRP Ledger transactions and ledger objects between
their JSON form and the canonical binary form used for hashing and signing,
and converts between the address, X-address and seed encodings.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.initConfig,
		PersistentPostRun: func(*cobra.Command, []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.configFile, "conf", "", "configuration file path (TOML)")
	rootCmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newEncodeCmd(o),
		newDecodeCmd(o),
		newHashCmd(),
		newBatchDecodeCmd(o),
		newAddressCmd(),
		newSeedCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command line tool. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// initConfig loads the configuration file and environment, then builds the logger.
func (o *rootOptions) initConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(o.configFile)
	if err != nil {
		return err
	}
	if o.debug {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	o.cfg = cfg
	o.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}

func (o *rootOptions) codecOptions() types.Options {
	return o.cfg.Codec.Options(o.logger)
}

// readInput returns the single positional argument, or stdin when it is
// missing or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.TrimSpace(args[0]), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
