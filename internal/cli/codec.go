package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	binarycodec "github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEncodeCmd(o *rootOptions) *cobra.Command {
	var (
		signing   bool
		multisign string
	)

	cmd := &cobra.Command{
		Use:   "encode [json|-]",
		Short: "Encode a JSON transaction or ledger object to hex",
		Long: `Encode a JSON transaction or ledger object to its canonical binary form.
With --signing only signing fields are written, behind the single-signing prefix.
With --multisign the output is what the given account signs for a multisigned transaction.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			tx, err := parseJSONObject(raw)
			if err != nil {
				return err
			}

			var out string
			switch {
			case multisign != "":
				out, err = binarycodec.EncodeForMultisigning(tx, multisign)
			case signing:
				out, err = binarycodec.EncodeForSigning(tx)
			default:
				out, err = binarycodec.EncodeWithOptions(tx, o.codecOptions())
			}
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			o.logger.Debug("encoded", zap.Int("fields", len(tx)), zap.Int("bytes", len(out)/2))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&signing, "signing", false, "encode for single signing")
	cmd.Flags().StringVar(&multisign, "multisign", "", "encode for multisigning by this classic address")
	cmd.MarkFlagsMutuallyExclusive("signing", "multisign")
	return cmd
}

func newDecodeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [hex|-]",
		Short: "Decode hex to a JSON transaction or ledger object",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			obj, err := binarycodec.DecodeWithOptions(raw, o.codecOptions())
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			return printJSON(cmd, obj)
		},
	}
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [hex|-]",
		Short: "Print the transaction ID of a signed transaction blob",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			id, err := binarycodec.TransactionID(raw)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
}

// parseJSONObject decodes a single JSON object with numbers as json.Number.
func parseJSONObject(raw string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("invalid JSON object: null")
	}
	return m, nil
}
