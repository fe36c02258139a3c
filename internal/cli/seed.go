package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	addresscodec "github.com/LeJamon/goXRPLcodec/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLcodec/internal/crypto"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Family seed encoding",
	}
	cmd.AddCommand(newSeedGenerateCmd(), newSeedDecodeCmd())
	return cmd
}

func newSeedGenerateCmd() *cobra.Command {
	var (
		keyType    string
		passphrase string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a family seed from random entropy or a passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kt, err := crypto.ParseKeyType(keyType)
			if err != nil {
				return err
			}

			var seed string
			if cmd.Flags().Changed("passphrase") {
				seed, err = addresscodec.SeedFromPassphrase(passphrase, kt)
			} else {
				var entropy []byte
				if entropy, err = crypto.RandomSeed(); err != nil {
					return err
				}
				seed, err = addresscodec.EncodeSeed(entropy, kt)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), seed)
			return err
		},
	}
	cmd.Flags().StringVar(&keyType, "key-type", "secp256k1", "secp256k1 or ed25519")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "derive the seed from this passphrase")
	return cmd
}

func newSeedDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <seed>",
		Short: "Print the entropy and key type of a family seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entropy, kt, err := addresscodec.DecodeSeed(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{
				"entropy":  strings.ToUpper(hex.EncodeToString(entropy)),
				"key_type": kt.String(),
			})
		},
	}
}
