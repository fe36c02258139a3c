package cli

import (
	"encoding/hex"
	"errors"
	"fmt"

	addresscodec "github.com/LeJamon/goXRPLcodec/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLcodec/internal/crypto"
	"github.com/spf13/cobra"
)

func newAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Classic address and X-address conversions",
	}
	cmd.AddCommand(
		newClassicToXCmd(),
		newXToClassicCmd(),
		newFromPubKeyCmd(),
		newValidateAddressCmd(),
	)
	return cmd
}

func newClassicToXCmd() *cobra.Command {
	var (
		tag     uint32
		testnet bool
	)
	cmd := &cobra.Command{
		Use:   "classic-to-x <address>",
		Short: "Convert a classic address to an X-address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := addresscodec.ClassicAddressToXAddress(args[0], tag, cmd.Flags().Changed("tag"), testnet)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), x)
			return err
		},
	}
	cmd.Flags().Uint32Var(&tag, "tag", 0, "destination tag to embed")
	cmd.Flags().BoolVar(&testnet, "test", false, "encode for a test network")
	return cmd
}

func newXToClassicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "x-to-classic <x-address>",
		Short: "Split an X-address into classic address, tag and network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classic, tag, hasTag, testnet, err := addresscodec.XAddressToClassicAddress(args[0])
			if err != nil {
				return err
			}
			out := map[string]any{
				"classic_address": classic,
				"tag":             nil,
				"test":            testnet,
			}
			if hasTag {
				out["tag"] = tag
			}
			return printJSON(cmd, out)
		},
	}
}

func newFromPubKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-pubkey <hex>",
		Short: "Derive the classic address of a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := addresscodec.EncodeClassicAddressFromPublicKeyHex(args[0])
			if err != nil {
				return err
			}
			pub, _ := hex.DecodeString(args[0])
			return printJSON(cmd, map[string]any{
				"classic_address": addr,
				"key_type":        crypto.PublicKeyType(pub).String(),
			})
		},
	}
}

func newValidateAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <address>",
		Short: "Report whether an address is a valid classic or X-address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind string
			switch {
			case addresscodec.IsValidClassicAddress(args[0]):
				kind = "classic"
			case addresscodec.IsValidXAddress(args[0]):
				kind = "x-address"
			default:
				return errors.New("invalid address")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), kind)
			return err
		},
	}
}
