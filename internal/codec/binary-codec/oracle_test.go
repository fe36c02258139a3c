package binarycodec

import (
	"strings"
	"testing"

	addresscodec "github.com/LeJamon/goXRPLcodec/internal/codec/address-codec"
	peeraddress "github.com/Peersyst/xrpl-go/address-codec"
	peerbinary "github.com/Peersyst/xrpl-go/binary-codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cross-checks against the xrpl-go codec on inputs both implementations accept.
func TestEncodeMatchesXrplGo(t *testing.T) {
	tests := []struct {
		name string
		tx   map[string]any
	}{
		{"payment", payment()},
		{"offer create", map[string]any{
			"TransactionType": "OfferCreate",
			"Account":         "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
			"Fee":             "12",
			"Flags":           uint32(0),
			"Sequence":        uint32(7),
			"TakerGets":       "15000000000",
			"TakerPays": map[string]any{
				"currency": "USD",
				"issuer":   "rPDXxSZcuVL3ZWoyU82bcde3zwvmShkRyF",
				"value":    "7072.8",
			},
		}},
		{"memo", map[string]any{
			"TransactionType": "AccountSet",
			"Account":         "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
			"Fee":             "10",
			"Sequence":        uint32(3),
			"Memos": []any{
				map[string]any{"Memo": map[string]any{"MemoType": "687474703A2F2F6578616D706C652E636F6D", "MemoData": "72656E74"}},
			},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want, err := peerbinary.Encode(tc.tx)
			require.NoError(t, err)
			got, err := Encode(tc.tx)
			require.NoError(t, err)
			assert.Equal(t, strings.ToUpper(want), got)

			want, err = peerbinary.EncodeForSigning(tc.tx)
			require.NoError(t, err)
			got, err = EncodeForSigning(tc.tx)
			require.NoError(t, err)
			assert.Equal(t, strings.ToUpper(want), got)
		})
	}
}

func TestClassicAddressMatchesXrplGo(t *testing.T) {
	for _, addr := range []string{
		"rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
		"rPDXxSZcuVL3ZWoyU82bcde3zwvmShkRyF",
		"rrrrrrrrrrrrrrrrrrrrrhoLvTp",
	} {
		t.Run(addr, func(t *testing.T) {
			_, want, err := peeraddress.DecodeClassicAddressToAccountID(addr)
			require.NoError(t, err)
			_, got, err := addresscodec.DecodeClassicAddressToAccountID(addr)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			back, err := addresscodec.EncodeAccountIDToClassicAddress(got)
			require.NoError(t, err)
			assert.Equal(t, addr, back)
			assert.True(t, peeraddress.IsValidClassicAddress(back))
		})
	}
}
