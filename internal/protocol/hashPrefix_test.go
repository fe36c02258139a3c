package protocol

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPrefixValues(t *testing.T) {
	tests := []struct {
		prefix HashPrefix
		hex    string
	}{
		{HashPrefixTransactionID, "54584e00"},
		{HashPrefixTxSign, "53545800"},
		{HashPrefixTxMultiSign, "534d5400"},
		{HashPrefixPaymentChannelClaim, "434c4d00"},
		{HashPrefixBatch, "42434800"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.hex, hex.EncodeToString(tc.prefix.Bytes()))
	}
}

func TestHashPrefixPrepend(t *testing.T) {
	data := []byte{0xAA, 0xBB}
	out := HashPrefixTxSign.Prepend(data)
	assert.Equal(t, "53545800aabb", hex.EncodeToString(out))
	assert.Equal(t, []byte{0xAA, 0xBB}, data)

	b := HashPrefixTxSign.Bytes()
	b[0] = 0
	assert.Equal(t, byte('S'), HashPrefixTxSign[0])
}
