package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcAccountID(t *testing.T) {
	tests := []struct {
		name      string
		publicKey string
		accountID string
	}{
		{
			name:      "Ed25519 public key",
			publicKey: "ED9434799226374926EDA3B54B1B461B4ABF7237962EAE18528FEA67595397FA32",
			accountID: "88a5a57c829f40f25ea83385bbde6c3d8b4ca082",
		},
		{
			name:      "Genesis secp256k1 public key",
			publicKey: "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020",
			accountID: "b5f762798a53d543a014caf8b297cff8f2f937e8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pubKey, err := hex.DecodeString(tt.publicKey)
			require.NoError(t, err)

			accountID := CalcAccountID(pubKey)
			assert.Equal(t, tt.accountID, hex.EncodeToString(accountID[:]))
			assert.Equal(t, accountID[:], Sha256RipeMD160(pubKey))
		})
	}
}

func TestAccountIDFromBytes(t *testing.T) {
	input := make([]byte, 20)
	for i := range input {
		input[i] = byte(i)
	}
	result := AccountIDFromBytes(input)
	assert.Equal(t, input, result[:])
	assert.False(t, IsZeroAccountID(result))

	assert.True(t, IsZeroAccountID(AccountIDFromBytes([]byte{0x01, 0x02, 0x03})))
	assert.True(t, IsZeroAccountID(AccountIDFromBytes(nil)))
}
