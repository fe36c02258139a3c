package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyType_String(t *testing.T) {
	tests := []struct {
		keyType  KeyType
		expected string
	}{
		{KeyTypeUnknown, "unknown"},
		{KeyTypeSecp256k1, "secp256k1"},
		{KeyTypeEd25519, "ed25519"},
		{KeyType(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.keyType.String())
		if tt.keyType != KeyTypeUnknown && tt.expected != "unknown" {
			parsed, err := ParseKeyType(tt.expected)
			require.NoError(t, err)
			assert.Equal(t, tt.keyType, parsed)
		}
	}

	_, err := ParseKeyType("rsa")
	assert.Error(t, err)
}

func TestPublicKeyType(t *testing.T) {
	tests := []struct {
		name     string
		pubKey   string
		expected KeyType
	}{
		{"Ed25519 key", "ED9434799226374926EDA3B54B1B461B4ABF7237962EAE18528FEA67595397FA32", KeyTypeEd25519},
		{"Secp256k1 key with 03 prefix", "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020", KeyTypeSecp256k1},
		{"Secp256k1 key with 02 prefix", "023693F15967AE357D0327974AD46FE3C127113B1110D6044FD41E723689F81CC6", KeyTypeSecp256k1},
		{"Invalid prefix 04", "0430E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020", KeyTypeUnknown},
		{"Too short", "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD0", KeyTypeUnknown},
		{"Empty", "", KeyTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pubKey, _ := hex.DecodeString(tt.pubKey)
			assert.Equal(t, tt.expected, PublicKeyType(pubKey))
			assert.Equal(t, tt.expected != KeyTypeUnknown, IsValidPublicKey(pubKey))
		})
	}
}

func TestParsePublicKey(t *testing.T) {
	genesis, _ := hex.DecodeString("0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020")
	kt, err := ParsePublicKey(genesis)
	require.NoError(t, err)
	assert.Equal(t, KeyTypeSecp256k1, kt)

	ed, _ := hex.DecodeString("ED9434799226374926EDA3B54B1B461B4ABF7237962EAE18528FEA67595397FA32")
	kt, err = ParsePublicKey(ed)
	require.NoError(t, err)
	assert.Equal(t, KeyTypeEd25519, kt)

	// x coordinate above the field prime
	offCurve, _ := hex.DecodeString("02FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")
	_, err = ParsePublicKey(offCurve)
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	_, err = ParsePublicKey([]byte{0xED, 0x01})
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}
