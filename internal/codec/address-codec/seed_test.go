package addresscodec

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/LeJamon/goXRPLcodec/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSeedVectors(t *testing.T) {
	tests := []struct {
		name    string
		entropy string
		keyType crypto.KeyType
		seed    string
	}{
		{"secp256k1", "CF2DE378FBDD7E2EE87D486DFB5A7BFF", crypto.KeyTypeSecp256k1, "sn259rEFXrQrWyx3Q7XneWcwV6dfL"},
		{"secp256k1 zero entropy", strings.Repeat("00", 16), crypto.KeyTypeSecp256k1, "sp6JS7f14BuwFY8Mw6bTtLKWauoUs"},
		{"secp256k1 max entropy", strings.Repeat("FF", 16), crypto.KeyTypeSecp256k1, "saGwBRReqUNKuWNLpUAq8i8NkXEPN"},
		{"ed25519", "4C3A1D213FBDFB14C7C28D609469B341", crypto.KeyTypeEd25519, "sEdTM1uX8pu2do5XvTnutH6HsouMaM2"},
		{"ed25519 zero entropy", strings.Repeat("00", 16), crypto.KeyTypeEd25519, "sEdSJHS4oiAdz7w2X2ni1gFiqtbJHqE"},
		{"ed25519 max entropy", strings.Repeat("FF", 16), crypto.KeyTypeEd25519, "sEdV19BLfeQeKdEXyYA4NhjPJe6XBfG"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entropy, err := hex.DecodeString(tc.entropy)
			require.NoError(t, err)

			seed, err := EncodeSeed(entropy, tc.keyType)
			require.NoError(t, err)
			assert.Equal(t, tc.seed, seed)

			decoded, keyType, err := DecodeSeed(seed)
			require.NoError(t, err)
			assert.Equal(t, entropy, decoded)
			assert.Equal(t, tc.keyType, keyType)
		})
	}
}

func TestEncodeSeedErrors(t *testing.T) {
	_, err := EncodeSeed(make([]byte, 15), crypto.KeyTypeSecp256k1)
	assert.ErrorIs(t, err, ErrInvalidSeed)

	_, err = EncodeSeed(make([]byte, 16), crypto.KeyTypeUnknown)
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestDecodeSeed(t *testing.T) {
	testcases := []struct {
		name        string
		seed        string
		keyType     crypto.KeyType
		expectError bool
	}{
		{name: "masterpassphrase", seed: "snoPBrXtMeMyMHUVTgbuqAfg1SUTb", keyType: crypto.KeyTypeSecp256k1},
		{name: "Non-Random Passphrase", seed: "snMKnVku798EnBwUfxeSD8953sLYA", keyType: crypto.KeyTypeSecp256k1},
		{name: "cookies excitement hand public", seed: "sspUXGrmjQhq6mgc24jiRuevZiwKT", keyType: crypto.KeyTypeSecp256k1},
		{name: "ed25519 seed", seed: "sEdTzRkEgPoxDG1mJ6WkSucHWnMkm1H", keyType: crypto.KeyTypeEd25519},
		{name: "empty string", seed: "", expectError: true},
		{name: "too short", seed: "sspUXGrmjQhq6mgc24jiRuevZiwK", expectError: true},
		{name: "too long", seed: "sspUXGrmjQhq6mgc24jiRuevZiwKTT", expectError: true},
		{name: "character O", seed: "sspOXGrmjQhq6mgc24jiRuevZiwKT", expectError: true},
		{name: "character /", seed: "ssp/XGrmjQhq6mgc24jiRuevZiwKT", expectError: true},
		{name: "bad checksum", seed: "snoPBrXtMeMyMHUVTgbuqAfg1SUTa", expectError: true},
		{name: "classic address", seed: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", expectError: true},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			entropy, keyType, err := DecodeSeed(tc.seed)
			if tc.expectError {
				require.EqualError(t, err, ErrInvalidSeed.Error())
				assert.Equal(t, crypto.KeyTypeUnknown, keyType)
				return
			}
			require.NoError(t, err)
			assert.Len(t, entropy, FamilySeedLength)
			assert.Equal(t, tc.keyType, keyType)
		})
	}
}

func TestSeedFromPassphrase(t *testing.T) {
	tests := []struct {
		passphrase string
		keyType    crypto.KeyType
		seed       string
	}{
		{"masterpassphrase", crypto.KeyTypeSecp256k1, "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"},
		{"Non-Random Passphrase", crypto.KeyTypeSecp256k1, "snMKnVku798EnBwUfxeSD8953sLYA"},
		{"cookies excitement hand public", crypto.KeyTypeSecp256k1, "sspUXGrmjQhq6mgc24jiRuevZiwKT"},
		{"masterpassphrase", crypto.KeyTypeEd25519, "sEdVQ4wvD1AaTG6JA54qt38TengAuiz"},
	}
	for _, tc := range tests {
		seed, err := SeedFromPassphrase(tc.passphrase, tc.keyType)
		require.NoError(t, err)
		assert.Equal(t, tc.seed, seed, tc.passphrase)
	}
}

func TestRandomSeedRoundTrip(t *testing.T) {
	for _, kt := range []crypto.KeyType{crypto.KeyTypeSecp256k1, crypto.KeyTypeEd25519} {
		entropy, err := crypto.RandomSeed()
		require.NoError(t, err)

		seed, err := EncodeSeed(entropy, kt)
		require.NoError(t, err)

		back, backType, err := DecodeSeed(seed)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(entropy, back))
		assert.Equal(t, kt, backType)
	}
}
