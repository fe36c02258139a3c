package addresscodec

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassicAddressZeroAccount(t *testing.T) {
	addr, err := EncodeAccountIDToClassicAddress(make([]byte, 20))
	require.NoError(t, err)
	assert.Equal(t, "rrrrrrrrrrrrrrrrrrrrrhoLvTp", addr)

	prefix, accountID, err := DecodeClassicAddressToAccountID("rrrrrrrrrrrrrrrrrrrrrhoLvTp")
	require.NoError(t, err)
	assert.Equal(t, []byte{ClassicAddressPrefix}, prefix)
	assert.Equal(t, make([]byte, 20), accountID)
}

func TestClassicAddressVectors(t *testing.T) {
	tests := []struct {
		address   string
		accountID string
	}{
		{"rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B", "0a20b3c85f482532a9578dbb3950b85ca06594d1"},
		{"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "b5f762798a53d543a014caf8b297cff8f2f937e8"},
		{"r9cZA1mLK5R5Am25ArfXFmqgNwjZgnfk59", "5e7b112523f68d2f5e879db4eac51c6698a69304"},
		{"rPDXxSZcuVL3ZWoyU82bcde3zwvmShkRyF", "f3b1997562fd742b54d4ebdea1d6aea3d4906b8f"},
	}
	for _, tc := range tests {
		t.Run(tc.address, func(t *testing.T) {
			_, accountID, err := DecodeClassicAddressToAccountID(tc.address)
			require.NoError(t, err)
			assert.Equal(t, tc.accountID, hex.EncodeToString(accountID))

			raw, _ := hex.DecodeString(tc.accountID)
			addr, err := EncodeAccountIDToClassicAddress(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.address, addr)
			assert.True(t, IsValidClassicAddress(addr))
			assert.True(t, IsValidAddress(addr))
		})
	}
}

func TestDecodeClassicAddressErrors(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr error
	}{
		{"character outside alphabet", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyT0", ErrInvalidAddressAlphabet},
		{"letter l is not in the alphabet", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTl", ErrInvalidAddressAlphabet},
		{"bad checksum", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTj", ErrInvalidAddressChecksum},
		{"empty", "", ErrInvalidAddressLength},
		{"node public key is too long", "n9MXXueo837zYH36DvMc13BwHcqtfAWNJY5czWVbp7uYTj7x17TH", ErrInvalidAddressLength},
		{"seed is too short", "snoPBrXtMeMyMHUVTgbuqAfg1SUTb", ErrInvalidAddressLength},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeClassicAddressToAccountID(tc.address)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.False(t, IsValidClassicAddress(tc.address))
		})
	}
}

func TestClassicAddressChecksumSensitivity(t *testing.T) {
	for _, addr := range []string{"rrrrrrrrrrrrrrrrrrrrrhoLvTp", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"} {
		for i := 0; i < len(addr); i++ {
			for _, c := range AlphabetXRPL {
				if byte(c) == addr[i] {
					continue
				}
				mutated := addr[:i] + string(c) + addr[i+1:]
				_, _, err := DecodeClassicAddressToAccountID(mutated)
				require.ErrorIs(t, err, ErrInvalidAddressChecksum, mutated)
			}
		}
	}
}

func TestEncodeRejectsWrongLength(t *testing.T) {
	_, err := EncodeAccountIDToClassicAddress(make([]byte, 19))
	assert.ErrorIs(t, err, ErrInvalidAddressLength)

	_, err = EncodeAccountPublicKey(make([]byte, 32))
	assert.ErrorIs(t, err, ErrInvalidAddressLength)
}

func TestDecodeChecksPrefix(t *testing.T) {
	_, err := Decode("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", []byte{AccountPublicKeyPrefix})
	assert.ErrorIs(t, err, ErrInvalidEncodingPrefix)

	b, err := Decode("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", []byte{ClassicAddressPrefix})
	require.NoError(t, err)
	assert.Len(t, b, 20)
}

func TestBase58CheckRoundTrip(t *testing.T) {
	payload := []byte("hello xrpl")
	s := Base58CheckEncode(payload, 0x01, 0x02)

	decoded, err := Base58CheckDecode(s)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0x01, 0x02}, payload...), decoded)
}

func TestPublicKeyEncoding(t *testing.T) {
	t.Run("account public key", func(t *testing.T) {
		pub, _ := hex.DecodeString("0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020")
		s, err := EncodeAccountPublicKey(pub)
		require.NoError(t, err)
		assert.Equal(t, "aBQG8RQAzjs1eTKFEAQXr2gS4utcDiEC9wmi7pfUPTi27VCahwgw", s)

		back, err := DecodeAccountPublicKey(s)
		require.NoError(t, err)
		assert.Equal(t, pub, back)
	})

	t.Run("known account public key", func(t *testing.T) {
		b, err := DecodeAccountPublicKey("aB44YfzW24VDEJQ2UuLPV2PvqcPCSoLnL7y5M1EzhdW4LnK5xMS3")
		require.NoError(t, err)
		assert.Equal(t, "023693F15967AE357D0327974AD46FE3C127113B1110D6044FD41E723689F81CC6", strings.ToUpper(hex.EncodeToString(b)))
	})

	t.Run("node public key", func(t *testing.T) {
		b, err := DecodeNodePublicKey("n9MXXueo837zYH36DvMc13BwHcqtfAWNJY5czWVbp7uYTj7x17TH")
		require.NoError(t, err)
		assert.Equal(t, "0388E5BA87A000CB807240DF8C848EB0B5FFA5C8E5A521BC8E105C0F0A44217828", strings.ToUpper(hex.EncodeToString(b)))

		s, err := EncodeNodePublicKey(b)
		require.NoError(t, err)
		assert.Equal(t, "n9MXXueo837zYH36DvMc13BwHcqtfAWNJY5czWVbp7uYTj7x17TH", s)
	})

	t.Run("prefixes are not interchangeable", func(t *testing.T) {
		_, err := DecodeNodePublicKey("aB44YfzW24VDEJQ2UuLPV2PvqcPCSoLnL7y5M1EzhdW4LnK5xMS3")
		assert.ErrorIs(t, err, ErrInvalidEncodingPrefix)
	})
}

func TestEncodeClassicAddressFromPublicKeyHex(t *testing.T) {
	addr, err := EncodeClassicAddressFromPublicKeyHex("0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020")
	require.NoError(t, err)
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", addr)

	_, err = EncodeClassicAddressFromPublicKeyHex("zz")
	assert.Error(t, err)

	_, err = EncodeClassicAddressFromPublicKeyHex("02FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")
	assert.Error(t, err)
}
