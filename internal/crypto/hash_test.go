package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha512Half(t *testing.T) {
	tt := []struct {
		description string
		input       []byte
		expected    [32]uint8
	}{
		{
			description: "hash of fakeRandomString",
			input:       []byte("fakeRandomString"),
			expected:    [32]uint8{0xbb, 0x3e, 0xca, 0x89, 0x85, 0xe1, 0x48, 0x4f, 0xa6, 0xa2, 0x8c, 0x4b, 0x30, 0xfb, 0x0, 0x42, 0xa2, 0xcc, 0x5d, 0xf3, 0xec, 0x8d, 0xc3, 0x7b, 0x5f, 0x3d, 0x12, 0x6d, 0xdf, 0xd3, 0xca, 0x14},
		},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, Sha512Half(tc.input))
		})
	}
}

func TestSha512HalfConcatenatesParts(t *testing.T) {
	assert.Equal(t, Sha512Half([]byte("fakeRandomString")), Sha512Half([]byte("fake"), []byte("Random"), []byte("String")))
}

func TestSha512HalfMasterPassphraseSeed(t *testing.T) {
	h := Sha512Half([]byte("masterpassphrase"))
	assert.Equal(t, "dedce9ce67b451d852fd4e846fcde31c", hex.EncodeToString(h[:16]))
}

func TestDoubleSha256(t *testing.T) {
	sum := DoubleSha256(nil)
	assert.Equal(t, "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456", hex.EncodeToString(sum[:]))
}
