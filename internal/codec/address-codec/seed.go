package addresscodec

import (
	"fmt"

	"github.com/LeJamon/goXRPLcodec/internal/crypto"
)

// EncodeSeed encodes 16 bytes of entropy as a family seed for the given key type.
func EncodeSeed(entropy []byte, keyType crypto.KeyType) (string, error) {
	if len(entropy) != FamilySeedLength {
		return "", fmt.Errorf("%w: entropy must be %d bytes", ErrInvalidSeed, FamilySeedLength)
	}

	switch keyType {
	case crypto.KeyTypeSecp256k1:
		return Encode(entropy, []byte{FamilySeedPrefix}, FamilySeedLength)
	case crypto.KeyTypeEd25519:
		return Encode(entropy, ED25519SeedPrefix, FamilySeedLength)
	default:
		return "", fmt.Errorf("%w: unsupported key type %s", ErrInvalidSeed, keyType)
	}
}

// DecodeSeed returns the entropy of a family seed and the key type its prefix selects.
// Every failure is reported as ErrInvalidSeed.
func DecodeSeed(seed string) ([]byte, crypto.KeyType, error) {
	decoded, err := Base58CheckDecode(seed)
	if err != nil {
		return nil, crypto.KeyTypeUnknown, ErrInvalidSeed
	}

	switch {
	case len(decoded) == len(ED25519SeedPrefix)+FamilySeedLength &&
		decoded[0] == ED25519SeedPrefix[0] && decoded[1] == ED25519SeedPrefix[1] && decoded[2] == ED25519SeedPrefix[2]:
		return decoded[len(ED25519SeedPrefix):], crypto.KeyTypeEd25519, nil
	case len(decoded) == 1+FamilySeedLength && decoded[0] == FamilySeedPrefix:
		return decoded[1:], crypto.KeyTypeSecp256k1, nil
	default:
		return nil, crypto.KeyTypeUnknown, ErrInvalidSeed
	}
}

// SeedFromPassphrase derives the seed rippled's wallet_propose produces for a
// passphrase: the first 16 bytes of Sha512Half(passphrase).
func SeedFromPassphrase(passphrase string, keyType crypto.KeyType) (string, error) {
	h := crypto.Sha512Half([]byte(passphrase))
	return EncodeSeed(h[:FamilySeedLength], keyType)
}
