// Package crypto provides the hashing and key helpers the codec needs.
package crypto

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// KeyType represents the type of cryptographic key used in XRPL.
type KeyType int

const (
	// KeyTypeUnknown indicates an unknown or invalid key type.
	KeyTypeUnknown KeyType = iota
	// KeyTypeSecp256k1 indicates a secp256k1 (ECDSA) key.
	KeyTypeSecp256k1
	// KeyTypeEd25519 indicates an Ed25519 key.
	KeyTypeEd25519
)

// PublicKeySize is the length of both compressed secp256k1 and prefixed ed25519 public keys.
const PublicKeySize = 33

// ErrInvalidPublicKey is returned by ParsePublicKey for keys that are not on their curve or malformed.
var ErrInvalidPublicKey = errors.New("invalid public key")

// String returns the string representation of the key type.
func (kt KeyType) String() string {
	switch kt {
	case KeyTypeSecp256k1:
		return "secp256k1"
	case KeyTypeEd25519:
		return "ed25519"
	default:
		return "unknown"
	}
}

// ParseKeyType maps "secp256k1" and "ed25519" to their KeyType.
func ParseKeyType(s string) (KeyType, error) {
	switch s {
	case "secp256k1":
		return KeyTypeSecp256k1, nil
	case "ed25519":
		return KeyTypeEd25519, nil
	default:
		return KeyTypeUnknown, fmt.Errorf("unknown key type %q", s)
	}
}

// PublicKeyType determines the key type from a public key's raw bytes.
// It only looks at the length and prefix byte:
//   - Ed25519: 33 bytes, first byte is 0xED
//   - secp256k1: 33 bytes, first byte is 0x02 or 0x03 (compressed format)
func PublicKeyType(pubKey []byte) KeyType {
	if len(pubKey) != PublicKeySize {
		return KeyTypeUnknown
	}

	switch pubKey[0] {
	case 0xED:
		return KeyTypeEd25519
	case 0x02, 0x03:
		return KeyTypeSecp256k1
	default:
		return KeyTypeUnknown
	}
}

// IsValidPublicKey returns true if the public key has a valid format.
func IsValidPublicKey(pubKey []byte) bool {
	return PublicKeyType(pubKey) != KeyTypeUnknown
}

// ParsePublicKey checks that pubKey is a usable key and returns its type.
// secp256k1 keys must decode to a point on the curve.
func ParsePublicKey(pubKey []byte) (KeyType, error) {
	switch kt := PublicKeyType(pubKey); kt {
	case KeyTypeSecp256k1:
		if _, err := btcec.ParsePubKey(pubKey); err != nil {
			return KeyTypeUnknown, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
		return kt, nil
	case KeyTypeEd25519:
		return kt, nil
	default:
		return KeyTypeUnknown, fmt.Errorf("%w: %d bytes", ErrInvalidPublicKey, len(pubKey))
	}
}
