// Package addresscodec encodes account IDs, public keys and seeds to the
// checksummed base58 strings used on the XRP Ledger.
package addresscodec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/LeJamon/goXRPLcodec/internal/crypto"
	"github.com/mr-tron/base58"
)

var (
	// ErrInvalidAddressAlphabet is returned for strings containing characters outside AlphabetXRPL.
	ErrInvalidAddressAlphabet = errors.New("invalid character in address")
	// ErrInvalidAddressChecksum is returned when the trailing four byte checksum does not match.
	ErrInvalidAddressChecksum = errors.New("invalid address checksum")
	// ErrInvalidAddressLength is returned when a decoded payload has the wrong size.
	ErrInvalidAddressLength = errors.New("invalid address length")
	// ErrInvalidEncodingPrefix is returned when the version prefix does not match the expected one.
	ErrInvalidEncodingPrefix = errors.New("invalid encoding prefix")
	// ErrInvalidExtendedAddress is returned for malformed X-addresses.
	ErrInvalidExtendedAddress = errors.New("invalid X-address")
	// ErrInvalidSeed is returned for any string that is not a valid family seed.
	ErrInvalidSeed = errors.New("invalid seed; could not determine encoding algorithm")

	xrplAlphabet = base58.NewAlphabet(AlphabetXRPL)
)

// Encode prepends typePrefix to b and base58check encodes the result.
// b must be exactly expectedLength bytes long.
func Encode(b []byte, typePrefix []byte, expectedLength int) (string, error) {
	if len(b) != expectedLength {
		return "", fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidAddressLength, len(b), expectedLength)
	}
	return Base58CheckEncode(b, typePrefix...), nil
}

// Decode base58check decodes s and strips typePrefix, which must match.
func Decode(s string, typePrefix []byte) ([]byte, error) {
	decoded, err := Base58CheckDecode(s)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(decoded, typePrefix) {
		return nil, ErrInvalidEncodingPrefix
	}
	return decoded[len(typePrefix):], nil
}

// Base58CheckEncode returns base58(prefix || input || checksum) in the XRPL alphabet.
func Base58CheckEncode(input []byte, prefix ...byte) string {
	payload := make([]byte, 0, len(prefix)+len(input)+4)
	payload = append(payload, prefix...)
	payload = append(payload, input...)
	sum := crypto.DoubleSha256(payload)
	payload = append(payload, sum[:4]...)
	return base58.FastBase58EncodingAlphabet(payload, xrplAlphabet)
}

// Base58CheckDecode verifies the alphabet and the checksum of s and returns
// the payload with the checksum removed. The version prefix is left in place.
func Base58CheckDecode(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidAddressLength)
	}
	for _, r := range s {
		if !strings.ContainsRune(AlphabetXRPL, r) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAddressAlphabet, r)
		}
	}

	raw, err := base58.FastBase58DecodingAlphabet(s, xrplAlphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddressAlphabet, err)
	}
	if len(raw) < 5 {
		return nil, ErrInvalidAddressChecksum
	}

	payload, checksum := raw[:len(raw)-4], raw[len(raw)-4:]
	sum := crypto.DoubleSha256(payload)
	if !bytes.Equal(checksum, sum[:4]) {
		return nil, ErrInvalidAddressChecksum
	}
	return payload, nil
}

// Sha256RipeMD160 hashes a public key into its 20 byte account ID.
func Sha256RipeMD160(b []byte) []byte {
	return crypto.Sha256RipeMD160(b)
}

// EncodeAccountIDToClassicAddress returns the "r..." address of a 20 byte account ID.
func EncodeAccountIDToClassicAddress(accountID []byte) (string, error) {
	return Encode(accountID, []byte{ClassicAddressPrefix}, AccountAddressLength)
}

// DecodeClassicAddressToAccountID returns the version prefix and the 20 byte account ID of a classic address.
func DecodeClassicAddressToAccountID(classicAddress string) (typePrefix, accountID []byte, err error) {
	decoded, err := Base58CheckDecode(classicAddress)
	if err != nil {
		return nil, nil, err
	}
	if len(decoded) != AccountAddressLength+1 {
		return nil, nil, fmt.Errorf("%w: got %d bytes", ErrInvalidAddressLength, len(decoded))
	}
	if decoded[0] != ClassicAddressPrefix {
		return nil, nil, ErrInvalidEncodingPrefix
	}
	return decoded[:1], decoded[1:], nil
}

// IsValidClassicAddress reports whether s decodes to an account ID.
func IsValidClassicAddress(s string) bool {
	_, _, err := DecodeClassicAddressToAccountID(s)
	return err == nil
}

// IsValidAddress accepts both classic and X-addresses.
func IsValidAddress(s string) bool {
	return IsValidClassicAddress(s) || IsValidXAddress(s)
}

// EncodeClassicAddressFromPublicKeyHex derives the classic address of a hex
// encoded secp256k1 or ed25519 public key.
func EncodeClassicAddressFromPublicKeyHex(pubKeyHex string) (string, error) {
	pubKey, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return "", fmt.Errorf("decode public key: %w", err)
	}
	if _, err := crypto.ParsePublicKey(pubKey); err != nil {
		return "", err
	}
	return EncodeAccountIDToClassicAddress(crypto.Sha256RipeMD160(pubKey))
}

// EncodeAccountPublicKey returns the "a..." form of a 33 byte public key.
func EncodeAccountPublicKey(b []byte) (string, error) {
	return Encode(b, []byte{AccountPublicKeyPrefix}, AccountPublicKeyLength)
}

// DecodeAccountPublicKey is the inverse of EncodeAccountPublicKey.
func DecodeAccountPublicKey(s string) ([]byte, error) {
	return decodeFixed(s, []byte{AccountPublicKeyPrefix}, AccountPublicKeyLength)
}

// EncodeNodePublicKey returns the "n..." form of a 33 byte validator public key.
func EncodeNodePublicKey(b []byte) (string, error) {
	return Encode(b, []byte{NodePublicKeyPrefix}, AccountPublicKeyLength)
}

// DecodeNodePublicKey is the inverse of EncodeNodePublicKey.
func DecodeNodePublicKey(s string) ([]byte, error) {
	return decodeFixed(s, []byte{NodePublicKeyPrefix}, AccountPublicKeyLength)
}

func decodeFixed(s string, prefix []byte, length int) ([]byte, error) {
	b, err := Decode(s, prefix)
	if err != nil {
		return nil, err
	}
	if len(b) != length {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidAddressLength, len(b), length)
	}
	return b, nil
}
