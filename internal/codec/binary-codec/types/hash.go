package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
)

// hashType is a fixed width opaque value rendered as uppercase hex.
type hashType struct {
	length int
}

// Hash128 is a 16 byte hash.
type Hash128 struct{ hashType }

// Hash160 is a 20 byte hash.
type Hash160 struct{ hashType }

// Hash256 is a 32 byte hash.
type Hash256 struct{ hashType }

// NewHash128 returns the codec for 16 byte hashes.
func NewHash128() *Hash128 { return &Hash128{hashType{16}} }

// NewHash160 returns the codec for 20 byte hashes.
func NewHash160() *Hash160 { return &Hash160{hashType{20}} }

// NewHash256 returns the codec for 32 byte hashes.
func NewHash256() *Hash256 { return &Hash256{hashType{32}} }

func (h hashType) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: hash must be a hex string, got %T", ErrNotSerializable, value)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSerializable, err)
	}
	if len(b) != h.length {
		return nil, fmt.Errorf("%w: hash of %d bytes, want %d", ErrNotSerializable, len(b), h.length)
	}
	return b, nil
}

func (h hashType) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(h.length)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
