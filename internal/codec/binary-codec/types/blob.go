package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
)

// ErrNoLengthPrefix is returned when a length-prefixed type is read without a length.
var ErrNoLengthPrefix = errors.New("no length was provided for a length-prefixed type")

// Blob is an arbitrary byte string. The container writes its length prefix.
type Blob struct{}

// FromJSON decodes a hex string. The empty string is a valid empty blob.
func (b *Blob) FromJSON(json any) ([]byte, error) {
	s, ok := json.(string)
	if !ok {
		return nil, fmt.Errorf("%w: blob must be a hex string, got %T", ErrNotSerializable, json)
	}
	v, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSerializable, err)
	}
	return v, nil
}

// ToJSON reads opts[0] bytes and returns them as uppercase hex.
func (b *Blob) ToJSON(p interfaces.BinaryParser, opts ...int) (any, error) {
	if len(opts) == 0 {
		return nil, ErrNoLengthPrefix
	}
	v, err := p.ReadBytes(opts[0])
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(v)), nil
}
