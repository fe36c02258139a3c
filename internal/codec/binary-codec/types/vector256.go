package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
)

const hash256Length = 32

// Vector256 is a length-prefixed list of 256-bit hashes.
type Vector256 struct{}

// FromJSON concatenates a list of 64 digit hex strings.
func (v *Vector256) FromJSON(json any) ([]byte, error) {
	var items []string
	switch j := json.(type) {
	case []string:
		items = j
	case []any:
		items = make([]string, 0, len(j))
		for _, item := range j {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: Vector256 element must be a string, got %T", ErrNotSerializable, item)
			}
			items = append(items, s)
		}
	default:
		return nil, fmt.Errorf("%w: Vector256 must be a list of hashes, got %T", ErrNotSerializable, json)
	}

	out := make([]byte, 0, len(items)*hash256Length)
	h := NewHash256()
	for _, s := range items {
		b, err := h.FromJSON(s)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// ToJSON reads opts[0] bytes, which must be a multiple of 32.
func (v *Vector256) ToJSON(p interfaces.BinaryParser, opts ...int) (any, error) {
	if len(opts) == 0 {
		return nil, ErrNoLengthPrefix
	}
	if opts[0]%hash256Length != 0 {
		return nil, fmt.Errorf("%w: Vector256 length %d is not a multiple of %d", ErrNotSerializable, opts[0], hash256Length)
	}
	b, err := p.ReadBytes(opts[0])
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(b)/hash256Length)
	for i := 0; i < len(b); i += hash256Length {
		out = append(out, strings.ToUpper(hex.EncodeToString(b[i:i+hash256Length])))
	}
	return out, nil
}
