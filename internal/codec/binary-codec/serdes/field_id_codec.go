package serdes

import (
	"encoding/hex"
	"fmt"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/serdes/interfaces"
)

// FieldIDCodec converts between field names and their encoded headers.
type FieldIDCodec struct {
	definitions interfaces.Definitions
}

// NewFieldIDCodec returns a FieldIDCodec backed by defs.
func NewFieldIDCodec(defs interfaces.Definitions) *FieldIDCodec {
	return &FieldIDCodec{definitions: defs}
}

// Encode returns the header bytes of the named field.
func (f *FieldIDCodec) Encode(fieldName string) ([]byte, error) {
	fh, err := f.definitions.GetFieldHeaderByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return EncodeFieldHeader(*fh)
}

// Decode returns the field name for a hex encoded header. The input must be exactly one header.
func (f *FieldIDCodec) Decode(h string) (string, error) {
	b, err := hex.DecodeString(h)
	if err != nil {
		return "", fmt.Errorf("decode field id %q: %w", h, err)
	}
	fh, n, err := decodeFieldHeader(b)
	if err != nil {
		return "", err
	}
	if n != len(b) {
		return "", fmt.Errorf("%w: %d trailing bytes", ErrInvalidFieldHeader, len(b)-n)
	}
	return f.definitions.GetFieldNameByFieldHeader(fh)
}

// EncodeFieldHeader writes a header in its shortest form. Both codes must be in [1, 255].
func EncodeFieldHeader(fh definitions.FieldHeader) ([]byte, error) {
	tc, fc := fh.TypeCode, fh.FieldCode
	if tc < 1 || tc > 255 || fc < 1 || fc > 255 {
		return nil, fmt.Errorf("%w: type %d field %d", ErrInvalidFieldHeader, tc, fc)
	}

	switch {
	case tc < 16 && fc < 16:
		return []byte{byte(tc<<4 | fc)}, nil
	case tc < 16:
		return []byte{byte(tc << 4), byte(fc)}, nil
	case fc < 16:
		return []byte{byte(fc), byte(tc)}, nil
	default:
		return []byte{0, byte(tc), byte(fc)}, nil
	}
}
