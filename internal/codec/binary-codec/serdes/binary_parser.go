package serdes

import (
	"encoding/binary"
	"errors"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/serdes/interfaces"
)

var (
	// ErrParserOutOfBound is returned when a read needs more bytes than remain.
	ErrParserOutOfBound = errors.New("unexpected end of stream")
	// ErrInvalidFieldHeader is returned for field headers that are not in canonical form.
	ErrInvalidFieldHeader = errors.New("invalid field header")
	// ErrInvalidVariableLength is returned when a length prefix is outside the three encodable tiers.
	ErrInvalidVariableLength = errors.New("invalid variable length prefix")
)

// Object and array terminators used by the container types.
const (
	ObjectEndMarker byte = 0xE1
	ArrayEndMarker  byte = 0xF1
)

// BinaryParser is a bounds-checked, forward-only reader over an immutable buffer.
// A failed read never moves the cursor.
type BinaryParser struct {
	data        []byte
	pos         int
	definitions interfaces.Definitions
}

// NewBinaryParser returns a parser positioned at the start of d.
func NewBinaryParser(d []byte, definitions interfaces.Definitions) *BinaryParser {
	return &BinaryParser{
		data:        d,
		definitions: definitions,
	}
}

// ReadField reads a field header and resolves it against the registry.
func (p *BinaryParser) ReadField() (*definitions.FieldInstance, error) {
	fh, err := p.ReadFieldHeader()
	if err != nil {
		return nil, err
	}
	return p.definitions.GetFieldInstanceByFieldHeader(*fh)
}

// ReadFieldHeader reads a one to three byte field header.
func (p *BinaryParser) ReadFieldHeader() (*definitions.FieldHeader, error) {
	fh, n, err := decodeFieldHeader(p.data[p.pos:])
	if err != nil {
		return nil, err
	}
	p.pos += n
	return &fh, nil
}

// ReadByte reads a single byte.
func (p *BinaryParser) ReadByte() (byte, error) {
	if p.pos >= len(p.data) {
		return 0, ErrParserOutOfBound
	}
	b := p.data[p.pos]
	p.pos++
	return b, nil
}

// Peek returns the next byte without consuming it.
func (p *BinaryParser) Peek() (byte, error) {
	if p.pos >= len(p.data) {
		return 0, ErrParserOutOfBound
	}
	return p.data[p.pos], nil
}

// ReadBytes reads exactly n bytes. The returned slice is a copy.
func (p *BinaryParser) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > p.Remaining() {
		return nil, ErrParserOutOfBound
	}
	out := make([]byte, n)
	copy(out, p.data[p.pos:p.pos+n])
	p.pos += n
	return out, nil
}

// ReadUint16 reads a big-endian uint16.
func (p *BinaryParser) ReadUint16() (uint16, error) {
	if p.Remaining() < 2 {
		return 0, ErrParserOutOfBound
	}
	v := binary.BigEndian.Uint16(p.data[p.pos:])
	p.pos += 2
	return v, nil
}

// ReadUint32 reads a big-endian uint32.
func (p *BinaryParser) ReadUint32() (uint32, error) {
	if p.Remaining() < 4 {
		return 0, ErrParserOutOfBound
	}
	v := binary.BigEndian.Uint32(p.data[p.pos:])
	p.pos += 4
	return v, nil
}

// ReadUint64 reads a big-endian uint64.
func (p *BinaryParser) ReadUint64() (uint64, error) {
	if p.Remaining() < 8 {
		return 0, ErrParserOutOfBound
	}
	v := binary.BigEndian.Uint64(p.data[p.pos:])
	p.pos += 8
	return v, nil
}

// Skip advances the cursor by n bytes.
func (p *BinaryParser) Skip(n int) error {
	if n < 0 || n > p.Remaining() {
		return ErrParserOutOfBound
	}
	p.pos += n
	return nil
}

// Remaining reports how many unread bytes are left.
func (p *BinaryParser) Remaining() int {
	return len(p.data) - p.pos
}

// AtEnd reports whether the whole buffer has been consumed.
func (p *BinaryParser) AtEnd() bool {
	return p.pos >= len(p.data)
}

// HasMore is the negation of AtEnd.
func (p *BinaryParser) HasMore() bool {
	return !p.AtEnd()
}

// ReadVariableLength reads a VL length prefix:
//
//	b0 <= 192        length = b0
//	193 <= b0 <= 240 length = 193 + (b0-193)*256 + b1
//	241 <= b0 <= 254 length = 12481 + (b0-241)*65536 + b1*256 + b2
func (p *BinaryParser) ReadVariableLength() (int, error) {
	b0, err := p.Peek()
	if err != nil {
		return 0, err
	}

	switch {
	case b0 <= 192:
		p.pos++
		return int(b0), nil
	case b0 <= 240:
		if p.Remaining() < 2 {
			return 0, ErrParserOutOfBound
		}
		b1 := p.data[p.pos+1]
		p.pos += 2
		return 193 + (int(b0)-193)*256 + int(b1), nil
	case b0 <= 254:
		if p.Remaining() < 3 {
			return 0, ErrParserOutOfBound
		}
		b1, b2 := p.data[p.pos+1], p.data[p.pos+2]
		length := 12481 + (int(b0)-241)*65536 + int(b1)*256 + int(b2)
		if length > MaxVariableLength {
			return 0, ErrInvalidVariableLength
		}
		p.pos += 3
		return length, nil
	default:
		return 0, ErrInvalidVariableLength
	}
}

// decodeFieldHeader decodes the header at the start of b and reports how many bytes it used.
func decodeFieldHeader(b []byte) (definitions.FieldHeader, int, error) {
	if len(b) == 0 {
		return definitions.FieldHeader{}, 0, ErrParserOutOfBound
	}
	typeCode := int32(b[0] >> 4)
	fieldCode := int32(b[0] & 0x0F)

	n := 1
	if typeCode == 0 {
		n++
	}
	if fieldCode == 0 {
		n++
	}
	if len(b) < n {
		return definitions.FieldHeader{}, 0, ErrParserOutOfBound
	}

	i := 1
	if typeCode == 0 {
		typeCode = int32(b[i])
		i++
		if typeCode < 16 {
			return definitions.FieldHeader{}, 0, ErrInvalidFieldHeader
		}
	}
	if fieldCode == 0 {
		fieldCode = int32(b[i])
		if fieldCode < 16 {
			return definitions.FieldHeader{}, 0, ErrInvalidFieldHeader
		}
	}
	return definitions.FieldHeader{TypeCode: typeCode, FieldCode: fieldCode}, n, nil
}
