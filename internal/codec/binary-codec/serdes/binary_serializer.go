package serdes

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/definitions"
)

// MaxVariableLength is the largest length a VL prefix can express.
const MaxVariableLength = 918744

// ErrLengthPrefixTooLong is returned when a value is too long for a VL prefix.
var ErrLengthPrefixTooLong = errors.New("length of value must not exceed 918744 bytes of data")

// BinarySerializer accumulates serialized fields into a sink.
type BinarySerializer struct {
	sink         []byte
	fieldIDCodec *FieldIDCodec
}

// NewBinarySerializer returns an empty serializer that writes headers with fieldIDCodec.
func NewBinarySerializer(fieldIDCodec *FieldIDCodec) *BinarySerializer {
	return &BinarySerializer{
		fieldIDCodec: fieldIDCodec,
	}
}

// WriteFieldAndValue appends the field header, the VL prefix when the field
// is length-prefixed, and the value. STObject fields get the object end marker.
func (s *BinarySerializer) WriteFieldAndValue(fieldInstance definitions.FieldInstance, value []byte) error {
	header, err := EncodeFieldHeader(fieldInstance.FieldHeader)
	if err != nil {
		return fmt.Errorf("field %s: %w", fieldInstance.FieldName, err)
	}
	s.put(header)

	if fieldInstance.IsVLEncoded {
		vl, err := encodeVariableLength(len(value))
		if err != nil {
			return fmt.Errorf("field %s: %w", fieldInstance.FieldName, err)
		}
		s.put(vl)
	}

	s.put(value)

	if fieldInstance.Type == "STObject" {
		s.put([]byte{ObjectEndMarker})
	}
	return nil
}

// WriteFieldAndEmptyValue writes a VL-encoded field with a zero-length value.
func (s *BinarySerializer) WriteFieldAndEmptyValue(fieldInstance definitions.FieldInstance) error {
	if !fieldInstance.IsVLEncoded {
		return fmt.Errorf("field %s: %w: empty value needs a length prefix", fieldInstance.FieldName, ErrInvalidVariableLength)
	}
	return s.WriteFieldAndValue(fieldInstance, nil)
}

// GetSink returns the bytes written so far.
func (s *BinarySerializer) GetSink() []byte {
	return s.sink
}

func (s *BinarySerializer) put(v []byte) {
	s.sink = append(s.sink, v...)
}

// encodeVariableLength is the inverse of BinaryParser.ReadVariableLength.
func encodeVariableLength(length int) ([]byte, error) {
	switch {
	case length < 0:
		return nil, ErrInvalidVariableLength
	case length <= 192:
		return []byte{byte(length)}, nil
	case length <= 12480:
		length -= 193
		return []byte{byte(193 + (length >> 8)), byte(length & 0xFF)}, nil
	case length <= MaxVariableLength:
		length -= 12481
		return []byte{byte(241 + (length >> 16)), byte((length >> 8) & 0xFF), byte(length & 0xFF)}, nil
	}
	return nil, ErrLengthPrefixTooLong
}

// EncodeVariableLength returns the VL prefix for a value of the given length.
func EncodeVariableLength(length int) ([]byte, error) {
	return encodeVariableLength(length)
}
