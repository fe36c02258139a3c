package types

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
)

// UInt8 is a one byte unsigned integer.
type UInt8 struct{}

// FromJSON accepts any Go integer, an integral float64, a json.Number or a decimal string.
func (u *UInt8) FromJSON(value any) ([]byte, error) {
	v, err := toUint(value, math.MaxUint8)
	if err != nil {
		return nil, err
	}
	return []byte{byte(v)}, nil
}

// ToJSON returns a uint8.
func (u *UInt8) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return p.ReadByte()
}

// UInt16 is a big-endian two byte unsigned integer.
type UInt16 struct{}

// FromJSON accepts the same inputs as UInt8.FromJSON.
func (u *UInt16) FromJSON(value any) ([]byte, error) {
	v, err := toUint(value, math.MaxUint16)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint16(nil, uint16(v)), nil
}

// ToJSON returns a uint16.
func (u *UInt16) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return p.ReadUint16()
}

// UInt32 is a big-endian four byte unsigned integer.
type UInt32 struct{}

// FromJSON accepts the same inputs as UInt8.FromJSON.
func (u *UInt32) FromJSON(value any) ([]byte, error) {
	v, err := toUint(value, math.MaxUint32)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint32(nil, uint32(v)), nil
}

// ToJSON returns a uint32.
func (u *UInt32) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	return p.ReadUint32()
}

// toUint converts a JSON number in any of its decoded forms to an unsigned
// integer no larger than limit.
func toUint(value any, limit uint64) (uint64, error) {
	var (
		v   uint64
		neg bool
	)
	switch n := value.(type) {
	case int:
		v, neg = uint64(n), n < 0
	case int8:
		v, neg = uint64(n), n < 0
	case int16:
		v, neg = uint64(n), n < 0
	case int32:
		v, neg = uint64(n), n < 0
	case int64:
		v, neg = uint64(n), n < 0
	case uint:
		v = uint64(n)
	case uint8:
		v = uint64(n)
	case uint16:
		v = uint64(n)
	case uint32:
		v = uint64(n)
	case uint64:
		v = n
	case float32:
		return toUint(float64(n), limit)
	case float64:
		if n < 0 || n != math.Trunc(n) || n > float64(limit) {
			return 0, fmt.Errorf("%w: %v is not an unsigned integer up to %d", ErrNotSerializable, n, limit)
		}
		v = uint64(n)
	case json.Number:
		return toUint(string(n), limit)
	case string:
		parsed, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrNotSerializable, n)
		}
		v = parsed
	default:
		return 0, fmt.Errorf("%w: unsigned integer expected, got %T", ErrNotSerializable, value)
	}
	if neg || v > limit {
		return 0, fmt.Errorf("%w: %v is out of range [0, %d]", ErrNotSerializable, value, limit)
	}
	return v, nil
}
