//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
)

// UInt64 represents a 64-bit unsigned integer.
type UInt64 struct{}

// ErrInvalidUInt64String is returned when a value is not a valid string representation of a UInt64.
var ErrInvalidUInt64String = errors.New("invalid UInt64 string, value should be a hex string of at most 16 digits")

var hexUInt64 = regexp.MustCompile(`^[0-9a-fA-F]{1,16}$`)

// FromJSON accepts a hex string without leading zeros, like "a" for 10, or a Go unsigned integer.
func (u *UInt64) FromJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		if !hexUInt64.MatchString(v) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidUInt64String, v)
		}
		return hex.DecodeString(strings.Repeat("0", 16-len(v)) + v)
	case uint64, uint32, uint16, uint8, uint:
		n, err := toUint(v, ^uint64(0))
		if err != nil {
			return nil, err
		}
		return binary.BigEndian.AppendUint64(nil, n), nil
	}
	return nil, fmt.Errorf("%w: got %T", ErrInvalidUInt64String, value)
}

// ToJSON returns lowercase hex with leading zeros stripped, which is how rippled prints these fields.
func (u *UInt64) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(8)
	if err != nil {
		return nil, err
	}
	hexStr := strings.TrimLeft(hex.EncodeToString(b), "0")
	if hexStr == "" {
		hexStr = "0"
	}
	return hexStr, nil
}
