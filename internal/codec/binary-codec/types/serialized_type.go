// Package types implements the closed set of serialized field types of the
// XRPL binary format and the STObject/STArray containers built from them.
//
//revive:disable:var-naming
package types

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
	"go.uber.org/zap"
)

var (
	// ErrNotSerializable is returned when a JSON value has the wrong shape for its field type.
	ErrNotSerializable = errors.New("value is not serializable")
	// ErrInvalidCurrencyCode is returned for currency codes that are neither a standard code nor 40 hex digits.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
	// ErrAmountOutOfRange is the sentinel every OutOfRangeError unwraps to.
	ErrAmountOutOfRange = errors.New("amount out of range")
	// ErrInvalidAmount is returned for amounts that cannot be parsed at all.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMaxDepthExceeded is returned when objects and arrays nest deeper than Options.MaxDepth.
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
	// ErrDuplicateField is returned when a decoded object carries the same field twice.
	ErrDuplicateField = errors.New("duplicate field")
	// ErrUnexpectedMarker is returned for an end marker where none is allowed, or a missing one.
	ErrUnexpectedMarker = errors.New("unexpected end marker")
)

// OutOfRangeError reports which limit an issued currency value violated.
type OutOfRangeError struct {
	Type  string
	Value string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s out of range for %q", ErrAmountOutOfRange, e.Type, e.Value)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrAmountOutOfRange
}

// SerializedType converts one field type between its JSON and binary forms.
type SerializedType interface {
	FromJSON(json any) ([]byte, error)
	ToJSON(parser interfaces.BinaryParser, opts ...int) (any, error)
}

// Mode selects how containers treat fields missing from the registry.
type Mode int

const (
	// ModeStrict rejects unknown fields.
	ModeStrict Mode = iota
	// ModeLenient skips unknown keys when encoding and discards unknown fields when decoding.
	ModeLenient
)

// DefaultMaxDepth bounds object and array nesting.
const DefaultMaxDepth = 10

// Options tune the container serializers. The zero value is strict mode with DefaultMaxDepth.
type Options struct {
	Mode     Mode
	MaxDepth int
	Logger   *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// GetSerializedType returns the codec for a registry type name, or nil when the name is unknown.
func GetSerializedType(t string) SerializedType {
	switch t {
	case "UInt8":
		return &UInt8{}
	case "UInt16":
		return &UInt16{}
	case "UInt32":
		return &UInt32{}
	case "UInt64":
		return &UInt64{}
	case "Hash128":
		return NewHash128()
	case "Hash160":
		return NewHash160()
	case "Hash256":
		return NewHash256()
	case "AccountID":
		return &AccountID{}
	case "Amount":
		return &Amount{}
	case "Blob":
		return &Blob{}
	case "Currency":
		return &Currency{}
	case "Issue":
		return &Issue{}
	case "PathSet":
		return &PathSet{}
	case "Vector256":
		return &Vector256{}
	case "XChainBridge":
		return &XChainBridge{}
	case "STObject":
		return NewSTObject(nil)
	case "STArray":
		return &STArray{}
	}
	return nil
}

// isVLType reports whether values of the type carry a length prefix.
func isVLType(t string) bool {
	return t == "Blob" || t == "AccountID" || t == "Vector256"
}
