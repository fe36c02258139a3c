// Package interfaces defines the BinaryParser interface for binary codec parsing operations.
//
//revive:disable:var-naming
package interfaces

import "github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/definitions"

// BinaryParser is the cursor every serialized type reads from.
type BinaryParser interface {
	ReadByte() (byte, error)
	ReadField() (*definitions.FieldInstance, error)
	ReadFieldHeader() (*definitions.FieldHeader, error)
	Peek() (byte, error)
	ReadBytes(n int) ([]byte, error)
	ReadUint16() (uint16, error)
	ReadUint32() (uint32, error)
	ReadUint64() (uint64, error)
	Skip(n int) error
	Remaining() int
	AtEnd() bool
	HasMore() bool
	ReadVariableLength() (int, error)
}
