// Package interfaces defines the BinarySerializer interface for binary codec serialization operations.
//
//revive:disable:var-naming
package interfaces

import "github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/definitions"

// BinarySerializer is the sink a container writes its fields into.
type BinarySerializer interface {
	WriteFieldAndValue(fieldInstance definitions.FieldInstance, value []byte) error
	WriteFieldAndEmptyValue(fieldInstance definitions.FieldInstance) error
	GetSink() []byte
}
