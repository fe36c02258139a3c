// Package interfaces declares the registry view the serdes package depends on.
package interfaces

import "github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/definitions"

// Definitions is the subset of the field registry needed to read and write field headers.
type Definitions interface {
	GetFieldNameByFieldHeader(fh definitions.FieldHeader) (string, error)
	GetFieldInstanceByFieldName(fieldName string) (*definitions.FieldInstance, error)
	GetFieldInstanceByFieldHeader(fh definitions.FieldHeader) (*definitions.FieldInstance, error)
	GetFieldHeaderByFieldName(fieldName string) (*definitions.FieldHeader, error)
	CreateFieldHeader(typecode, fieldcode int32) definitions.FieldHeader
}
