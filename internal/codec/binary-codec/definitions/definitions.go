// Package definitions holds the process-wide field registry used by the binary codec.
//
// The registry is decoded once from the embedded definitions.json during package
// initialization and is read-only afterwards, so lookups are safe from any goroutine.
package definitions

import (
	_ "embed"
	"errors"
	"fmt"
	"reflect"

	"github.com/ugorji/go/codec"
)

//go:embed definitions.json
var docBytes []byte

var (
	definitions *Definitions

	// ErrUnknownField is returned when a field name or field header is not in the registry.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownType is returned when a serialized type name or code is not in the registry.
	ErrUnknownType = errors.New("unknown serialized type")
	// ErrUnknownTransactionType is returned for transaction type names or codes that are not defined.
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	// ErrUnknownLedgerEntryType is returned for ledger entry type names or codes that are not defined.
	ErrUnknownLedgerEntryType = errors.New("unknown ledger entry type")
	// ErrUnknownTransactionResult is returned for transaction result names or codes that are not defined.
	ErrUnknownTransactionResult = errors.New("unknown transaction result")
)

// Definitions is the immutable field registry.
type Definitions struct {
	types              map[string]int32
	ledgerEntryTypes   map[string]int32
	transactionResults map[string]int32
	transactionTypes   map[string]int32
	fields             map[string]FieldInstance

	typeNames              map[int32]string
	ledgerEntryTypeNames   map[int32]string
	transactionResultNames map[int32]string
	transactionTypeNames   map[int32]string
	fieldsByHeader         map[FieldHeader]string
}

// FieldInfo is the serialization metadata of a single field.
type FieldInfo struct {
	Nth            int32
	IsVLEncoded    bool
	IsSerialized   bool
	IsSigningField bool
	Type           string
}

// FieldHeader is the (type code, field code) pair that prefixes every serialized field.
type FieldHeader struct {
	TypeCode  int32
	FieldCode int32
}

// FieldInstance is a registry entry: the field name, its metadata, its header and
// the ordinal that defines the canonical field order.
type FieldInstance struct {
	FieldName string
	FieldInfo
	FieldHeader FieldHeader
	Ordinal     int32
}

type definitionsDoc struct {
	Types              map[string]int32 `json:"TYPES"`
	LedgerEntryTypes   map[string]int32 `json:"LEDGER_ENTRY_TYPES"`
	Fields             [][]interface{}  `json:"FIELDS"`
	TransactionResults map[string]int32 `json:"TRANSACTION_RESULTS"`
	TransactionTypes   map[string]int32 `json:"TRANSACTION_TYPES"`
}

func init() {
	defs, err := loadDefinitions(docBytes)
	if err != nil {
		panic(fmt.Sprintf("definitions: embedded table is corrupt: %v", err))
	}
	definitions = defs
}

// Get returns the process-wide registry.
func Get() *Definitions {
	return definitions
}

func loadDefinitions(data []byte) (*Definitions, error) {
	jh := new(codec.JsonHandle)
	jh.SignedInteger = true
	jh.MapType = reflect.TypeOf(map[string]interface{}(nil))

	var doc definitionsDoc
	if err := codec.NewDecoderBytes(data, jh).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}

	d := &Definitions{
		types:                  doc.Types,
		ledgerEntryTypes:       doc.LedgerEntryTypes,
		transactionResults:     doc.TransactionResults,
		transactionTypes:       doc.TransactionTypes,
		fields:                 make(map[string]FieldInstance, len(doc.Fields)),
		typeNames:              invert(doc.Types),
		ledgerEntryTypeNames:   invert(doc.LedgerEntryTypes),
		transactionResultNames: invert(doc.TransactionResults),
		transactionTypeNames:   invert(doc.TransactionTypes),
		fieldsByHeader:         make(map[FieldHeader]string, len(doc.Fields)),
	}

	for i, entry := range doc.Fields {
		fi, err := d.convertField(entry)
		if err != nil {
			return nil, fmt.Errorf("field entry %d: %w", i, err)
		}
		if _, dup := d.fields[fi.FieldName]; dup {
			return nil, fmt.Errorf("duplicate field name %q", fi.FieldName)
		}
		d.fields[fi.FieldName] = fi

		if !fi.IsSerialized || fi.FieldHeader.TypeCode <= 0 {
			continue
		}
		if other, dup := d.fieldsByHeader[fi.FieldHeader]; dup {
			return nil, fmt.Errorf("fields %q and %q share header %v", other, fi.FieldName, fi.FieldHeader)
		}
		d.fieldsByHeader[fi.FieldHeader] = fi.FieldName
	}

	return d, nil
}

func (d *Definitions) convertField(entry []interface{}) (FieldInstance, error) {
	if len(entry) != 2 {
		return FieldInstance{}, fmt.Errorf("expected [name, info], got %d elements", len(entry))
	}
	name, ok := entry[0].(string)
	if !ok {
		return FieldInstance{}, fmt.Errorf("field name is %T", entry[0])
	}
	raw, ok := entry[1].(map[string]interface{})
	if !ok {
		return FieldInstance{}, fmt.Errorf("field %q: info is %T", name, entry[1])
	}

	nth, err := toInt32(raw["nth"])
	if err != nil {
		return FieldInstance{}, fmt.Errorf("field %q: nth: %w", name, err)
	}
	typeName, _ := raw["type"].(string)
	typeCode, ok := d.types[typeName]
	if !ok {
		return FieldInstance{}, fmt.Errorf("field %q: %w %q", name, ErrUnknownType, typeName)
	}

	info := FieldInfo{
		Nth:            nth,
		IsVLEncoded:    raw["isVLEncoded"] == true,
		IsSerialized:   raw["isSerialized"] == true,
		IsSigningField: raw["isSigningField"] == true,
		Type:           typeName,
	}
	return FieldInstance{
		FieldName:   name,
		FieldInfo:   info,
		FieldHeader: FieldHeader{TypeCode: typeCode, FieldCode: nth},
		Ordinal:     typeCode<<16 | nth,
	}, nil
}

func toInt32(v interface{}) (int32, error) {
	switch n := v.(type) {
	case int64:
		return int32(n), nil
	case uint64:
		return int32(n), nil
	case float64:
		return int32(n), nil
	default:
		return 0, fmt.Errorf("unexpected number type %T", v)
	}
}

func invert(m map[string]int32) map[int32]string {
	out := make(map[int32]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
