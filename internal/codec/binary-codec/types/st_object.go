package types

import (
	"fmt"
	"sort"

	addresscodec "github.com/LeJamon/goXRPLcodec/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
	"go.uber.org/zap"
)

// xAddressTagFields maps the AccountID fields that may carry an X-address tag
// to the field that receives it.
var xAddressTagFields = map[string]string{
	"Account":     "SourceTag",
	"Destination": "DestinationTag",
}

const unlModifyTransactionType = "UNLModify"

// STObject is an ordered set of fields. At the top level it runs to the end
// of the input; nested objects end with the object end marker.
type STObject struct {
	OnlySigning bool
	Serializer  interfaces.BinarySerializer

	opts   Options
	depth  int
	nested bool
}

// NewSTObject returns a top level object that writes into serializer.
// A nil serializer gets a fresh one on the first FromJSON call.
func NewSTObject(serializer interfaces.BinarySerializer) *STObject {
	return NewSTObjectWithOptions(serializer, Options{})
}

// NewSTObjectWithOptions is NewSTObject with explicit mode, depth limit and logger.
func NewSTObjectWithOptions(serializer interfaces.BinarySerializer, opts Options) *STObject {
	return &STObject{
		Serializer: serializer,
		opts:       opts.withDefaults(),
	}
}

func newSerializer() interfaces.BinarySerializer {
	return serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get()))
}

func (t *STObject) child() *STObject {
	return &STObject{
		Serializer: newSerializer(),
		opts:       t.opts,
		depth:      t.depth + 1,
		nested:     true,
	}
}

func (t *STObject) array() *STArray {
	return &STArray{opts: t.opts, depth: t.depth + 1}
}

// FromJSON writes the serializable fields of a map in canonical order and returns the sink.
func (t *STObject) FromJSON(json any) ([]byte, error) {
	t.opts = t.opts.withDefaults()
	if t.depth > t.opts.MaxDepth {
		return nil, fmt.Errorf("%w: limit is %d", ErrMaxDepthExceeded, t.opts.MaxDepth)
	}
	m, ok := json.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: object expected, got %T", ErrNotSerializable, json)
	}
	if t.Serializer == nil {
		t.Serializer = newSerializer()
	}

	defs := definitions.Get()
	m, err := expandXAddresses(m, defs)
	if err != nil {
		return nil, err
	}

	fields := make([]*definitions.FieldInstance, 0, len(m))
	for k := range m {
		fi, err := defs.GetFieldInstanceByFieldName(k)
		if err != nil {
			if t.opts.Mode == ModeLenient {
				t.opts.Logger.Debug("skipping unknown field", zap.String("field", k))
				continue
			}
			return nil, err
		}
		if !fi.IsSerialized || (t.OnlySigning && !fi.IsSigningField) {
			continue
		}
		fields = append(fields, fi)
	}
	sort.Slice(fields, func(i, j int) bool {
		return definitions.Compare(fields[i], fields[j]) < 0
	})

	unlModify := isUNLModify(m["TransactionType"], defs)
	for _, fi := range fields {
		if unlModify && fi.FieldName == "Account" {
			if err := t.Serializer.WriteFieldAndEmptyValue(*fi); err != nil {
				return nil, err
			}
			continue
		}
		value, err := t.encodeField(fi, m[fi.FieldName], defs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fi.FieldName, err)
		}
		if err := t.Serializer.WriteFieldAndValue(*fi, value); err != nil {
			return nil, err
		}
	}
	return t.Serializer.GetSink(), nil
}

func (t *STObject) encodeField(fi *definitions.FieldInstance, value any, defs *definitions.Definitions) ([]byte, error) {
	switch fi.Type {
	case "STObject":
		return t.child().FromJSON(value)
	case "STArray":
		return t.array().FromJSON(value)
	}

	if name, ok := value.(string); ok {
		code, isEnum, err := enumCode(fi.FieldName, name, defs)
		if err != nil {
			return nil, err
		}
		if isEnum {
			value = code
		}
	}

	st := GetSerializedType(fi.Type)
	if st == nil {
		return nil, fmt.Errorf("%w: no codec for type %s", ErrNotSerializable, fi.Type)
	}
	return st.FromJSON(value)
}

// ToJSON reads fields until the end marker (nested) or the end of input (top level).
func (t *STObject) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	t.opts = t.opts.withDefaults()
	if t.depth > t.opts.MaxDepth {
		return nil, fmt.Errorf("%w: limit is %d", ErrMaxDepthExceeded, t.opts.MaxDepth)
	}
	defs := definitions.Get()
	out := make(map[string]any)

	for {
		if p.AtEnd() {
			if t.nested {
				return nil, fmt.Errorf("%w: object is missing its end marker", serdes.ErrParserOutOfBound)
			}
			return out, nil
		}

		fi, skipped, err := t.readField(p, defs)
		if err != nil {
			return nil, err
		}
		if skipped {
			continue
		}

		switch fi.FieldName {
		case "ObjectEndMarker":
			if !t.nested {
				return nil, fmt.Errorf("%w: object end marker at the top level", ErrUnexpectedMarker)
			}
			return out, nil
		case "ArrayEndMarker":
			return nil, fmt.Errorf("%w: array end marker inside an object", ErrUnexpectedMarker)
		}
		if _, dup := out[fi.FieldName]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, fi.FieldName)
		}

		v, err := t.decodeValue(p, fi.FieldName, fi.Type, fi.IsVLEncoded, defs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fi.FieldName, err)
		}
		out[fi.FieldName] = v
	}
}

// readField reads the next header. In lenient mode a field missing from the
// registry is parsed by its type code, discarded and reported as skipped.
func (t *STObject) readField(p interfaces.BinaryParser, defs *definitions.Definitions) (*definitions.FieldInstance, bool, error) {
	fh, err := p.ReadFieldHeader()
	if err != nil {
		return nil, false, err
	}
	fi, err := defs.GetFieldInstanceByFieldHeader(*fh)
	if err == nil {
		return fi, false, nil
	}
	if t.opts.Mode != ModeLenient {
		return nil, false, err
	}

	typeName, terr := defs.GetTypeNameByTypeCode(fh.TypeCode)
	if terr != nil {
		return nil, false, terr
	}
	if _, err := t.decodeValue(p, "", typeName, isVLType(typeName), defs); err != nil {
		return nil, false, fmt.Errorf("unknown field type %d field %d: %w", fh.TypeCode, fh.FieldCode, err)
	}
	t.opts.Logger.Debug("skipped unknown field",
		zap.Int32("type_code", fh.TypeCode),
		zap.Int32("field_code", fh.FieldCode),
		zap.String("type", typeName))
	return nil, true, nil
}

func (t *STObject) decodeValue(p interfaces.BinaryParser, fieldName, typeName string, isVL bool, defs *definitions.Definitions) (any, error) {
	var hint []int
	if isVL {
		n, err := p.ReadVariableLength()
		if err != nil {
			return nil, err
		}
		hint = []int{n}
	}

	switch typeName {
	case "STObject":
		return t.child().ToJSON(p)
	case "STArray":
		return t.array().ToJSON(p)
	}

	st := GetSerializedType(typeName)
	if st == nil {
		return nil, fmt.Errorf("%w: no codec for type %s", ErrNotSerializable, typeName)
	}
	v, err := st.ToJSON(p, hint...)
	if err != nil {
		return nil, err
	}
	return t.enumName(fieldName, v, defs)
}

// enumCode resolves the name of an enumerated field to its code. Decimal
// strings are left for the integer codec.
func enumCode(fieldName, name string, defs *definitions.Definitions) (int32, bool, error) {
	var (
		code int32
		err  error
	)
	switch fieldName {
	case "TransactionType":
		code, err = defs.GetTransactionTypeCodeByTransactionTypeName(name)
	case "LedgerEntryType":
		code, err = defs.GetLedgerEntryTypeCodeByLedgerEntryTypeName(name)
	case "TransactionResult":
		code, err = defs.GetTransactionResultCodeByTransactionResultName(name)
	default:
		return 0, false, nil
	}
	if err != nil {
		if _, numErr := toUint(name, ^uint64(0)); numErr == nil {
			return 0, false, nil
		}
		return 0, false, err
	}
	return code, true, nil
}

// enumName replaces the numeric value of an enumerated field with its name.
func (t *STObject) enumName(fieldName string, v any, defs *definitions.Definitions) (any, error) {
	var (
		name string
		err  error
	)
	switch fieldName {
	case "TransactionType":
		name, err = defs.GetTransactionTypeNameByTransactionTypeCode(int32(v.(uint16)))
	case "LedgerEntryType":
		name, err = defs.GetLedgerEntryTypeNameByLedgerEntryTypeCode(int32(v.(uint16)))
	case "TransactionResult":
		name, err = defs.GetTransactionResultNameByTransactionResultCode(int32(v.(uint8)))
	default:
		return v, nil
	}
	if err != nil {
		if t.opts.Mode == ModeLenient {
			return v, nil
		}
		return nil, err
	}
	return name, nil
}

// expandXAddresses returns m with X-addresses in AccountID fields replaced by
// classic addresses and their tags moved into the matching tag field. m is not modified.
func expandXAddresses(m map[string]any, defs *definitions.Definitions) (map[string]any, error) {
	var out map[string]any
	for k, v := range m {
		s, ok := v.(string)
		if !ok || !addresscodec.IsValidXAddress(s) {
			continue
		}
		fi, err := defs.GetFieldInstanceByFieldName(k)
		if err != nil || fi.Type != "AccountID" {
			continue
		}
		x, err := addresscodec.DecodeXAddress(s)
		if err != nil {
			return nil, err
		}

		if out == nil {
			out = make(map[string]any, len(m)+1)
			for mk, mv := range m {
				out[mk] = mv
			}
		}
		out[k] = x.ClassicAddress
		if !x.HasTag {
			continue
		}

		tagField, ok := xAddressTagFields[k]
		if !ok {
			return nil, fmt.Errorf("%w: %s cannot carry a tag", addresscodec.ErrInvalidExtendedAddress, k)
		}
		if existing, has := m[tagField]; has {
			if tag, err := toUint(existing, 1<<32-1); err != nil || tag != uint64(x.Tag) {
				return nil, fmt.Errorf("%w: %s conflicts with the tag in %s", addresscodec.ErrInvalidExtendedAddress, tagField, k)
			}
		}
		out[tagField] = x.Tag
	}
	if out == nil {
		return m, nil
	}
	return out, nil
}

func isUNLModify(v any, defs *definitions.Definitions) bool {
	if s, ok := v.(string); ok && s == unlModifyTransactionType {
		return true
	}
	code, err := defs.GetTransactionTypeCodeByTransactionTypeName(unlModifyTransactionType)
	if err != nil {
		return false
	}
	n, err := toUint(v, 1<<16-1)
	return err == nil && n == uint64(code)
}
