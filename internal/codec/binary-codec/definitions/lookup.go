package definitions

import "fmt"

// GetTypeNameByTypeCode returns the serialized type name for a type code.
func (d *Definitions) GetTypeNameByTypeCode(tc int32) (string, error) {
	name, ok := d.typeNames[tc]
	if !ok {
		return "", fmt.Errorf("%w: code %d", ErrUnknownType, tc)
	}
	return name, nil
}

// GetTypeCodeByTypeName returns the type code for a serialized type name.
func (d *Definitions) GetTypeCodeByTypeName(name string) (int32, error) {
	tc, ok := d.types[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return tc, nil
}

// GetTypeCodeByFieldName returns the type code of the named field.
func (d *Definitions) GetTypeCodeByFieldName(fieldName string) (int32, error) {
	fi, ok := d.fields[fieldName]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, fieldName)
	}
	return fi.FieldHeader.TypeCode, nil
}

// GetFieldInstanceByFieldName looks a field up by its canonical name.
func (d *Definitions) GetFieldInstanceByFieldName(fieldName string) (*FieldInstance, error) {
	fi, ok := d.fields[fieldName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, fieldName)
	}
	return &fi, nil
}

// GetFieldInstanceByFieldHeader looks a serialized field up by its header.
func (d *Definitions) GetFieldInstanceByFieldHeader(fh FieldHeader) (*FieldInstance, error) {
	name, ok := d.fieldsByHeader[fh]
	if !ok {
		return nil, fmt.Errorf("%w: type %d field %d", ErrUnknownField, fh.TypeCode, fh.FieldCode)
	}
	fi := d.fields[name]
	return &fi, nil
}

// GetFieldNameByFieldHeader returns the name of the field with the given header.
func (d *Definitions) GetFieldNameByFieldHeader(fh FieldHeader) (string, error) {
	name, ok := d.fieldsByHeader[fh]
	if !ok {
		return "", fmt.Errorf("%w: type %d field %d", ErrUnknownField, fh.TypeCode, fh.FieldCode)
	}
	return name, nil
}

// GetFieldHeaderByFieldName returns the header of the named field.
func (d *Definitions) GetFieldHeaderByFieldName(fieldName string) (*FieldHeader, error) {
	fi, ok := d.fields[fieldName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, fieldName)
	}
	fh := fi.FieldHeader
	return &fh, nil
}

// CreateFieldHeader builds a FieldHeader from its two codes.
func (d *Definitions) CreateFieldHeader(tc, fc int32) FieldHeader {
	return FieldHeader{TypeCode: tc, FieldCode: fc}
}

// GetTransactionTypeCodeByTransactionTypeName maps e.g. "Payment" to 0.
func (d *Definitions) GetTransactionTypeCodeByTransactionTypeName(name string) (int32, error) {
	code, ok := d.transactionTypes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTransactionType, name)
	}
	return code, nil
}

// GetTransactionTypeNameByTransactionTypeCode maps e.g. 7 to "OfferCreate".
func (d *Definitions) GetTransactionTypeNameByTransactionTypeCode(code int32) (string, error) {
	name, ok := d.transactionTypeNames[code]
	if !ok {
		return "", fmt.Errorf("%w: code %d", ErrUnknownTransactionType, code)
	}
	return name, nil
}

// GetLedgerEntryTypeCodeByLedgerEntryTypeName maps e.g. "RippleState" to 0x72.
func (d *Definitions) GetLedgerEntryTypeCodeByLedgerEntryTypeName(name string) (int32, error) {
	code, ok := d.ledgerEntryTypes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLedgerEntryType, name)
	}
	return code, nil
}

// GetLedgerEntryTypeNameByLedgerEntryTypeCode is the inverse of GetLedgerEntryTypeCodeByLedgerEntryTypeName.
func (d *Definitions) GetLedgerEntryTypeNameByLedgerEntryTypeCode(code int32) (string, error) {
	name, ok := d.ledgerEntryTypeNames[code]
	if !ok {
		return "", fmt.Errorf("%w: code %d", ErrUnknownLedgerEntryType, code)
	}
	return name, nil
}

// GetTransactionResultCodeByTransactionResultName maps e.g. "tesSUCCESS" to 0.
func (d *Definitions) GetTransactionResultCodeByTransactionResultName(name string) (int32, error) {
	code, ok := d.transactionResults[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTransactionResult, name)
	}
	return code, nil
}

// GetTransactionResultNameByTransactionResultCode is the inverse of GetTransactionResultCodeByTransactionResultName.
func (d *Definitions) GetTransactionResultNameByTransactionResultCode(code int32) (string, error) {
	name, ok := d.transactionResultNames[code]
	if !ok {
		return "", fmt.Errorf("%w: code %d", ErrUnknownTransactionResult, code)
	}
	return name, nil
}

// Compare orders two fields canonically: by type code, then by field code.
func Compare(a, b *FieldInstance) int {
	switch {
	case a.Ordinal < b.Ordinal:
		return -1
	case a.Ordinal > b.Ordinal:
		return 1
	default:
		return 0
	}
}
