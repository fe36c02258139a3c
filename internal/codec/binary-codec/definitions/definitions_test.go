package definitions

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFieldInstanceByFieldName(t *testing.T) {
	tests := []struct {
		name       string
		typeName   string
		typeCode   int32
		fieldCode  int32
		vl         bool
		signing    bool
		serialized bool
	}{
		{"TransactionType", "UInt16", 1, 2, false, true, true},
		{"Flags", "UInt32", 2, 2, false, true, true},
		{"OwnerNode", "UInt64", 3, 4, false, true, true},
		{"EmailHash", "Hash128", 4, 1, false, true, true},
		{"Digest", "Hash256", 5, 21, false, true, true},
		{"Fee", "Amount", 6, 8, false, true, true},
		{"SigningPubKey", "Blob", 7, 3, true, true, true},
		{"TxnSignature", "Blob", 7, 4, true, false, true},
		{"Account", "AccountID", 8, 1, true, true, true},
		{"Memo", "STObject", 14, 10, false, true, true},
		{"Signers", "STArray", 15, 3, false, false, true},
		{"TransactionResult", "UInt8", 16, 3, false, true, true},
		{"TakerPaysCurrency", "Hash160", 17, 1, false, true, true},
		{"Paths", "PathSet", 18, 1, false, true, true},
		{"Amendments", "Vector256", 19, 3, true, true, true},
		{"hash", "Hash256", 5, 257, false, false, false},
	}

	defs := Get()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fi, err := defs.GetFieldInstanceByFieldName(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.name, fi.FieldName)
			assert.Equal(t, tc.typeName, fi.Type)
			assert.Equal(t, FieldHeader{TypeCode: tc.typeCode, FieldCode: tc.fieldCode}, fi.FieldHeader)
			assert.Equal(t, tc.vl, fi.IsVLEncoded)
			assert.Equal(t, tc.signing, fi.IsSigningField)
			assert.Equal(t, tc.serialized, fi.IsSerialized)
		})
	}
}

func TestUnknownLookups(t *testing.T) {
	defs := Get()

	_, err := defs.GetFieldInstanceByFieldName("NotAField")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = defs.GetFieldInstanceByFieldHeader(FieldHeader{TypeCode: 2, FieldCode: 200})
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = defs.GetFieldNameByFieldHeader(FieldHeader{TypeCode: 99, FieldCode: 1})
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = defs.GetFieldHeaderByFieldName("")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = defs.GetTypeCodeByTypeName("Float")
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = defs.GetTransactionTypeCodeByTransactionTypeName("Teleport")
	assert.ErrorIs(t, err, ErrUnknownTransactionType)

	_, err = defs.GetLedgerEntryTypeNameByLedgerEntryTypeCode(0x7fff)
	assert.ErrorIs(t, err, ErrUnknownLedgerEntryType)

	_, err = defs.GetTransactionResultNameByTransactionResultCode(250)
	assert.ErrorIs(t, err, ErrUnknownTransactionResult)
}

func TestHeaderLookupRoundTrip(t *testing.T) {
	defs := Get()
	for name, fi := range defs.fields {
		if !fi.IsSerialized || fi.FieldHeader.TypeCode <= 0 {
			continue
		}
		byHeader, err := defs.GetFieldInstanceByFieldHeader(fi.FieldHeader)
		require.NoError(t, err, name)
		assert.Equal(t, name, byHeader.FieldName)
	}
}

func TestNonSerializedFieldsHaveNoHeaderEntry(t *testing.T) {
	defs := Get()
	fh, err := defs.GetFieldHeaderByFieldName("index")
	require.NoError(t, err)

	_, err = defs.GetFieldInstanceByFieldHeader(*fh)
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestEnumLookups(t *testing.T) {
	defs := Get()

	code, err := defs.GetTransactionTypeCodeByTransactionTypeName("OfferCreate")
	require.NoError(t, err)
	assert.Equal(t, int32(7), code)

	name, err := defs.GetTransactionTypeNameByTransactionTypeCode(102)
	require.NoError(t, err)
	assert.Equal(t, "UNLModify", name)

	code, err = defs.GetLedgerEntryTypeCodeByLedgerEntryTypeName("RippleState")
	require.NoError(t, err)
	assert.Equal(t, int32(0x72), code)

	code, err = defs.GetTransactionResultCodeByTransactionResultName("tecPATH_DRY")
	require.NoError(t, err)
	assert.Equal(t, int32(128), code)

	name, err = defs.GetTransactionResultNameByTransactionResultCode(0)
	require.NoError(t, err)
	assert.Equal(t, "tesSUCCESS", name)

	tn, err := defs.GetTypeNameByTypeCode(26)
	require.NoError(t, err)
	assert.Equal(t, "Currency", tn)
}

func TestCompareCanonicalOrder(t *testing.T) {
	defs := Get()
	names := []string{"TransactionResult", "Account", "Fee", "DestinationTag", "Sequence", "SourceTag", "Flags", "TransactionType"}

	fields := make([]*FieldInstance, 0, len(names))
	for _, n := range names {
		fi, err := defs.GetFieldInstanceByFieldName(n)
		require.NoError(t, err)
		fields = append(fields, fi)
	}
	sort.Slice(fields, func(i, j int) bool { return Compare(fields[i], fields[j]) < 0 })

	got := make([]string, 0, len(fields))
	for _, fi := range fields {
		got = append(got, fi.FieldName)
	}
	assert.Equal(t, []string{"TransactionType", "Flags", "SourceTag", "Sequence", "DestinationTag", "Fee", "Account", "TransactionResult"}, got)

	assert.Equal(t, 0, Compare(fields[0], fields[0]))
}

func TestReturnedInstancesAreCopies(t *testing.T) {
	defs := Get()
	fi, err := defs.GetFieldInstanceByFieldName("Fee")
	require.NoError(t, err)
	fi.IsVLEncoded = true

	again, err := defs.GetFieldInstanceByFieldName("Fee")
	require.NoError(t, err)
	assert.False(t, again.IsVLEncoded)
}

func TestConcurrentReads(t *testing.T) {
	defs := Get()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				fi, err := defs.GetFieldInstanceByFieldName("Account")
				if err != nil || fi.FieldHeader.TypeCode != 8 {
					t.Errorf("unexpected lookup result: %v %v", fi, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestLoadDefinitionsRejectsMalformedTable(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"bad field entry", `{"TYPES":{"UInt8":16},"FIELDS":[["A"]]}`},
		{"unknown type", `{"TYPES":{"UInt8":16},"FIELDS":[["A",{"nth":1,"type":"Float","isSerialized":true}]]}`},
		{"duplicate header", `{"TYPES":{"UInt8":16},"FIELDS":[["A",{"nth":1,"type":"UInt8","isSerialized":true}],["B",{"nth":1,"type":"UInt8","isSerialized":true}]]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadDefinitions([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}
