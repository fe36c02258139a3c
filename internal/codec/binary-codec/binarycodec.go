// Package binarycodec converts XRPL transactions and ledger objects between
// their JSON form and the canonical binary form that is hashed and signed.
package binarycodec

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types"
	"github.com/LeJamon/goXRPLcodec/internal/crypto"
	"github.com/LeJamon/goXRPLcodec/internal/protocol"
)

var (
	// ErrInvalidHex is returned when Decode receives a string that is not hex.
	ErrInvalidHex = errors.New("invalid hex string")
	// ErrSigningClaimFieldNotFound is returned when a claim is missing Channel or Amount.
	ErrSigningClaimFieldNotFound = errors.New("'Channel' & 'Amount' fields are both required, but were not found")
	// ErrBatchFieldNotFound is returned when a batch is missing flags or txIDs.
	ErrBatchFieldNotFound = errors.New("'flags' & 'txIDs' fields are both required, but were not found")
	// ErrInvalidClaimAmount is returned when a claim amount is not a drops string.
	ErrInvalidClaimAmount = errors.New("claim amount must be a non-negative integer number of drops")
)

var (
	txSigPrefix               = prefixHex(protocol.HashPrefixTxSign)
	txMultiSigPrefix          = prefixHex(protocol.HashPrefixTxMultiSign)
	paymentChannelClaimPrefix = prefixHex(protocol.HashPrefixPaymentChannelClaim)
	batchPrefix               = prefixHex(protocol.HashPrefixBatch)
)

func prefixHex(p protocol.HashPrefix) string {
	return strings.ToUpper(hex.EncodeToString(p.Bytes()))
}

// Encode serializes a transaction or ledger object to uppercase hex.
func Encode(json map[string]any) (string, error) {
	return EncodeWithOptions(json, types.Options{})
}

// EncodeWithOptions is Encode with an explicit mode, depth limit and logger.
func EncodeWithOptions(json map[string]any, opts types.Options) (string, error) {
	b, err := encode(json, false, opts)
	if err != nil {
		return "", err
	}
	return upperHex(b), nil
}

// EncodeForSigning serializes only the signing fields, prefixed with STX.
func EncodeForSigning(json map[string]any) (string, error) {
	b, err := encode(json, true, types.Options{})
	if err != nil {
		return "", err
	}
	return txSigPrefix + upperHex(b), nil
}

// EncodeForMultisigning serializes the signing fields for one signer of a
// multisigned transaction: SMT prefix, fields, then the signer's account ID.
// SigningPubKey is always empty in the signed data; json is not modified.
func EncodeForMultisigning(json map[string]any, accountID string) (string, error) {
	signer, err := (&types.AccountID{}).FromJSON(accountID)
	if err != nil {
		return "", fmt.Errorf("signer: %w", err)
	}

	tx := make(map[string]any, len(json)+1)
	for k, v := range json {
		tx[k] = v
	}
	tx["SigningPubKey"] = ""

	b, err := encode(tx, true, types.Options{})
	if err != nil {
		return "", err
	}
	return txMultiSigPrefix + upperHex(b) + upperHex(signer), nil
}

// EncodeForSigningClaim serializes a payment channel claim: CLM prefix,
// the 32 byte channel ID and the amount in drops as a big-endian uint64.
func EncodeForSigningClaim(json map[string]any) (string, error) {
	channel, okChannel := lookup(json, "Channel", "channel")
	amount, okAmount := lookup(json, "Amount", "amount")
	if !okChannel || !okAmount {
		return "", ErrSigningClaimFieldNotFound
	}

	channelBytes, err := types.NewHash256().FromJSON(channel)
	if err != nil {
		return "", fmt.Errorf("channel: %w", err)
	}
	drops, err := claimDrops(amount)
	if err != nil {
		return "", err
	}

	out := make([]byte, 0, len(channelBytes)+8)
	out = append(out, channelBytes...)
	out = binary.BigEndian.AppendUint64(out, drops)
	return paymentChannelClaimPrefix + upperHex(out), nil
}

func claimDrops(v any) (uint64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%w: got %T", ErrInvalidClaimAmount, v)
	}
	drops, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClaimAmount, s)
	}
	return drops, nil
}

// EncodeForSigningBatch serializes the data an account signs to authorize a
// Batch: BCH prefix, flags, the number of inner transactions and their IDs.
func EncodeForSigningBatch(json map[string]any) (string, error) {
	flags, okFlags := json["flags"]
	ids, okIDs := json["txIDs"]
	if !okFlags || !okIDs {
		return "", ErrBatchFieldNotFound
	}

	flagBytes, err := (&types.UInt32{}).FromJSON(flags)
	if err != nil {
		return "", fmt.Errorf("flags: %w", err)
	}

	var txIDs []string
	switch v := ids.(type) {
	case []string:
		txIDs = v
	case []any:
		for i, id := range v {
			s, ok := id.(string)
			if !ok {
				return "", fmt.Errorf("txIDs[%d]: %w: got %T", i, types.ErrNotSerializable, id)
			}
			txIDs = append(txIDs, s)
		}
	default:
		return "", fmt.Errorf("txIDs: %w: got %T", types.ErrNotSerializable, ids)
	}

	out := make([]byte, 0, 8+32*len(txIDs))
	out = append(out, flagBytes...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(txIDs)))
	for i, id := range txIDs {
		b, err := types.NewHash256().FromJSON(id)
		if err != nil {
			return "", fmt.Errorf("txIDs[%d]: %w", i, err)
		}
		out = append(out, b...)
	}
	return batchPrefix + upperHex(out), nil
}

// Decode parses a hex encoded transaction or ledger object.
func Decode(hexEncoded string) (map[string]any, error) {
	return DecodeWithOptions(hexEncoded, types.Options{})
}

// DecodeWithOptions is Decode with an explicit mode, depth limit and logger.
func DecodeWithOptions(hexEncoded string, opts types.Options) (map[string]any, error) {
	b, err := hex.DecodeString(hexEncoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return decodeBytes(b, opts)
}

func decodeBytes(b []byte, opts types.Options) (map[string]any, error) {
	p := serdes.NewBinaryParser(b, definitions.Get())
	v, err := types.NewSTObjectWithOptions(nil, opts).ToJSON(p)
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

// TransactionID returns the hash that identifies a signed transaction blob.
func TransactionID(txBlobHex string) (string, error) {
	b, err := hex.DecodeString(txBlobHex)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	sum := crypto.Sha512Half(protocol.HashPrefixTransactionID.Bytes(), b)
	return upperHex(sum[:]), nil
}

// SigningHash returns the digest a single signer signs for json.
func SigningHash(json map[string]any) (string, error) {
	b, err := encode(json, true, types.Options{})
	if err != nil {
		return "", err
	}
	sum := crypto.Sha512Half(protocol.HashPrefixTxSign.Bytes(), b)
	return upperHex(sum[:]), nil
}

func encode(json map[string]any, onlySigning bool, opts types.Options) ([]byte, error) {
	if json == nil {
		return nil, fmt.Errorf("%w: nil object", types.ErrNotSerializable)
	}
	st := types.NewSTObjectWithOptions(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get())), opts)
	st.OnlySigning = onlySigning
	return st.FromJSON(json)
}

func lookup(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
