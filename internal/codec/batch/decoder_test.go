package batch

import (
	"bytes"
	"context"
	"strings"
	"testing"

	binarycodec "github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	paymentBlob = "1200002400000001"
	offerBlob   = "1200072400000002"
)

func TestDecodeOrderedResults(t *testing.T) {
	d, err := NewDecoder(WithWorkers(4))
	require.NoError(t, err)

	blobs := []string{paymentBlob, "ZZ", offerBlob, "1200", paymentBlob}
	results, err := d.Decode(context.Background(), blobs)
	require.NoError(t, err)
	require.Len(t, results, len(blobs))

	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}
	assert.Equal(t, map[string]any{"TransactionType": "Payment", "Sequence": uint32(1)}, results[0].Object)
	assert.ErrorIs(t, results[1].Err, binarycodec.ErrInvalidHex)
	assert.Equal(t, map[string]any{"TransactionType": "OfferCreate", "Sequence": uint32(2)}, results[2].Object)
	assert.ErrorIs(t, results[3].Err, serdes.ErrParserOutOfBound)
	assert.Equal(t, results[0].Object, results[4].Object)
}

func TestDecodeCache(t *testing.T) {
	d, err := NewDecoder(WithWorkers(1), WithCacheSize(8))
	require.NoError(t, err)

	results, err := d.Decode(context.Background(), []string{paymentBlob, offerBlob, paymentBlob, strings.ToLower(offerBlob)})
	require.NoError(t, err)

	assert.False(t, results[0].Cached)
	assert.False(t, results[1].Cached)
	assert.True(t, results[2].Cached)
	assert.True(t, results[3].Cached, "hex case does not change the cache key")
	assert.Equal(t, Stats{Decoded: 2, CacheHits: 2}, d.Stats())
}

func TestDecodeWithoutCache(t *testing.T) {
	d, err := NewDecoder(WithWorkers(1), WithCacheSize(0))
	require.NoError(t, err)

	results, err := d.Decode(context.Background(), []string{paymentBlob, paymentBlob, "0"})
	require.NoError(t, err)
	assert.False(t, results[1].Cached)
	assert.Equal(t, Stats{Decoded: 2, Failed: 1}, d.Stats())
}

func TestDecodeCanceled(t *testing.T) {
	d, err := NewDecoder()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = d.Decode(ctx, []string{paymentBlob, offerBlob})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeEmptyInput(t *testing.T) {
	d, err := NewDecoder()
	require.NoError(t, err)

	results, err := d.Decode(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNewDecoderRejectsNegativeCache(t *testing.T) {
	_, err := NewDecoder(WithCacheSize(-1))
	assert.Error(t, err)
}

func TestDecodeLenientWithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	d, err := NewDecoder(
		WithWorkers(1),
		WithLogger(zap.New(core)),
		WithCodecOptions(types.Options{Mode: types.ModeLenient}),
	)
	require.NoError(t, err)

	unknown := "20FF00000000"
	results, err := d.Decode(context.Background(), []string{paymentBlob + unknown})
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	assert.Equal(t, map[string]any{"TransactionType": "Payment", "Sequence": uint32(1)}, results[0].Object)
	assert.Equal(t, 1, logs.FilterMessage("skipped unknown field").Len())

	strict, err := NewDecoder(WithWorkers(1))
	require.NoError(t, err)
	results, err = strict.Decode(context.Background(), []string{paymentBlob + unknown})
	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Err, definitions.ErrUnknownField)
}

func TestReadBlobs(t *testing.T) {
	input := "# fixtures\n" + paymentBlob + "\n\n  " + offerBlob + "  \n"
	blobs, err := ReadBlobs(strings.NewReader(input), false)
	require.NoError(t, err)
	assert.Equal(t, []string{paymentBlob, offerBlob}, blobs)
}

func TestWriteReadBlobsCompressed(t *testing.T) {
	want := []string{paymentBlob, offerBlob, paymentBlob}

	var buf bytes.Buffer
	require.NoError(t, WriteBlobs(&buf, want, true))

	got, err := ReadBlobs(&buf, true)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadBlobsCorruptFrame(t *testing.T) {
	_, err := ReadBlobs(strings.NewReader("definitely not lz4"), true)
	assert.Error(t, err)
}
