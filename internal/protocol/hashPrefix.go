// Package protocol holds the hash-domain prefixes of the XRPL wire protocol.
package protocol

// HashPrefix is a four byte tag prepended to data before hashing or signing
// so that no two kinds of object can share a digest.
type HashPrefix [4]byte

// makeHashPrefix combines three ASCII characters into a 4-byte prefix with the last byte set to zero.
func makeHashPrefix(a, b, c byte) HashPrefix {
	return HashPrefix{a, b, c, 0}
}

// HashPrefix constants for the object kinds the codec produces.
var (
	HashPrefixTransactionID       = makeHashPrefix('T', 'X', 'N') // Transaction ID
	HashPrefixTxSign              = makeHashPrefix('S', 'T', 'X') // TX for signing
	HashPrefixTxMultiSign         = makeHashPrefix('S', 'M', 'T') // TX for multi-sign
	HashPrefixPaymentChannelClaim = makeHashPrefix('C', 'L', 'M') // Channel Claim
	HashPrefixBatch               = makeHashPrefix('B', 'C', 'H') // Batch inner transactions
)

// Bytes returns the prefix as a fresh slice.
func (p HashPrefix) Bytes() []byte {
	return []byte{p[0], p[1], p[2], p[3]}
}

// Prepend returns the prefix followed by data.
func (p HashPrefix) Prepend(data []byte) []byte {
	out := make([]byte, 0, len(p)+len(data))
	out = append(out, p[:]...)
	return append(out, data...)
}
