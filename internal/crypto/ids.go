package crypto

// AccountIDSize is the size of an XRPL account ID in bytes.
const AccountIDSize = 20

// CalcAccountID computes the account ID of a public key: RIPEMD160(SHA256(publicKey)).
// The whole key, including its type prefix byte, is hashed.
func CalcAccountID(publicKey []byte) [AccountIDSize]byte {
	var id [AccountIDSize]byte
	copy(id[:], Sha256RipeMD160(publicKey))
	return id
}

// AccountIDFromBytes creates an account ID from a byte slice.
// Returns a zero account ID if the slice is not exactly 20 bytes.
func AccountIDFromBytes(b []byte) [AccountIDSize]byte {
	var result [AccountIDSize]byte
	if len(b) == AccountIDSize {
		copy(result[:], b)
	}
	return result
}

// IsZeroAccountID returns true if the account ID is all zeros.
func IsZeroAccountID(id [AccountIDSize]byte) bool {
	return id == [AccountIDSize]byte{}
}
