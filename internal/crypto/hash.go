package crypto

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// Sha512Half returns the first 32 bytes of the SHA-512 digest of msg.
// Every ledger object and transaction identifier is a Sha512Half.
func Sha512Half(msg ...[]byte) [32]byte {
	h := sha512.New()
	for _, m := range msg {
		h.Write(m)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Sha256RipeMD160 returns RIPEMD160(SHA256(b)).
func Sha256RipeMD160(b []byte) []byte {
	sum := sha256.Sum256(b)
	r := ripemd160.New()
	r.Write(sum[:])
	return r.Sum(nil)
}

// DoubleSha256 returns SHA256(SHA256(b)), the Base58Check checksum source.
func DoubleSha256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}
