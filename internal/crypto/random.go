package crypto

import (
	"crypto/rand"
	"errors"
	"io"
)

// SeedSize is the entropy length of an XRPL family seed.
const SeedSize = 16

// ErrRandomGeneration is returned when random number generation fails.
var ErrRandomGeneration = errors.New("failed to generate random bytes")

// RandomBytes generates n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, ErrRandomGeneration
	}
	return b, nil
}

// RandomSeed generates 16 bytes of seed entropy.
func RandomSeed() ([]byte, error) {
	return RandomBytes(SeedSize)
}
