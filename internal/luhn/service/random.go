package service

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

type cryptoSource struct{}

// NewCryptoSource creates a RandomSource backed by crypto/rand.
func NewCryptoSource() RandomSource {
	return &cryptoSource{}
}

// Uint64N returns a cryptographically secure uniform random number in [0, n).
func (s *cryptoSource) Uint64N(n uint64) (uint64, error) {
	v, err := rand.Int(rand.Reader, new(big.Int).SetUint64(n))
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

type seededSource struct {
	rng *mathrand.Rand
}

// NewSeededSource creates a deterministic RandomSource from a PCG generator.
// The same seed always yields the same sequence; it must not be used for real card data.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{
		rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Uint64N returns a pseudo-random number in [0, n). It never fails.
func (s *seededSource) Uint64N(n uint64) (uint64, error) {
	return s.rng.Uint64N(n), nil
}
