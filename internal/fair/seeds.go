package fair

import (
	crand "crypto/rand"
	"encoding/hex"
)

// seedAlphabet is the allowed seed alphabet: 62 alphanumerics plus
// hyphen.
const seedAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-"

const seedLength = 16

// NewSeed generates a cryptographically secure 16-character seed from
// the allowed alphabet.
func NewSeed() string {
	raw := make([]byte, seedLength)
	if _, err := crand.Read(raw); err != nil {
		// crypto/rand reads from the OS and does not fail on any
		// supported platform; a failure means the environment is
		// unusable for fair play at all.
		panic("fair: crypto/rand unavailable: " + err.Error())
	}
	buf := make([]byte, seedLength)
	for i, b := range raw {
		buf[i] = seedAlphabet[int(b)%len(seedAlphabet)]
	}
	return string(buf)
}

// ValidSeed reports whether s is non-empty and uses only the allowed
// seed alphabet.
func ValidSeed(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// HashSeed returns the lowercase hex SHA-256 of a seed. Publishing this
// commitment before a round locks the server seed in without revealing
// it.
func HashSeed(seed string) string {
	sum := Digest(seed)
	return hex.EncodeToString(sum[:])
}
