// Package fair implements a deterministic, third-party-verifiable
// randomness engine for game outcomes.
//
// Every outcome is derived from SHA-256 over seed material of the form
// part1:part2:...:counter. Anyone holding the same seeds can recompute
// the identical outcome offline; nobody can predict it before the
// server seed is committed.
package fair

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"strings"
)

const separator = ":"

// Digest hashes the seed parts joined with ':'. The part order and the
// separator are part of the public verification protocol.
func Digest(parts ...string) [sha256.Size]byte {
	return sha256.Sum256([]byte(strings.Join(parts, separator)))
}

// digestN appends counter as a final decimal part before hashing.
// Each counter step gets a fresh hash state, so concurrent callers
// never share one.
func digestN(counter int64, parts ...string) [sha256.Size]byte {
	material := strings.Join(parts, separator) + separator + strconv.FormatInt(counter, 10)
	return sha256.Sum256([]byte(material))
}

// uint32From reads the first 4 digest bytes big-endian. Used where the
// modulus is small enough (<= 10,001) for 32 bits of entropy.
func uint32From(d [sha256.Size]byte) uint32 {
	return binary.BigEndian.Uint32(d[:4])
}

// uint64From reads the first 8 digest bytes big-endian.
func uint64From(d [sha256.Size]byte) uint64 {
	return binary.BigEndian.Uint64(d[:8])
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
