package fair

// RollPercentage returns the percentage roll for a round as a value in
// [0.00, 100.00] with two-decimal granularity.
//
// # Determinism
//
// The roll is a pure function of (clientSeed, serverSeed, nonce). The
// nonce alone decorrelates successive rounds; no extra draw counter is
// appended. This asymmetry with the other games is part of the wire
// protocol and must not change.
func RollPercentage(clientSeed, serverSeed string, nonce int64) float64 {
	return float64(RollScaled(clientSeed, serverSeed, nonce)) / 100.0
}

// RollScaled returns the underlying integer roll in [0, 10000].
//
// The first 4 digest bytes are read as an unsigned 32-bit value and
// reduced mod 10,001. The modulo bias is below 1 part in 4e5 and is an
// accepted, frozen property of the protocol.
func RollScaled(clientSeed, serverSeed string, nonce int64) int {
	d := digestN(nonce, clientSeed, serverSeed)
	return int(uint32From(d) % 10001)
}
