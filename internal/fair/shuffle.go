package fair

// Shuffle permutes seq in place with a Fisher-Yates walk keyed by the
// seeds and nonce. Swap i gets its target from the 8-byte extraction of
// SHA-256(clientSeed:serverSeed:nonce:ctr) reduced mod (i+1), where ctr
// increments by one per swap starting at 0.
//
// The resulting permutation is a deterministic function of the three
// inputs: the same seeds and nonce always order the same shoe the same
// way. Element values are never inspected.
func Shuffle[T any](seq []T, clientSeed, serverSeed string, nonce int64) {
	var ctr int64
	for i := len(seq) - 1; i > 0; i-- {
		d := digestN(ctr, clientSeed, serverSeed, formatInt(nonce))
		j := int(uint64From(d) % uint64(i+1))
		seq[i], seq[j] = seq[j], seq[i]
		ctr++
	}
}
