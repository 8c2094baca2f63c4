package fair

// MaxHitValue is the largest hit a punch can land; hits are in
// [0, MaxHitValue].
const MaxHitValue = 16

// Hit returns the hit value for the global hit number hitNo.
//
// The material is p1Seed:p2Seed:serverSeed:hitNo; the first 8 digest
// bytes reduce mod 17. Global hit numbering alternates strictly between
// the players: hit 0 is player 1's first punch, hit 1 player 2's, hit 2
// player 1's second, and so on.
func Hit(p1Seed, p2Seed, serverSeed string, hitNo int64) (int, error) {
	if hitNo < 0 {
		return 0, ErrNegativeIndex
	}
	d := digestN(hitNo, p1Seed, p2Seed, serverSeed)
	return int(uint64From(d) % (MaxHitValue + 1)), nil
}

// HitForPlayer maps (player 1|2, turn) to the matching global hit
// number and returns that hit value.
func HitForPlayer(player int, turn int64, p1Seed, p2Seed, serverSeed string) (int, error) {
	if player != 1 && player != 2 {
		return 0, ErrInvalidPlayer
	}
	if turn < 0 {
		return 0, ErrNegativeIndex
	}
	hitNo := turn * 2
	if player == 2 {
		hitNo++
	}
	return Hit(p1Seed, p2Seed, serverSeed, hitNo)
}
