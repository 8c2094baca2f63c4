package fair

// Flower is one of the nine flower colors. The numeric order is fixed;
// presentation metadata (item and object identifiers) belongs to the
// consuming game layer, not here.
type Flower int

const (
	FlowerRed Flower = iota
	FlowerBlue
	FlowerYellow
	FlowerPurple
	FlowerOrange
	FlowerMixed
	FlowerAssorted
	FlowerBlack
	FlowerWhite
)

func (f Flower) String() string {
	switch f {
	case FlowerRed:
		return "red"
	case FlowerBlue:
		return "blue"
	case FlowerYellow:
		return "yellow"
	case FlowerPurple:
		return "purple"
	case FlowerOrange:
		return "orange"
	case FlowerMixed:
		return "mixed"
	case FlowerAssorted:
		return "assorted"
	case FlowerBlack:
		return "black"
	case FlowerWhite:
		return "white"
	default:
		return "unknown"
	}
}

// commonFlowers covers rolls 3..500; the cycle order is frozen.
var commonFlowers = [7]Flower{
	FlowerRed,
	FlowerBlue,
	FlowerYellow,
	FlowerPurple,
	FlowerOrange,
	FlowerMixed,
	FlowerAssorted,
}

// FlowerAt returns the flower at absolute draw index (0 is the first
// flower of the match).
//
// The 8-byte extraction of p1Seed:p2Seed:serverSeed:index is masked to
// a non-negative 63-bit value and reduced mod 500, +1, giving a roll in
// [1, 500] with the classic 1-in-500 rare rate: roll 1 is black, roll 2
// is white, rolls 3..500 cycle through the seven common colors.
func FlowerAt(p1Seed, p2Seed, serverSeed string, index int64) (Flower, error) {
	if index < 0 {
		return 0, ErrNegativeIndex
	}

	d := digestN(index, p1Seed, p2Seed, serverSeed)
	rnd := uint64From(d) & 0x7FFFFFFFFFFFFFFF
	roll := int(rnd%500) + 1

	switch roll {
	case 1:
		return FlowerBlack, nil
	case 2:
		return FlowerWhite, nil
	}
	return commonFlowers[(roll-3)%len(commonFlowers)], nil
}

// FlowerAtPlayer1 returns player 1's k-th flower. The two players share
// one interleaved draw sequence: player 1 holds the even absolute
// indices, player 2 the odd ones.
func FlowerAtPlayer1(p1Seed, p2Seed, serverSeed string, k int64) (Flower, error) {
	if k < 0 {
		return 0, ErrNegativeIndex
	}
	return FlowerAt(p1Seed, p2Seed, serverSeed, k*2)
}

// FlowerAtPlayer2 returns player 2's k-th flower.
func FlowerAtPlayer2(p1Seed, p2Seed, serverSeed string, k int64) (Flower, error) {
	if k < 0 {
		return 0, ErrNegativeIndex
	}
	return FlowerAt(p1Seed, p2Seed, serverSeed, k*2+1)
}

// FirstNPlayer1 returns player 1's first n flowers, n >= 1.
func FirstNPlayer1(p1Seed, p2Seed, serverSeed string, n int) ([]Flower, error) {
	return firstN(p1Seed, p2Seed, serverSeed, n, FlowerAtPlayer1)
}

// FirstNPlayer2 returns player 2's first n flowers, n >= 1.
func FirstNPlayer2(p1Seed, p2Seed, serverSeed string, n int) ([]Flower, error) {
	return firstN(p1Seed, p2Seed, serverSeed, n, FlowerAtPlayer2)
}

func firstN(p1Seed, p2Seed, serverSeed string, n int, at func(string, string, string, int64) (Flower, error)) ([]Flower, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}
	flowers := make([]Flower, n)
	for i := range flowers {
		f, err := at(p1Seed, p2Seed, serverSeed, int64(i))
		if err != nil {
			return nil, err
		}
		flowers[i] = f
	}
	return flowers, nil
}
