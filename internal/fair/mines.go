package fair

// MineSlots is the fixed board size: a 5x5 grid.
const MineSlots = 25

// SampleMineLayout deterministically places mineCount mines on the
// 25-cell board and returns their positions in draw order.
//
// Each draw hashes clientSeed:serverSeed:nonce:ctr (ctr from 0, one
// step per mine), extracts 8 bytes and reduces mod the number of cells
// still in the bag. The drawn cell is removed by overwriting its bag
// slot with the last remaining entry, so no cell can be drawn twice
// and every draw stays O(1).
//
// mineCount outside [1, MineSlots-1] returns ErrInvalidMineCount with
// no positions drawn.
func SampleMineLayout(clientSeed, serverSeed string, nonce int64, mineCount int) ([]int, error) {
	if mineCount < 1 || mineCount >= MineSlots {
		return nil, ErrInvalidMineCount
	}

	var bag [MineSlots]int
	for i := range bag {
		bag[i] = i
	}

	mines := make([]int, 0, mineCount)
	remaining := MineSlots

	for ctr := int64(0); ctr < int64(mineCount); ctr++ {
		d := digestN(ctr, clientSeed, serverSeed, formatInt(nonce))
		idx := int(uint64From(d) % uint64(remaining))

		mines = append(mines, bag[idx])
		remaining--
		bag[idx] = bag[remaining]
	}

	return mines, nil
}
