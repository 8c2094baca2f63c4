package fair_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/randomtoy/pfaas-go/internal/fair"
)

func TestSampleMineLayout_GoldenVector(t *testing.T) {
	mines, err := fair.SampleMineLayout("alice", "bob", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{15, 11, 8, 2, 22, 17, 12, 10, 21, 13}
	if len(mines) != len(want) {
		t.Fatalf("got %d mines, want %d", len(mines), len(want))
	}
	for i := range want {
		if mines[i] != want[i] {
			t.Fatalf("draw %d: got %d, want %d (full: %v)", i, mines[i], want[i], mines)
		}
	}
}

func TestSampleMineLayout_PrefixStability(t *testing.T) {
	// Fewer mines from the same seeds draw a prefix of the same cells.
	three, err := fair.SampleMineLayout("alice", "bob", 0, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ten, err := fair.SampleMineLayout("alice", "bob", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range three {
		if three[i] != ten[i] {
			t.Errorf("draw %d: %d != %d", i, three[i], ten[i])
		}
	}
}

func TestSampleMineLayout_NoDuplicates(t *testing.T) {
	for count := 1; count < fair.MineSlots; count++ {
		mines, err := fair.SampleMineLayout("alice", "bob", 5, count)
		if err != nil {
			t.Fatalf("count %d: unexpected error: %v", count, err)
		}
		if len(mines) != count {
			t.Fatalf("count %d: got %d positions", count, len(mines))
		}

		seen := make(map[int]bool)
		for _, m := range mines {
			if m < 0 || m >= fair.MineSlots {
				t.Errorf("count %d: position %d out of board", count, m)
			}
			if seen[m] {
				t.Errorf("count %d: duplicate position %d", count, m)
			}
			seen[m] = true
		}
	}
}

func TestSampleMineLayout_Deterministic(t *testing.T) {
	a, err := fair.SampleMineLayout("alice", "bob", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := fair.SampleMineLayout("alice", "bob", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestSampleMineLayout_MaxMines(t *testing.T) {
	mines, err := fair.SampleMineLayout("alice", "bob", 0, 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mines) != 24 {
		t.Fatalf("got %d mines, want 24", len(mines))
	}

	sorted := append([]int(nil), mines...)
	sort.Ints(sorted)
	// Exactly one of the 25 cells stays safe.
	safe := -1
	next := 0
	for _, m := range sorted {
		if m != next {
			safe = next
			next = m
		}
		next++
	}
	if safe == -1 {
		safe = 24
	}
	if safe < 0 || safe >= fair.MineSlots {
		t.Errorf("no safe cell found in %v", sorted)
	}
}

func TestSampleMineLayout_InvalidCount(t *testing.T) {
	for _, count := range []int{-1, 0, 25, 26} {
		_, err := fair.SampleMineLayout("alice", "bob", 0, count)
		if !errors.Is(err, fair.ErrInvalidMineCount) {
			t.Errorf("count %d: expected ErrInvalidMineCount, got %v", count, err)
		}
	}
}
