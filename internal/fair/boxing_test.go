package fair_test

import (
	"errors"
	"testing"

	"github.com/randomtoy/pfaas-go/internal/fair"
)

func TestHit_GoldenVectors(t *testing.T) {
	// SHA-256("alice:bob:carol:<n>"), first 8 bytes mod 17.
	want := []int{13, 14, 1, 10, 11, 8, 11, 1}

	for n, w := range want {
		got, err := fair.Hit("alice", "bob", "carol", int64(n))
		if err != nil {
			t.Fatalf("hit %d: unexpected error: %v", n, err)
		}
		if got != w {
			t.Errorf("hit %d: got %d, want %d", n, got, w)
		}
	}
}

func TestHit_Range(t *testing.T) {
	for n := int64(0); n < 500; n++ {
		got, err := fair.Hit("p1", "p2", "server", n)
		if err != nil {
			t.Fatalf("hit %d: unexpected error: %v", n, err)
		}
		if got < 0 || got > fair.MaxHitValue {
			t.Fatalf("hit %d: %d out of [0, %d]", n, got, fair.MaxHitValue)
		}
	}
}

func TestHitForPlayer_AlternationLaw(t *testing.T) {
	for turn := int64(0); turn < 20; turn++ {
		p1, err := fair.HitForPlayer(1, turn, "alice", "bob", "carol")
		if err != nil {
			t.Fatalf("turn %d: unexpected error: %v", turn, err)
		}
		global1, _ := fair.Hit("alice", "bob", "carol", turn*2)
		if p1 != global1 {
			t.Errorf("turn %d: player 1 hit %d != global hit %d", turn, p1, global1)
		}

		p2, err := fair.HitForPlayer(2, turn, "alice", "bob", "carol")
		if err != nil {
			t.Fatalf("turn %d: unexpected error: %v", turn, err)
		}
		global2, _ := fair.Hit("alice", "bob", "carol", turn*2+1)
		if p2 != global2 {
			t.Errorf("turn %d: player 2 hit %d != global hit %d", turn, p2, global2)
		}
	}
}

func TestHit_NegativeIndex(t *testing.T) {
	_, err := fair.Hit("a", "b", "c", -1)
	if !errors.Is(err, fair.ErrNegativeIndex) {
		t.Errorf("expected ErrNegativeIndex, got %v", err)
	}
}

func TestHitForPlayer_InvalidArguments(t *testing.T) {
	if _, err := fair.HitForPlayer(3, 0, "a", "b", "c"); !errors.Is(err, fair.ErrInvalidPlayer) {
		t.Errorf("player 3: expected ErrInvalidPlayer, got %v", err)
	}
	if _, err := fair.HitForPlayer(0, 0, "a", "b", "c"); !errors.Is(err, fair.ErrInvalidPlayer) {
		t.Errorf("player 0: expected ErrInvalidPlayer, got %v", err)
	}
	if _, err := fair.HitForPlayer(1, -1, "a", "b", "c"); !errors.Is(err, fair.ErrNegativeIndex) {
		t.Errorf("turn -1: expected ErrNegativeIndex, got %v", err)
	}
}
