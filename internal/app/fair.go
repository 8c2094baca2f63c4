// Package app orchestrates the provably-fair games behind the
// verification API.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/randomtoy/pfaas-go/internal/domain"
	"github.com/randomtoy/pfaas-go/internal/fair"
	"github.com/randomtoy/pfaas-go/internal/ports"
)

// ErrShoeTooLarge indicates a shoe request beyond the configured deck
// limit.
var ErrShoeTooLarge = errors.New("requested shoe exceeds deck limit")

// ErrStreamTooLong indicates a hit or flower request beyond the
// configured stream limit.
var ErrStreamTooLong = errors.New("requested stream exceeds length limit")

// FairService exposes the application-level operations consumed by the
// HTTP adapter. Every outcome it returns is a pure function of the
// request seeds; the service itself keeps no round state.
type FairService struct {
	deckStore    ports.DeckStore
	seeds        ports.SeedSource
	maxShoeDecks int
	maxStreamLen int
}

func NewFairService(ds ports.DeckStore, seeds ports.SeedSource, maxShoeDecks, maxStreamLen int) *FairService {
	return &FairService{
		deckStore:    ds,
		seeds:        seeds,
		maxShoeDecks: maxShoeDecks,
		maxStreamLen: maxStreamLen,
	}
}

// DiceRequest asks for one percentage roll.
type DiceRequest struct {
	ClientSeed string
	ServerSeed string
	Nonce      int64
}

// DiceResult carries the roll in both published forms.
type DiceResult struct {
	Roll   float64
	Scaled int
}

func (s *FairService) RollDice(_ context.Context, req DiceRequest) (DiceResult, error) {
	if err := checkSeeds(req.ClientSeed, req.ServerSeed); err != nil {
		return DiceResult{}, err
	}
	return DiceResult{
		Roll:   fair.RollPercentage(req.ClientSeed, req.ServerSeed, req.Nonce),
		Scaled: fair.RollScaled(req.ClientSeed, req.ServerSeed, req.Nonce),
	}, nil
}

// MinesRequest asks for a minefield layout.
type MinesRequest struct {
	ClientSeed string
	ServerSeed string
	Nonce      int64
	Mines      int
}

// MinesResult lists mined cells in draw order on the 25-cell board.
type MinesResult struct {
	Slots     int
	Positions []int
}

func (s *FairService) MineLayout(_ context.Context, req MinesRequest) (MinesResult, error) {
	if err := checkSeeds(req.ClientSeed, req.ServerSeed); err != nil {
		return MinesResult{}, err
	}
	positions, err := fair.SampleMineLayout(req.ClientSeed, req.ServerSeed, req.Nonce, req.Mines)
	if err != nil {
		return MinesResult{}, fmt.Errorf("sample layout: %w", err)
	}
	return MinesResult{Slots: fair.MineSlots, Positions: positions}, nil
}

// ShoeRequest asks for a shuffled shoe built from a stored deck.
type ShoeRequest struct {
	DeckID     string
	Decks      int
	ClientSeed string
	ServerSeed string
	Nonce      int64
}

// ShoeResult is the shuffled shoe as printable card names.
type ShoeResult struct {
	DeckID string
	Cards  []string
}

func (s *FairService) ShuffledShoe(ctx context.Context, req ShoeRequest) (ShoeResult, error) {
	if err := checkSeeds(req.ClientSeed, req.ServerSeed); err != nil {
		return ShoeResult{}, err
	}
	if req.Decks > s.maxShoeDecks {
		return ShoeResult{}, ErrShoeTooLarge
	}

	deck, err := s.deckStore.GetDeck(ctx, req.DeckID)
	if err != nil {
		return ShoeResult{}, fmt.Errorf("get deck: %w", err)
	}

	shoe, err := domain.NewShoe(deck, req.Decks)
	if err != nil {
		return ShoeResult{}, fmt.Errorf("build shoe: %w", err)
	}

	fair.Shuffle(shoe, req.ClientSeed, req.ServerSeed, req.Nonce)

	return ShoeResult{
		DeckID: deck.ID,
		Cards: lo.Map(shoe, func(c domain.Card, _ int) string {
			return c.String()
		}),
	}, nil
}

// BoxingRequest asks for the first rounds of a bout's hit stream.
type BoxingRequest struct {
	Player1Seed string
	Player2Seed string
	ServerSeed  string
	Rounds      int
}

// HitRound pairs the two alternating hits of one turn.
type HitRound struct {
	Turn    int
	Player1 int
	Player2 int
}

// BoxingResult lists the interleaved hit stream round by round.
type BoxingResult struct {
	Rounds []HitRound
}

func (s *FairService) BoxingHits(_ context.Context, req BoxingRequest) (BoxingResult, error) {
	if err := checkSeeds(req.Player1Seed, req.Player2Seed, req.ServerSeed); err != nil {
		return BoxingResult{}, err
	}
	if req.Rounds < 1 {
		return BoxingResult{}, fair.ErrInvalidCount
	}
	if req.Rounds > s.maxStreamLen {
		return BoxingResult{}, ErrStreamTooLong
	}

	rounds := make([]HitRound, req.Rounds)
	for turn := range rounds {
		p1, err := fair.HitForPlayer(1, int64(turn), req.Player1Seed, req.Player2Seed, req.ServerSeed)
		if err != nil {
			return BoxingResult{}, fmt.Errorf("player 1 turn %d: %w", turn, err)
		}
		p2, err := fair.HitForPlayer(2, int64(turn), req.Player1Seed, req.Player2Seed, req.ServerSeed)
		if err != nil {
			return BoxingResult{}, fmt.Errorf("player 2 turn %d: %w", turn, err)
		}
		rounds[turn] = HitRound{Turn: turn, Player1: p1, Player2: p2}
	}
	return BoxingResult{Rounds: rounds}, nil
}

// FlowersRequest asks for both players' first n flowers.
type FlowersRequest struct {
	Player1Seed string
	Player2Seed string
	ServerSeed  string
	N           int
}

// FlowersResult holds the two interleaved hands as color names.
type FlowersResult struct {
	Player1 []string
	Player2 []string
}

func (s *FairService) FlowerHands(_ context.Context, req FlowersRequest) (FlowersResult, error) {
	if err := checkSeeds(req.Player1Seed, req.Player2Seed, req.ServerSeed); err != nil {
		return FlowersResult{}, err
	}
	if req.N > s.maxStreamLen {
		return FlowersResult{}, ErrStreamTooLong
	}

	p1, err := fair.FirstNPlayer1(req.Player1Seed, req.Player2Seed, req.ServerSeed, req.N)
	if err != nil {
		return FlowersResult{}, fmt.Errorf("player 1 flowers: %w", err)
	}
	p2, err := fair.FirstNPlayer2(req.Player1Seed, req.Player2Seed, req.ServerSeed, req.N)
	if err != nil {
		return FlowersResult{}, fmt.Errorf("player 2 flowers: %w", err)
	}

	name := func(f fair.Flower, _ int) string { return f.String() }
	return FlowersResult{
		Player1: lo.Map(p1, name),
		Player2: lo.Map(p2, name),
	}, nil
}

// SeedCommit is a freshly generated server seed with its public
// commitment. The plain seed must stay secret until the round ends.
type SeedCommit struct {
	Seed string
	Hash string
}

func (s *FairService) CommitSeed(_ context.Context) SeedCommit {
	seed := s.seeds.NewSeed()
	return SeedCommit{Seed: seed, Hash: fair.HashSeed(seed)}
}

func checkSeeds(seeds ...string) error {
	for _, seed := range seeds {
		if !fair.ValidSeed(seed) {
			return fmt.Errorf("%w: %q", fair.ErrInvalidSeed, seed)
		}
	}
	return nil
}
