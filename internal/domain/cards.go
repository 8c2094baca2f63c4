// Package domain holds the card model shared by the shuffle surface.
package domain

// Suit is one of the four French suits.
type Suit string

const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Card is a single playing card.
type Card struct {
	Rank string `json:"rank"`
	Suit Suit   `json:"suit"`
}

func (c Card) String() string {
	return c.Rank + " of " + string(c.Suit)
}

// Deck is an ordered collection of cards loaded from a store.
type Deck struct {
	ID    string
	Name  string
	Cards []Card
}

// ShoeDecks is the canonical number of decks in a casino shoe
// (8 x 52 = 416 cards).
const ShoeDecks = 8

// NewShoe concatenates count copies of the deck in order, ready to be
// shuffled. count must be at least 1.
func NewShoe(d Deck, count int) ([]Card, error) {
	if count < 1 {
		return nil, ErrInvalidDeckCount
	}
	shoe := make([]Card, 0, count*len(d.Cards))
	for i := 0; i < count; i++ {
		shoe = append(shoe, d.Cards...)
	}
	return shoe, nil
}
