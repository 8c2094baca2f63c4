package ports

import (
	"context"

	"github.com/randomtoy/pfaas-go/internal/domain"
)

// DeckStore provides access to card decks.
type DeckStore interface {
	GetDeck(ctx context.Context, deckID string) (domain.Deck, error)
}
