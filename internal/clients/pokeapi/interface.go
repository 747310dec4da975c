package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=mockpokeapi . Client

import (
	"context"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
)

// Client fetches move data from PokeAPI
type Client interface {
	// GetMove returns the move with the given canonical name.
	// Unknown moves yield a not_found error, transport failures an unavailable error.
	GetMove(ctx context.Context, name string) (*entities.Move, error)
}
