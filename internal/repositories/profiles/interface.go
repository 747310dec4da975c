package profiles

//go:generate mockgen -destination=mock/mock.go -package=mockprofiles -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
)

// Repository persists one UserMoveProfile document per Discord user
type Repository interface {
	// Get retrieves a profile by Discord user ID, not_found when absent
	Get(ctx context.Context, discordID string) (*entities.UserMoveProfile, error)

	// Upsert creates the profile or fully replaces the stored one
	Upsert(ctx context.Context, profile *entities.UserMoveProfile) error
}
