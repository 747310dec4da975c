package profiles

import (
	"context"
	"sync"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the profile repository
// Useful for testing and development
type InMemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*entities.UserMoveProfile
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		profiles: make(map[string]*entities.UserMoveProfile),
	}
}

// Get retrieves a profile by Discord user ID
func (r *InMemoryRepository) Get(ctx context.Context, discordID string) (*entities.UserMoveProfile, error) {
	if discordID == "" {
		return nil, pkerr.InvalidArgument("discord ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, exists := r.profiles[discordID]
	if !exists {
		return nil, pkerr.NotFoundf("profile for user '%s' not found", discordID).
			WithMeta("discord_id", discordID)
	}

	// Return a copy to avoid external modifications
	return copyProfile(profile), nil
}

// Upsert creates or fully replaces a profile
func (r *InMemoryRepository) Upsert(ctx context.Context, profile *entities.UserMoveProfile) error {
	if err := validateProfile(profile); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.DiscordID] = copyProfile(profile)
	return nil
}
