package profiles

import (
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

func validateProfile(profile *entities.UserMoveProfile) error {
	if profile == nil {
		return pkerr.InvalidArgument("profile cannot be nil")
	}
	if profile.DiscordID == "" {
		return pkerr.InvalidArgument("discord ID is required")
	}
	if len(profile.RegisteredMoves) != entities.RegisteredMoveCount {
		return pkerr.InvalidArgumentf("profile must hold exactly %d moves, got %d",
			entities.RegisteredMoveCount, len(profile.RegisteredMoves)).
			WithMeta("discord_id", profile.DiscordID)
	}
	return nil
}

func copyProfile(profile *entities.UserMoveProfile) *entities.UserMoveProfile {
	moves := make([]string, len(profile.RegisteredMoves))
	copy(moves, profile.RegisteredMoves)
	return &entities.UserMoveProfile{
		DiscordID:       profile.DiscordID,
		Username:        profile.Username,
		RegisteredMoves: moves,
	}
}
