package testutils

import (
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
)

// IntPtr returns a pointer to v, for the optional numeric fields of a move
func IntPtr(v int) *int {
	return &v
}

// CreateTestProfile creates a profile holding the given moves
func CreateTestProfile(discordID, username string, moves ...string) *entities.UserMoveProfile {
	return &entities.UserMoveProfile{
		DiscordID:       discordID,
		Username:        username,
		RegisteredMoves: moves,
	}
}

// CreateTestMove creates a damaging move with English effect text
func CreateTestMove(name string, class entities.DamageClass, power int, effect string) *entities.Move {
	move := &entities.Move{
		Name:        name,
		DamageClass: class,
		Power:       IntPtr(power),
		Accuracy:    IntPtr(100),
		PP:          IntPtr(15),
	}
	if effect != "" {
		move.EffectEntries = []entities.EffectEntry{
			{Effect: effect, ShortEffect: effect, Language: "en"},
		}
	}
	return move
}

// CreateTestStatusMove creates a status move with the given max PP
func CreateTestStatusMove(name string, pp int, effect string) *entities.Move {
	move := &entities.Move{
		Name:        name,
		DamageClass: entities.DamageClassStatus,
		PP:          IntPtr(pp),
	}
	if effect != "" {
		move.EffectEntries = []entities.EffectEntry{
			{Effect: effect, ShortEffect: effect, Language: "en"},
		}
	}
	return move
}
