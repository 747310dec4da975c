package pokeapi

import "github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type apiEffectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    namedResource `json:"language"`
}

// apiMove is the subset of the /move/{name} payload the bot reads
type apiMove struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Accuracy      *int             `json:"accuracy"`
	Power         *int             `json:"power"`
	PP            *int             `json:"pp"`
	EffectChance  *int             `json:"effect_chance"`
	DamageClass   *namedResource   `json:"damage_class"`
	EffectEntries []apiEffectEntry `json:"effect_entries"`
}

func apiMoveToMove(input *apiMove) *entities.Move {
	if input == nil {
		return nil
	}

	move := &entities.Move{
		ID:            input.ID,
		Name:          input.Name,
		Accuracy:      input.Accuracy,
		Power:         input.Power,
		PP:            input.PP,
		EffectChance:  input.EffectChance,
		EffectEntries: apiEffectEntriesToEffectEntries(input.EffectEntries),
	}
	if input.DamageClass != nil {
		move.DamageClass = entities.DamageClass(input.DamageClass.Name)
	}

	return move
}

func apiEffectEntriesToEffectEntries(input []apiEffectEntry) []entities.EffectEntry {
	if len(input) == 0 {
		return nil
	}

	output := make([]entities.EffectEntry, len(input))
	for i, entry := range input {
		output[i] = entities.EffectEntry{
			Effect:      entry.Effect,
			ShortEffect: entry.ShortEffect,
			Language:    entry.Language.Name,
		}
	}
	return output
}
