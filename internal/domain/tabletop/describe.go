package tabletop

import (
	"strconv"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
)

// Missing is displayed for provider fields that have no value
const Missing = "—"

// MoveDetails is the raw provider view of a move, formatted for display
type MoveDetails struct {
	Name        string
	PP          string
	Accuracy    string
	Power       string
	Category    string
	Description string
}

// DescribeMove formats the provider fields of a move without converting them
func DescribeMove(move *entities.Move) *MoveDetails {
	details := &MoveDetails{
		Name:        entities.DisplayName(move.Name),
		PP:          optionalInt(move.PP, ""),
		Accuracy:    optionalInt(move.Accuracy, "%"),
		Power:       optionalInt(move.Power, ""),
		Category:    Missing,
		Description: NoDescription,
	}

	if move.DamageClass != "" {
		details.Category = entities.DisplayName(string(move.DamageClass))
	}
	if effects := move.ShortEffects(); len(effects) > 0 && effects[0] != "" {
		details.Description = effects[0]
	}

	return details
}

func optionalInt(v *int, suffix string) string {
	if v == nil {
		return Missing
	}
	return strconv.Itoa(*v) + suffix
}
