// Package tabletop converts video-game moves into the tabletop format:
// a damage formula, an EP (energy point) cost and a move category.
package tabletop

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
)

const (
	// LevelDamageFormula is shown for moves that deal damage equal to the user's level
	LevelDamageFormula = "This move deals static damage equal to the user's level."

	// NoDescription is shown for status moves without any effect text
	NoDescription = "No description available"

	// MultiHitNote tells the player how to roll the number of hits
	MultiHitNote = "Roll a d4 + 1 to determine how many hits landed."

	// MultiHitEP is the flat EP cost of every multi-hit move
	MultiHitEP = 2
)

// fixedDamageMoves never scale with power
var fixedDamageMoves = map[string]bool{
	"seismic-toss": true,
	"night-shade":  true,
	"dragon-rage":  true,
	"sonic-boom":   true,
	"psywave":      true,
	"super-fang":   true,
}

// EPCost is either a number of energy points or, for status moves, a dungeon usage limit
type EPCost struct {
	Points int
	// Usage is set instead of Points for status moves, e.g. "Usable 2× per dungeon"
	Usage string
}

// IsUsage reports whether the cost is a usage limit rather than points
func (c EPCost) IsUsage() bool {
	return c.Usage != ""
}

func (c EPCost) String() string {
	if c.IsUsage() {
		return c.Usage
	}
	return fmt.Sprintf("%d EP", c.Points)
}

// Conversion is the tabletop rendition of a move
type Conversion struct {
	MoveName string
	Formula  string
	EP       EPCost
	Category entities.Category
	// Note is only set for multi-hit moves
	Note string
}

// Convert applies the conversion rules in precedence order, first match wins,
// then the multi-hit override. The override replaces category and EP only.
func Convert(move *entities.Move) *Conversion {
	if move == nil {
		return &Conversion{Formula: NoDescription}
	}

	conv := &Conversion{MoveName: move.Name}

	switch {
	case fixedDamageMoves[move.Name]:
		conv.Category = entities.CategoryBasic
		conv.Formula = LevelDamageFormula
		conv.EP = EPCost{Points: 0}

	case move.DamageClass == entities.DamageClassStatus:
		conv.Category = entities.CategoryStatus
		conv.Formula = statusFormula(move)
		conv.EP = EPCost{Usage: DungeonUsage(move.PPValue())}

	case move.DamageClass.IsDamaging() && move.HasPower():
		conv.Category = entities.CategoryStandard
		conv.Formula = DamageFormula(move.DamageClass, move.PowerValue())
		conv.EP = EPCost{Points: PowerTierEP(move.PowerValue())}

	default:
		conv.Category = entities.CategoryBasic
		conv.Formula = LevelDamageFormula
		conv.EP = EPCost{Points: 0}
	}

	if IsMultiHit(move) {
		conv.Category = entities.CategoryMultiHit
		conv.Note = MultiHitNote
		conv.EP = EPCost{Points: MultiHitEP}
	}

	return conv
}

// DiceSize is the die size for a base power, rounded up: 45 -> 5, 40 -> 4, 1 -> 1
func DiceSize(power int) int {
	if power <= 0 {
		return 0
	}
	return (power + 9) / 10
}

// DamageFormula renders "dN + ATK" for physical moves and "dN + Sp.ATK" for special ones
func DamageFormula(class entities.DamageClass, power int) string {
	stat := "ATK"
	if class == entities.DamageClassSpecial {
		stat = "Sp.ATK"
	}
	return fmt.Sprintf("d%d + %s", DiceSize(power), stat)
}

// PowerTierEP maps base power onto an EP cost
func PowerTierEP(power int) int {
	switch {
	case power > 90:
		return 5
	case power >= 70:
		return 2
	case power >= 1:
		return 1
	default:
		return 0
	}
}

// DungeonUsage maps max PP onto how often a status move may be used per dungeon
func DungeonUsage(pp int) string {
	uses := 1
	switch {
	case pp >= 60:
		uses = 3
	case pp >= 30:
		uses = 2
	}
	return fmt.Sprintf("Usable %d× per dungeon", uses)
}

// IsMultiHit reports whether any effect text mentions "hits", case-insensitively
func IsMultiHit(move *entities.Move) bool {
	for _, entry := range move.EffectEntries {
		if strings.Contains(strings.ToLower(entry.ShortEffect), "hits") {
			return true
		}
	}
	return false
}

func statusFormula(move *entities.Move) string {
	effects := move.ShortEffects()
	if len(effects) == 0 || strings.TrimSpace(effects[0]) == "" {
		return NoDescription
	}
	return effects[0]
}
