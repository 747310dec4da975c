package tabletop_test

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/domain/tabletop"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func effects(texts ...string) []entities.EffectEntry {
	entries := make([]entities.EffectEntry, 0, len(texts))
	for _, text := range texts {
		entries = append(entries, entities.EffectEntry{ShortEffect: text, Language: "en"})
	}
	return entries
}

func TestConvert_Rules(t *testing.T) {
	tests := []struct {
		name             string
		move             *entities.Move
		expectedFormula  string
		expectedEP       tabletop.EPCost
		expectedCategory entities.Category
		expectedNote     string
	}{
		{
			name: "physical move rounds dice up",
			move: &entities.Move{
				Name: "vine-whip", DamageClass: entities.DamageClassPhysical, Power: intPtr(45),
				EffectEntries: effects("Inflicts regular damage with no additional effect."),
			},
			expectedFormula:  "d5 + ATK",
			expectedEP:       tabletop.EPCost{Points: 1},
			expectedCategory: entities.CategoryStandard,
		},
		{
			name:             "special move uses Sp.ATK",
			move:             &entities.Move{Name: "flamethrower", DamageClass: entities.DamageClassSpecial, Power: intPtr(90)},
			expectedFormula:  "d9 + Sp.ATK",
			expectedEP:       tabletop.EPCost{Points: 2},
			expectedCategory: entities.CategoryStandard,
		},
		{
			name:             "high power costs 5",
			move:             &entities.Move{Name: "hyper-beam", DamageClass: entities.DamageClassSpecial, Power: intPtr(150)},
			expectedFormula:  "d15 + Sp.ATK",
			expectedEP:       tabletop.EPCost{Points: 5},
			expectedCategory: entities.CategoryStandard,
		},
		{
			name:             "fixed damage allow-list wins over damage class",
			move:             &entities.Move{Name: "seismic-toss", DamageClass: entities.DamageClassPhysical, Power: nil},
			expectedFormula:  tabletop.LevelDamageFormula,
			expectedEP:       tabletop.EPCost{Points: 0},
			expectedCategory: entities.CategoryBasic,
		},
		{
			name:             "fixed damage allow-list ignores power",
			move:             &entities.Move{Name: "dragon-rage", DamageClass: entities.DamageClassSpecial, Power: intPtr(40)},
			expectedFormula:  tabletop.LevelDamageFormula,
			expectedEP:       tabletop.EPCost{Points: 0},
			expectedCategory: entities.CategoryBasic,
		},
		{
			name:             "physical without power is basic",
			move:             &entities.Move{Name: "counter", DamageClass: entities.DamageClassPhysical},
			expectedFormula:  tabletop.LevelDamageFormula,
			expectedEP:       tabletop.EPCost{Points: 0},
			expectedCategory: entities.CategoryBasic,
		},
		{
			name:             "zero power equals absent power",
			move:             &entities.Move{Name: "bide", DamageClass: entities.DamageClassPhysical, Power: intPtr(0)},
			expectedFormula:  tabletop.LevelDamageFormula,
			expectedEP:       tabletop.EPCost{Points: 0},
			expectedCategory: entities.CategoryBasic,
		},
		{
			name:             "unrecognized damage class is basic",
			move:             &entities.Move{Name: "mystery", DamageClass: "shadow", Power: intPtr(80)},
			expectedFormula:  tabletop.LevelDamageFormula,
			expectedEP:       tabletop.EPCost{Points: 0},
			expectedCategory: entities.CategoryBasic,
		},
		{
			name: "status move uses first short effect",
			move: &entities.Move{
				Name: "growl", DamageClass: entities.DamageClassStatus, PP: intPtr(40),
				EffectEntries: effects("Lowers the target's Attack by one stage."),
			},
			expectedFormula:  "Lowers the target's Attack by one stage.",
			expectedEP:       tabletop.EPCost{Usage: "Usable 2× per dungeon"},
			expectedCategory: entities.CategoryStatus,
		},
		{
			name:             "status move without effects",
			move:             &entities.Move{Name: "splash", DamageClass: entities.DamageClassStatus, PP: intPtr(40)},
			expectedFormula:  tabletop.NoDescription,
			expectedEP:       tabletop.EPCost{Usage: "Usable 2× per dungeon"},
			expectedCategory: entities.CategoryStatus,
		},
		{
			name: "multi-hit overrides EP tier",
			move: &entities.Move{
				Name: "mystery-barrage", DamageClass: entities.DamageClassPhysical, Power: intPtr(90),
				EffectEntries: effects("Hits 2-5 times in one turn."),
			},
			expectedFormula:  "d9 + ATK",
			expectedEP:       tabletop.EPCost{Points: 2},
			expectedCategory: entities.CategoryMultiHit,
			expectedNote:     tabletop.MultiHitNote,
		},
		{
			name: "multi-hit overrides basic move",
			move: &entities.Move{
				Name: "beat-up", DamageClass: entities.DamageClassPhysical,
				EffectEntries: effects("Hits once for every conscious Pokémon in the trainer's party."),
			},
			expectedFormula:  tabletop.LevelDamageFormula,
			expectedEP:       tabletop.EPCost{Points: 2},
			expectedCategory: entities.CategoryMultiHit,
			expectedNote:     tabletop.MultiHitNote,
		},
		{
			name: "multi-hit on status keeps status formula",
			move: &entities.Move{
				Name: "odd-status", DamageClass: entities.DamageClassStatus, PP: intPtr(10),
				EffectEntries: effects("Target HITS itself in confusion."),
			},
			expectedFormula:  "Target HITS itself in confusion.",
			expectedEP:       tabletop.EPCost{Points: 2},
			expectedCategory: entities.CategoryMultiHit,
			expectedNote:     tabletop.MultiHitNote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := tabletop.Convert(tt.move)
			require.NotNil(t, conv)

			assert.Equal(t, tt.move.Name, conv.MoveName)
			assert.Equal(t, tt.expectedFormula, conv.Formula)
			assert.Equal(t, tt.expectedEP, conv.EP)
			assert.Equal(t, tt.expectedCategory, conv.Category)
			assert.Equal(t, tt.expectedNote, conv.Note)
		})
	}
}

func TestDiceSize_RoundsUp(t *testing.T) {
	for power := 1; power <= 250; power++ {
		expected := power / 10
		if power%10 != 0 {
			expected++
		}
		assert.Equal(t, expected, tabletop.DiceSize(power), "power %d", power)
	}
	assert.Equal(t, 0, tabletop.DiceSize(0))
}

func TestPowerTierEP(t *testing.T) {
	for power := 91; power <= 250; power++ {
		assert.Equal(t, 5, tabletop.PowerTierEP(power), "power %d", power)
	}
	for power := 70; power <= 90; power++ {
		assert.Equal(t, 2, tabletop.PowerTierEP(power), "power %d", power)
	}
	for power := 1; power <= 69; power++ {
		assert.Equal(t, 1, tabletop.PowerTierEP(power), "power %d", power)
	}
	assert.Equal(t, 0, tabletop.PowerTierEP(0))
}

func TestDungeonUsage(t *testing.T) {
	tests := []struct {
		pp   int
		uses int
	}{
		{pp: 80, uses: 3},
		{pp: 60, uses: 3},
		{pp: 59, uses: 2},
		{pp: 45, uses: 2},
		{pp: 30, uses: 2},
		{pp: 29, uses: 1},
		{pp: 10, uses: 1},
		{pp: 0, uses: 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("pp_%d", tt.pp), func(t *testing.T) {
			assert.Contains(t, tabletop.DungeonUsage(tt.pp), fmt.Sprintf("%d× per dungeon", tt.uses))
		})
	}
}

func TestEPCost_String(t *testing.T) {
	assert.Equal(t, "5 EP", tabletop.EPCost{Points: 5}.String())
	assert.Equal(t, "0 EP", tabletop.EPCost{}.String())
	assert.Equal(t, "Usable 1× per dungeon", tabletop.EPCost{Usage: "Usable 1× per dungeon"}.String())
}

func TestIsMultiHit_CaseInsensitive(t *testing.T) {
	assert.True(t, tabletop.IsMultiHit(&entities.Move{EffectEntries: effects("HITS twice.")}))
	assert.True(t, tabletop.IsMultiHit(&entities.Move{EffectEntries: effects("Never misses.", "Hits 2 times.")}))
	assert.False(t, tabletop.IsMultiHit(&entities.Move{EffectEntries: effects("Hit once.")}))
	assert.False(t, tabletop.IsMultiHit(&entities.Move{}))
}

func TestDescribeMove(t *testing.T) {
	move := &entities.Move{
		Name:          "thunder-punch",
		DamageClass:   entities.DamageClassPhysical,
		Power:         intPtr(75),
		Accuracy:      intPtr(100),
		PP:            intPtr(15),
		EffectChance:  intPtr(10),
		EffectEntries: effects("Has a $effect_chance% chance to paralyze the target."),
	}

	details := tabletop.DescribeMove(move)

	assert.Equal(t, &tabletop.MoveDetails{
		Name:        "Thunder Punch",
		PP:          "15",
		Accuracy:    "100%",
		Power:       "75",
		Category:    "Physical",
		Description: "Has a 10% chance to paralyze the target.",
	}, details)
}

func TestDescribeMove_MissingFields(t *testing.T) {
	details := tabletop.DescribeMove(&entities.Move{Name: "growl", DamageClass: entities.DamageClassStatus})

	assert.Equal(t, tabletop.Missing, details.Power)
	assert.Equal(t, tabletop.Missing, details.Accuracy)
	assert.Equal(t, tabletop.Missing, details.PP)
	assert.Equal(t, "Status", details.Category)
	assert.Equal(t, tabletop.NoDescription, details.Description)
}
