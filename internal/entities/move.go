package entities

import (
	"strconv"
	"strings"
)

// DamageClass is the provider's damage classification for a move
type DamageClass string

const (
	DamageClassPhysical DamageClass = "physical"
	DamageClassSpecial  DamageClass = "special"
	DamageClassStatus   DamageClass = "status"
)

// IsDamaging reports whether the class deals direct damage
func (d DamageClass) IsDamaging() bool {
	return d == DamageClassPhysical || d == DamageClassSpecial
}

// EffectEntry is one localized effect description of a move
type EffectEntry struct {
	Effect      string
	ShortEffect string
	Language    string
}

// Move is a video-game move as reported by the move provider.
// Optional numeric fields are nil when the provider has no value.
type Move struct {
	ID            int
	Name          string
	DamageClass   DamageClass
	Power         *int
	Accuracy      *int
	PP            *int
	EffectChance  *int
	EffectEntries []EffectEntry
}

// HasPower reports whether the move has a positive base power.
// Zero and absent power are equivalent.
func (m *Move) HasPower() bool {
	return m.Power != nil && *m.Power > 0
}

// PowerValue returns the base power or 0 when absent
func (m *Move) PowerValue() int {
	if m.Power == nil {
		return 0
	}
	return *m.Power
}

// PPValue returns max PP or 0 when absent
func (m *Move) PPValue() int {
	if m.PP == nil {
		return 0
	}
	return *m.PP
}

// ShortEffects returns the short effect texts with $effect_chance filled in.
// English entries are preferred; when there are none every entry is returned.
func (m *Move) ShortEffects() []string {
	var english, all []string
	for _, entry := range m.EffectEntries {
		text := m.fillEffectChance(entry.ShortEffect)
		all = append(all, text)
		if entry.Language == "" || entry.Language == "en" {
			english = append(english, text)
		}
	}

	if len(english) > 0 {
		return english
	}
	return all
}

func (m *Move) fillEffectChance(text string) string {
	if m.EffectChance == nil || !strings.Contains(text, "$effect_chance") {
		return text
	}
	return strings.ReplaceAll(text, "$effect_chance", strconv.Itoa(*m.EffectChance))
}
