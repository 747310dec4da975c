package entities

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName turns a canonical move name into a title, e.g. "thunder-punch" -> "Thunder Punch".
// A Caser is stateful, so one is built per call.
func DisplayName(name string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(name, "-", " "))
}
