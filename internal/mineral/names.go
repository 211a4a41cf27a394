package mineral

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mineral types
const (
	TypeCultivableSoil = "cultivable-soil"
	TypeWaterIce       = "water-ice"
	TypeIronOre        = "iron-ore"
	TypeAluminum       = "aluminum"
	TypeCopper         = "copper"
	TypeGold           = "gold"
	TypeSilicate       = "silicate"
)

// Extraction difficulty
const (
	DifficultyEasy      = "easy"
	DifficultyModerate  = "moderate"
	DifficultyDifficult = "difficult"
	DifficultyExtreme   = "extreme"
)

// Estimated quantity
const (
	QuantityTrace    = "trace"
	QuantitySmall    = "small"
	QuantityModerate = "moderate"
	QuantityLarge    = "large"
	QuantityAbundant = "abundant"
)

var descriptions = map[string]string{
	TypeCultivableSoil: "Nutrient-bearing regolith suitable for biodome agriculture",
	TypeWaterIce:       "Subsurface ice mixed into sandy soil, vital for life support and fuel",
	TypeIronOre:        "Iron-rich rock used for structural components",
	TypeAluminum:       "Lightweight metal for spacecraft and habitat frames",
	TypeCopper:         "Conductive metal for wiring and electronics",
	TypeGold:           "Rare precious metal prized for electronics and trade",
	TypeSilicate:       "Common silicate minerals useful for glass and construction",
}

var titleCaser = cases.Title(language.English)

// DisplayName turns a mineral type into a readable name, e.g. "water-ice" becomes "Water Ice"
func DisplayName(mineralType string) string {
	return titleCaser.String(strings.ReplaceAll(mineralType, "-", " "))
}

// Description returns the flavour text for a mineral type
func Description(mineralType string) string {
	if d, ok := descriptions[mineralType]; ok {
		return d
	}
	return "Unidentified mineral deposit"
}
