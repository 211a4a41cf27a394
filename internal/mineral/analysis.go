package mineral

import (
	"github.com/osse101/StarSailors_Go/internal/domain"
)

// Terrain categories produced by the rover annotation palette
const (
	CategorySand     = "sand"
	CategorySoil     = "consolidated-soil"
	CategoryBedrock  = "bedrock"
	CategoryBigRocks = "big-rocks"
)

// DiscoveryMethod is stamped on deposits found through annotation
const DiscoveryMethod = "rover-annotation"

const confidenceSamples = 5

type composition struct {
	sand, soil, bedrock, rocks float64
	total                      int
}

func compose(categories []string) composition {
	var c composition
	for _, cat := range categories {
		switch cat {
		case CategorySand:
			c.sand++
		case CategorySoil:
			c.soil++
		case CategoryBedrock:
			c.bedrock++
		case CategoryBigRocks:
			c.rocks++
		}
	}

	c.total = len(categories)
	if c.total == 0 {
		c.total = 1
	}
	pct := 100 / float64(c.total)
	c.sand *= pct
	c.soil *= pct
	c.bedrock *= pct
	c.rocks *= pct
	return c
}

// Analyze maps the terrain mix of a rover annotation onto a deposit. Rules are checked in order;
// the first match wins. Confidence grows with the number of annotations, saturating at five.
func Analyze(categories []string) domain.MineralConfiguration {
	c := compose(categories)
	cfg := domain.MineralConfiguration{
		DiscoveryMethod: DiscoveryMethod,
		Confidence:      min(100, c.total*100/confidenceSamples),
	}

	switch {
	case c.soil >= 60:
		cfg.Type, cfg.Difficulty = TypeCultivableSoil, DifficultyEasy
		switch {
		case c.soil >= 80:
			cfg.Quantity = QuantityAbundant
		case c.soil >= 70:
			cfg.Quantity = QuantityLarge
		default:
			cfg.Quantity = QuantityModerate
		}
	case c.sand >= 50 && c.soil >= 20:
		cfg.Type, cfg.Difficulty = TypeWaterIce, DifficultyModerate
		cfg.Quantity = pick(c.sand >= 70, QuantityLarge, QuantityModerate)
	case c.bedrock >= 50 && c.rocks >= 20:
		cfg.Type, cfg.Difficulty = TypeIronOre, DifficultyDifficult
		cfg.Quantity = pick(c.rocks < 30, QuantityLarge, QuantityAbundant)
	case c.bedrock >= 70:
		cfg.Type, cfg.Difficulty = TypeAluminum, DifficultyModerate
		cfg.Quantity = pick(c.bedrock >= 85, QuantityLarge, QuantityModerate)
	case c.bedrock >= 50:
		cfg.Type, cfg.Difficulty, cfg.Quantity = TypeCopper, DifficultyModerate, QuantitySmall
	case c.rocks >= 40:
		cfg.Type, cfg.Difficulty = TypeGold, DifficultyExtreme
		cfg.Quantity = pick(c.rocks >= 50, QuantityModerate, QuantitySmall)
	case c.sand >= 40:
		cfg.Type, cfg.Difficulty = TypeSilicate, DifficultyEasy
		cfg.Quantity = pick(c.sand >= 60, QuantityLarge, QuantityModerate)
	default:
		// Mixed terrain
		cfg.Type, cfg.Difficulty, cfg.Quantity = TypeSilicate, DifficultyEasy, QuantityTrace
	}
	return cfg
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
