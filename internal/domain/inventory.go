package domain

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ConfigKind tags which variant an inventory configuration holds
type ConfigKind string

const (
	ConfigKindStructure  ConfigKind = "structure"
	ConfigKindConsumable ConfigKind = "consumable"
)

// InventoryItem is one row of a user's inventory: a structure or consumable placed on a planet
type InventoryItem struct {
	ID            int64                  `json:"id"`
	Owner         string                 `json:"owner"`
	ItemID        int                    `json:"item"`
	AnomalyID     int64                  `json:"anomaly"`
	Quantity      int                    `json:"quantity"`
	Configuration InventoryConfiguration `json:"configuration"`
	// Version is bumped on every configuration write and guards compare-and-swap updates
	Version int `json:"version"`
}

// InventoryConfiguration is the typed form of the inventory configuration column.
// Structures carry Uses and the list of unlocked features; consumables carry Uses only.
type InventoryConfiguration struct {
	Kind             ConfigKind `json:"kind"`
	Uses             int        `json:"Uses"`
	MissionsUnlocked []string   `json:"missions unlocked,omitempty"`
}

// ParseInventoryConfiguration decodes and validates a raw configuration document.
// Rows written before the kind tag existed are read as structures.
func ParseInventoryConfiguration(raw []byte) (InventoryConfiguration, error) {
	var cfg InventoryConfiguration
	if len(raw) == 0 {
		return InventoryConfiguration{Kind: ConfigKindStructure}, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return InventoryConfiguration{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Kind == "" {
		cfg.Kind = ConfigKindStructure
	}
	if err := cfg.Validate(); err != nil {
		return InventoryConfiguration{}, err
	}
	return cfg, nil
}

// Validate checks the variant invariants
func (c InventoryConfiguration) Validate() error {
	switch c.Kind {
	case ConfigKindStructure:
	case ConfigKindConsumable:
		if len(c.MissionsUnlocked) > 0 {
			return fmt.Errorf("%w: consumables cannot unlock features", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, c.Kind)
	}
	if c.Uses < 0 {
		return fmt.Errorf("%w: negative uses %d", ErrInvalidConfig, c.Uses)
	}
	return nil
}

// HasUnlocked reports whether the identifier is present in the unlocked list
func (c InventoryConfiguration) HasUnlocked(identifier string) bool {
	return slices.Contains(c.MissionsUnlocked, identifier)
}

// WithUnlocked returns a copy with the identifier appended, and whether anything changed.
// Existing entries are never removed or reordered.
func (c InventoryConfiguration) WithUnlocked(identifier string) (InventoryConfiguration, bool) {
	if c.HasUnlocked(identifier) {
		return c, false
	}
	next := c
	next.MissionsUnlocked = append(slices.Clone(c.MissionsUnlocked), identifier)
	return next, true
}

// ConsumeUse returns a copy with one use removed. It fails with ErrStructureDepleted when none remain.
func (c InventoryConfiguration) ConsumeUse() (InventoryConfiguration, error) {
	if c.Uses <= 0 {
		return c, ErrStructureDepleted
	}
	next := c
	next.Uses = c.Uses - StructureUsesPerSubmission
	if next.Uses < 0 {
		next.Uses = 0
	}
	return next, nil
}
