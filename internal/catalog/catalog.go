// Package catalog holds the static tables of citizen-science data sources and the
// planet-type compatibility filter over them.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/StarSailors_Go/internal/validation"
)

//go:embed catalog.json
var catalogJSON []byte

//go:embed catalog.schema.json
var catalogSchema []byte

const schemaName = "catalog.schema.json"

// Entry is one data source a structure can be used for
type Entry struct {
	Identifier            string   `json:"identifier" validate:"required"`
	Name                  string   `json:"name" validate:"required"`
	Description           string   `json:"description,omitempty"`
	ResearchID            string   `json:"researchId,omitempty"`
	Researcher            string   `json:"researcher,omitempty"`
	CompatiblePlanetTypes []string `json:"compatiblePlanetTypes" validate:"required,min=1,dive,required"`
	BestPlanetTypes       []string `json:"bestPlanetTypes,omitempty"`
	TutorialMission       int64    `json:"tutorialMission" validate:"required,gt=0"`
	ActiveStructure       int      `json:"activeStructure" validate:"required,gt=0"`
	TechID                int      `json:"techId" validate:"required,gt=0"`
	// AnomalyType is the classification type this source produces, when it has a form
	AnomalyType string `json:"anomalyType,omitempty"`
	// Category is filled from the enclosing group
	Category string `json:"category"`
	// Table is filled from the enclosing table
	Table string `json:"table"`
}

// CompatibleWith reports whether the entry can run on a planet type
func (e Entry) CompatibleWith(planetType string) bool {
	return slices.Contains(e.CompatiblePlanetTypes, planetType)
}

type categoryGroup struct {
	Category string  `json:"category" validate:"required"`
	Items    []Entry `json:"items" validate:"dive"`
}

type table struct {
	Name       string          `json:"name" validate:"required"`
	Categories []categoryGroup `json:"categories" validate:"dive"`
}

type document struct {
	Version string  `json:"version" validate:"required"`
	Tables  []table `json:"tables" validate:"required,min=1,dive"`
}

// Catalog is the loaded, read-only set of tables
type Catalog struct {
	tables  []string
	entries []Entry
	byID    map[string]Entry
}

// Load parses and validates the embedded catalog
func Load() (*Catalog, error) {
	return Parse(catalogJSON)
}

// Parse validates raw catalog JSON against the schema and struct rules
func Parse(raw []byte) (*Catalog, error) {
	sv := validation.NewSchemaValidator()
	if err := sv.Register(schemaName, catalogSchema); err != nil {
		return nil, err
	}
	if err := sv.ValidateBytes(raw, schemaName); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]Entry)}
	for _, t := range doc.Tables {
		c.tables = append(c.tables, t.Name)
		for _, g := range t.Categories {
			for _, e := range g.Items {
				e.Category = g.Category
				e.Table = t.Name
				c.entries = append(c.entries, e)
				if _, seen := c.byID[e.Identifier]; !seen {
					c.byID[e.Identifier] = e
				}
			}
		}
	}
	return c, nil
}

// MustLoad panics when the embedded catalog is invalid
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Tables lists table names in file order
func (c *Catalog) Tables() []string {
	return slices.Clone(c.tables)
}

// Get looks up an entry by identifier
func (c *Catalog) Get(identifier string) (Entry, bool) {
	e, ok := c.byID[identifier]
	return e, ok
}

// Entries returns every distinct entry in file order. A source listed under several tables
// appears once, at its first position.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.byID))
	seen := make(map[string]bool, len(c.byID))
	for _, e := range c.entries {
		if seen[e.Identifier] {
			continue
		}
		seen[e.Identifier] = true
		out = append(out, e)
	}
	return out
}

// Compatible flattens every table and keeps the entries whose compatible planet types include
// planetType. An empty planet type matches nothing.
func (c *Catalog) Compatible(planetType string) []Entry {
	if planetType == "" {
		return []Entry{}
	}
	out := []Entry{}
	for _, e := range c.Entries() {
		if e.CompatibleWith(planetType) {
			out = append(out, e)
		}
	}
	return out
}

// ForStructure lists the entries a structure item drives
func (c *Catalog) ForStructure(itemID int) []Entry {
	out := []Entry{}
	for _, e := range c.Entries() {
		if e.ActiveStructure == itemID {
			out = append(out, e)
		}
	}
	return out
}

// ForAnomalyType finds the entry that produces a classification type
func (c *Catalog) ForAnomalyType(anomalyType string) (Entry, bool) {
	for _, e := range c.Entries() {
		if e.AnomalyType == anomalyType {
			return e, true
		}
	}
	return Entry{}, false
}
