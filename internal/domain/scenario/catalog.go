// Package scenario holds the fixed narrative scenarios served to the
// visualization client.
package scenario

import (
	"context"
	"strings"

	"github.com/shopsteward/hub/internal/domain/model"
)

// Scenario type keys.
const (
	Utopia   = "utopia"
	Dystopia = "dystopia"
)

type entry struct {
	name  string
	build func() model.Scenario
}

// Catalog is a read-only lookup of scenarios by type.
type Catalog struct {
	entries []entry
}

// New returns the catalog holding the utopia and dystopia scenarios.
func New() *Catalog {
	return &Catalog{
		entries: []entry{
			{name: Utopia, build: utopia},
			{name: Dystopia, build: dystopia},
		},
	}
}

// Get returns a fresh copy of the scenario named scenarioType, matched
// case-insensitively. Unknown types yield an *InvalidTypeError.
func (c *Catalog) Get(_ context.Context, scenarioType string) (model.Scenario, error) {
	key := strings.ToLower(scenarioType)
	for _, e := range c.entries {
		if e.name == key {
			return e.build(), nil
		}
	}
	return model.Scenario{}, &InvalidTypeError{Type: scenarioType, Valid: c.Names()}
}

// Names returns the valid scenario types in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.name
	}
	return names
}
