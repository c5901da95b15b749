package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/2beens/forgezone/internal/fitness"
)

var ErrUnknownCatalogCell = errors.New("unknown catalog cell")

// Key identifies a single catalog cell.
type Key struct {
	Goal     fitness.Goal
	Level    fitness.Level
	BodyPart fitness.BodyPart
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Goal, k.Level, k.BodyPart)
}

// Catalog is an immutable exercise table. Safe for concurrent use.
type Catalog struct {
	table map[Key][]string
}

var defaultCatalog = New(cells)

// Default returns the process wide catalog built from the bundled data.
func Default() *Catalog {
	return defaultCatalog
}

func New(nested map[fitness.Goal]map[fitness.Level]map[fitness.BodyPart][]string) *Catalog {
	table := make(map[Key][]string)
	for goal, levels := range nested {
		for level, parts := range levels {
			for part, exercises := range parts {
				if len(exercises) == 0 {
					continue
				}
				table[Key{Goal: goal, Level: level, BodyPart: part}] = slices.Clone(exercises)
			}
		}
	}
	return &Catalog{table: table}
}

// Lookup returns a copy of the exercises for the given cell.
func (c *Catalog) Lookup(goal fitness.Goal, level fitness.Level, bodyPart fitness.BodyPart) ([]string, error) {
	key := Key{Goal: goal, Level: level, BodyPart: bodyPart}
	exercises, ok := c.table[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCatalogCell, key)
	}
	return slices.Clone(exercises), nil
}

// Len returns the number of populated cells.
func (c *Catalog) Len() int {
	return len(c.table)
}
