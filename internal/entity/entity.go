// Package entity provides the example catalog service injected into the
// template's tool handlers. It stands in for whatever domain service a real
// extension would wrap (an API client, a database, an analyzer) and shows
// how collaborators flow into capability objects through the extension
// Context rather than through globals.
//
// The catalog is immutable after construction and safe for concurrent use:
// handlers may be invoked in parallel by the host and must not observe
// shared mutable state.
package entity

import (
	"errors"
	"fmt"
	"maps"
	"sort"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("entity not found")

// Entity is one record in the example catalog.
type Entity struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Kind        string            `json:"kind"`
	Description string            `json:"description"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// Catalog holds the example entities. Construct with NewCatalog.
type Catalog struct {
	entities []Entity
	byName   map[string]int
}

// NewCatalog returns the fixture catalog shipped with the template.
// Entities are ordered by name so repeated listings are byte-identical.
func NewCatalog() *Catalog {
	entities := []Entity{
		{
			ID:          "ent-001",
			Name:        "aurora",
			Kind:        "service",
			Description: "Ingest service accepting telemetry batches over gRPC",
			Attributes: map[string]string{
				"owner":  "platform",
				"region": "eu-west-1",
				"tier":   "critical",
			},
		},
		{
			ID:          "ent-002",
			Name:        "borealis",
			Kind:        "worker",
			Description: "Background worker compacting telemetry into hourly rollups",
			Attributes: map[string]string{
				"owner":    "platform",
				"schedule": "hourly",
			},
		},
		{
			ID:          "ent-003",
			Name:        "cascade",
			Kind:        "store",
			Description: "Column store holding compacted rollups for query serving",
			Attributes: map[string]string{
				"owner":     "data",
				"retention": "90d",
			},
		},
	}

	sort.Slice(entities, func(i, j int) bool {
		return entities[i].Name < entities[j].Name
	})

	byName := make(map[string]int, len(entities))
	for i, e := range entities {
		byName[e.Name] = i
	}

	return &Catalog{entities: entities, byName: byName}
}

// List returns all entities in name order. Entities are copied, Attributes
// maps included; callers cannot mutate the catalog through the result.
func (c *Catalog) List() []Entity {
	out := make([]Entity, len(c.entities))
	for i, e := range c.entities {
		out[i] = e.clone()
	}
	return out
}

// Get returns the entity with the given name.
func (c *Catalog) Get(name string) (Entity, error) {
	i, ok := c.byName[name]
	if !ok {
		return Entity{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c.entities[i].clone(), nil
}

// clone returns a copy whose Attributes map is independent of the catalog's.
// Entity contains a map, so a plain struct copy would still alias it.
func (e Entity) clone() Entity {
	e.Attributes = maps.Clone(e.Attributes)
	return e
}

// Names returns the entity names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entities))
	for i, e := range c.entities {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entities in the catalog.
func (c *Catalog) Len() int {
	return len(c.entities)
}
