package gen

import (
	"sort"

	"github.com/yourbasic/graph"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// dependsOn reports whether the relationship orders the declaring entity
// after its target. Only the referencing side of ManyToOne and OneToOne
// creates an ordering edge.
func dependsOn(r model.RelationshipModel) bool {
	return r.Type == model.ManyToOne || r.Type == model.OneToOne
}

// SeedOrder sorts entities so every ManyToOne/OneToOne reference target is
// seeded before its referencing entity. Cycles are tolerated rather than
// rejected: a node revisited while still in progress is emitted on the spot,
// first detection wins, so the result is always a complete order over the
// input with each entity appearing exactly once. Referential soundness is not
// guaranteed for the cyclic subset.
func SeedOrder(entities []model.EntityModel) []model.EntityModel {
	byName := make(map[string]model.EntityModel, len(entities))
	for _, e := range entities {
		byName[e.Name] = e
	}

	sorted := make([]model.EntityModel, 0, len(entities))
	visited := make(map[string]bool, len(entities))
	visiting := make(map[string]bool, len(entities))

	var visit func(e model.EntityModel)
	visit = func(e model.EntityModel) {
		if visited[e.Name] {
			return
		}
		if visiting[e.Name] {
			visited[e.Name] = true
			sorted = append(sorted, e)
			return
		}
		visiting[e.Name] = true
		for _, r := range e.Relationships {
			if !dependsOn(r) {
				continue
			}
			related, ok := byName[r.RelatedEntity]
			if !ok || related.Name == e.Name {
				continue
			}
			visit(related)
		}
		delete(visiting, e.Name)
		// Emitted already by a back-edge detection deeper in this walk.
		if visited[e.Name] {
			return
		}
		visited[e.Name] = true
		sorted = append(sorted, e)
	}

	for _, e := range entities {
		visit(e)
	}
	return sorted
}

// CyclicEntities returns the sorted names of entities caught in referential
// cycles, computed over the same dependency edges SeedOrder walks. Used for
// diagnostics only; cycles never fail generation.
func CyclicEntities(entities []model.EntityModel) []string {
	index := make(map[string]int, len(entities))
	for i, e := range entities {
		index[e.Name] = i
	}
	g := graph.New(len(entities))
	for i, e := range entities {
		for _, r := range e.Relationships {
			if !dependsOn(r) {
				continue
			}
			j, ok := index[r.RelatedEntity]
			if !ok || i == j {
				continue
			}
			g.Add(i, j)
		}
	}

	var out []string
	for _, comp := range graph.StrongComponents(g) {
		if len(comp) < 2 {
			continue
		}
		for _, v := range comp {
			out = append(out, entities[v].Name)
		}
	}
	sort.Strings(out)
	return out
}
