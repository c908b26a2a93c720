// Package trace builds and checks the traceability graph: the three
// id-keyed artifact collections loaded from the tier directories, the
// referential links between them, and the per-issue grouping invariants.
//
// The graph is a plain value constructed fresh on every run and never
// mutated after loading, so the checkers are pure functions over it and
// repeated runs against unchanged inputs produce identical results.
package trace

import (
	"sort"

	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/artifact"
)

// Graph is the assembled traceability graph for one validation run.
type Graph struct {
	Specs map[string]*artifact.Artifact
	Plans map[string]*artifact.Artifact
	Tasks map[string]*artifact.Artifact
}

// NewGraph creates an empty graph with initialized collections.
func NewGraph() *Graph {
	return &Graph{
		Specs: make(map[string]*artifact.Artifact),
		Plans: make(map[string]*artifact.Artifact),
		Tasks: make(map[string]*artifact.Artifact),
	}
}

// Collection returns the id-keyed collection for the given tier.
func (g *Graph) Collection(tier artifact.Tier) map[string]*artifact.Artifact {
	switch tier {
	case artifact.TierSpec:
		return g.Specs
	case artifact.TierPlan:
		return g.Plans
	case artifact.TierTask:
		return g.Tasks
	default:
		return nil
	}
}

// Count returns the number of artifacts in the given tier.
func (g *Graph) Count(tier artifact.Tier) int {
	return len(g.Collection(tier))
}

// DistinctIssues returns the number of distinct issue numbers observed
// across all three tiers.
func (g *Graph) DistinctIssues() int {
	return len(g.Issues())
}

// Issues returns every distinct issue number observed across the three
// tiers, in ascending order.
func (g *Graph) Issues() []int {
	seen := make(map[int]struct{})
	for _, coll := range []map[string]*artifact.Artifact{g.Specs, g.Plans, g.Tasks} {
		for _, a := range coll {
			seen[a.Issue] = struct{}{}
		}
	}
	issues := make([]int, 0, len(seen))
	for issue := range seen {
		issues = append(issues, issue)
	}
	sort.Ints(issues)
	return issues
}

// sortedIDs returns the keys of a collection in ascending order. Map
// iteration order is randomized; every consumer that emits output walks
// collections through this so runs are byte-identical.
func sortedIDs(coll map[string]*artifact.Artifact) []string {
	ids := make([]string, 0, len(coll))
	for id := range coll {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
