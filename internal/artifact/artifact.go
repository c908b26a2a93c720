// Package artifact defines the traceability data model: the three artifact
// tiers (spec, plan, task), the normalized Artifact record, and the
// field-level validation that turns a decoded frontmatter header into a
// record or a list of errors.
package artifact

import "fmt"

// Tier represents the rank of an artifact in the lineage chain.
type Tier string

const (
	// TierSpec represents specification artifacts (the root tier).
	TierSpec Tier = "spec"
	// TierPlan represents plan artifacts (children of specs).
	TierPlan Tier = "plan"
	// TierTask represents task artifacts (children of plans).
	TierTask Tier = "task"
)

// tierPrefixes maps each tier to its required ID prefix.
var tierPrefixes = map[Tier]string{
	TierSpec: "SPEC-",
	TierPlan: "PLAN-",
	TierTask: "TASK-",
}

// Prefix returns the ID prefix required for artifacts of this tier.
func (t Tier) Prefix() string {
	return tierPrefixes[t]
}

// HasParent reports whether artifacts of this tier must reference a parent.
// Specs are roots; plans and tasks always point one tier up.
func (t Tier) HasParent() bool {
	return t != TierSpec
}

// ParentTier returns the tier a child of this tier references.
func (t Tier) ParentTier() Tier {
	switch t {
	case TierPlan:
		return TierSpec
	case TierTask:
		return TierPlan
	default:
		return ""
	}
}

// ParseTier parses a string into a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "spec":
		return TierSpec, nil
	case "plan":
		return TierPlan, nil
	case "task":
		return TierTask, nil
	default:
		return "", fmt.Errorf("invalid tier: %s (valid tiers: spec, plan, task)", s)
	}
}

// ValidTiers returns the tiers in lineage order.
func ValidTiers() []Tier {
	return []Tier{TierSpec, TierPlan, TierTask}
}

// Artifact is a single validated document record. Records are built once by
// validation and never mutated afterwards.
type Artifact struct {
	ID       string   // Unique identifier, prefixed per tier (SPEC-, PLAN-, TASK-)
	Tier     Tier     // Tier declared in the header, matching the source directory
	Issue    int      // Cross-cutting grouping key (external tracker number)
	ParentID string   // ID of the artifact one tier up; empty for specs
	Links    []string // Auxiliary cross-references; not resolved here
	File     string   // Source file name, for error attribution
}
