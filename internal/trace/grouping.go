package trace

import (
	"fmt"
	"sort"
	"strings"

	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/artifact"
)

// issueGroup collects the artifact ids observed for one issue number.
type issueGroup struct {
	specs []string
	plans []string
	tasks []string
}

// CheckIssueGroups enforces cross-tier issue cardinality: once any plan or
// task exists for an issue, exactly one spec must exist for that same issue.
// A group holding only specs is fine — specs may be authored ahead of
// planning.
func CheckIssueGroups(g *Graph) []string {
	groups := make(map[int]*issueGroup)
	bucket := func(issue int) *issueGroup {
		grp, ok := groups[issue]
		if !ok {
			grp = &issueGroup{}
			groups[issue] = grp
		}
		return grp
	}

	for _, id := range sortedIDs(g.Specs) {
		grp := bucket(g.Specs[id].Issue)
		grp.specs = append(grp.specs, id)
	}
	for _, id := range sortedIDs(g.Plans) {
		grp := bucket(g.Plans[id].Issue)
		grp.plans = append(grp.plans, id)
	}
	for _, id := range sortedIDs(g.Tasks) {
		grp := bucket(g.Tasks[id].Issue)
		grp.tasks = append(grp.tasks, id)
	}

	issues := make([]int, 0, len(groups))
	for issue := range groups {
		issues = append(issues, issue)
	}
	sort.Ints(issues)

	var errs []string
	for _, issue := range issues {
		grp := groups[issue]
		if len(grp.plans) == 0 && len(grp.tasks) == 0 {
			continue
		}
		switch {
		case len(grp.specs) == 0:
			errs = append(errs, fmt.Sprintf("Issue #%d has plans/tasks but no spec", issue))
		case len(grp.specs) > 1:
			errs = append(errs, fmt.Sprintf("Issue #%d has multiple specs: %s", issue, strings.Join(grp.specs, ", ")))
		}
	}

	return errs
}

// IssueArtifacts returns the ids recorded for one issue across all tiers,
// in tier order. Used by the doctor command to explain groupings.
func IssueArtifacts(g *Graph, issue int) []string {
	var ids []string
	for _, coll := range []map[string]*artifact.Artifact{g.Specs, g.Plans, g.Tasks} {
		for _, id := range sortedIDs(coll) {
			if coll[id].Issue == issue {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
