package trace

import "fmt"

// CheckReferences verifies referential integrity: every plan's parentId
// resolves to a loaded spec, and every task's parentId resolves to a loaded
// plan. Each dangling reference yields one error naming the child and the
// missing parent; the graph itself is left untouched.
func CheckReferences(g *Graph) []string {
	var errs []string

	for _, id := range sortedIDs(g.Plans) {
		plan := g.Plans[id]
		if _, ok := g.Specs[plan.ParentID]; !ok {
			errs = append(errs, fmt.Sprintf("plan %s references missing spec %s", plan.ID, plan.ParentID))
		}
	}

	for _, id := range sortedIDs(g.Tasks) {
		task := g.Tasks[id]
		if _, ok := g.Plans[task.ParentID]; !ok {
			errs = append(errs, fmt.Sprintf("task %s references missing plan %s", task.ID, task.ParentID))
		}
	}

	return errs
}
