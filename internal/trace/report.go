package trace

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/artifact"
)

// Result is the pass/fail outcome of one validation run. Valid is true iff
// the error list is empty; Errors preserves collection order: load-time
// parse/field errors first, then referential errors, then grouping errors.
type Result struct {
	Valid  bool
	Errors []string
}

// Evaluate runs both graph checkers and folds their findings in after the
// load-time errors. It performs no validation of its own beyond delegating.
func Evaluate(g *Graph, loadErrs []string) *Result {
	errs := make([]string, 0, len(loadErrs))
	errs = append(errs, loadErrs...)
	errs = append(errs, CheckReferences(g)...)
	errs = append(errs, CheckIssueGroups(g)...)

	return &Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// Run loads the graph from the given sources and evaluates it. The error
// return is reserved for fatal load failures.
func Run(sources []TierSource) (*Graph, *Result, error) {
	g, loadErrs, err := Load(sources)
	if err != nil {
		return nil, nil, err
	}
	return g, Evaluate(g, loadErrs), nil
}

// RenderSummary writes the human-readable run summary: artifact counts per
// tier, distinct issue count, and a pass/fail banner followed by every
// collected error.
func RenderSummary(w io.Writer, g *Graph, r *Result) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()

	fmt.Fprintln(w, "Traceability graph:")
	for _, tier := range artifact.ValidTiers() {
		fmt.Fprintf(w, "  %-7s %d\n", string(tier)+"s:", g.Count(tier))
	}
	fmt.Fprintf(w, "  %-7s %d\n", "issues:", g.DistinctIssues())
	fmt.Fprintln(w)

	if r.Valid {
		fmt.Fprintf(w, "%s traceability graph is valid\n", green("PASS"))
		return
	}

	fmt.Fprintf(w, "%s %d traceability error(s):\n", red("FAIL"), len(r.Errors))
	RenderErrors(w, r)
}

// RenderErrors writes the itemized error list, one line per error.
func RenderErrors(w io.Writer, r *Result) {
	red := color.New(color.FgRed).SprintFunc()
	for _, e := range r.Errors {
		fmt.Fprintf(w, "  %s %s\n", red("✗"), e)
	}
}
