package trace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/artifact"
	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/frontmatter"
)

// TierSource couples a tier with the directory its artifacts live in.
type TierSource struct {
	Tier artifact.Tier
	Dir  string
}

// Sources builds the three tier sources in lineage order.
func Sources(specsDir, plansDir, tasksDir string) []TierSource {
	return []TierSource{
		{Tier: artifact.TierSpec, Dir: specsDir},
		{Tier: artifact.TierPlan, Dir: plansDir},
		{Tier: artifact.TierTask, Dir: tasksDir},
	}
}

// dirState is the explicit input state of a tier directory. An absent
// directory contributes zero records and is not an error; this tolerance
// supports repositories adopting the convention one tier at a time.
type dirState int

const (
	dirPresent dirState = iota
	dirAbsent
)

// Load walks each tier directory non-recursively and assembles the graph.
//
// Per file: extract frontmatter, validate the header, and on success insert
// the record into the tier's collection. Parse and field errors are recorded
// and the file is skipped — one bad file never aborts the run and never
// contributes a partial record. The returned error is non-nil only for fatal
// conditions (an unreadable directory or file), which abort the run.
func Load(sources []TierSource) (*Graph, []string, error) {
	g := NewGraph()
	var errs []string

	for _, src := range sources {
		entries, state, err := readTierDir(src.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s directory %s: %w", src.Tier, src.Dir, err)
		}
		if state == dirAbsent {
			continue
		}

		coll := g.Collection(src.Tier)
		for _, name := range entries {
			path := filepath.Join(src.Dir, name)
			content, err := os.ReadFile(path)
			if err != nil {
				return nil, nil, fmt.Errorf("reading %s: %w", path, err)
			}

			header, _, err := frontmatter.Parse(name, string(content))
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}

			record, fieldErrs := artifact.Validate(header, name, src.Tier)
			if len(fieldErrs) > 0 {
				for _, fe := range fieldErrs {
					errs = append(errs, fe.Error())
				}
				continue
			}
			coll[record.ID] = record
		}
	}

	return g, errs, nil
}

// readTierDir lists the artifact files of one tier directory in sorted
// order, distinguishing a missing directory from an unreadable one.
func readTierDir(dir string) ([]string, dirState, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dirAbsent, nil
		}
		return nil, dirPresent, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if skipFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, dirPresent, nil
}

// skipFile reports whether a directory entry is a recognized non-artifact
// file: anything that is not markdown, index/readme files, templates, and
// underscore- or dot-prefixed files.
func skipFile(name string) bool {
	lower := strings.ToLower(name)
	if !strings.HasSuffix(lower, ".md") {
		return true
	}
	if lower == "readme.md" || lower == "index.md" {
		return true
	}
	if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
		return true
	}
	if strings.Contains(lower, "template") {
		return true
	}
	return false
}
