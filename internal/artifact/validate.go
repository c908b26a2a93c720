package artifact

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldError represents a single field-level validation error attributed to
// one source file.
type FieldError struct {
	File     string // Source file name
	Field    string // Header field the error applies to
	Message  string // Human-readable error description
	Expected string // What was expected (optional)
	Actual   string // What was found (optional)
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(": ")
	}
	if e.Field != "" {
		sb.WriteString(e.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf(" (expected %s", e.Expected))
		if e.Actual != "" {
			sb.WriteString(fmt.Sprintf(", got %s", e.Actual))
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks a decoded frontmatter header against the rules for the tier
// implied by the directory the file was found in. It returns either a
// normalized record or the complete list of field errors; the rules are
// independent and validation never stops at the first failure, so one bad
// file reports every problem at once.
//
// A record that fails any rule is excluded from the graph entirely. Partial
// records never escape this function.
func Validate(header map[string]any, file string, expected Tier) (*Artifact, []*FieldError) {
	var errs []*FieldError
	addError := func(e *FieldError) {
		e.File = file
		errs = append(errs, e)
	}

	id, idPresent := headerString(header, "id")
	declaredType, typePresent := headerString(header, "type")
	issueRaw, issuePresent := header["issue"]

	// Rule 1: required fields must be present and non-empty.
	if !idPresent || id == "" {
		addError(&FieldError{Field: "id", Message: "missing required field: id"})
	}
	if !typePresent || declaredType == "" {
		addError(&FieldError{Field: "type", Message: "missing required field: type"})
	}
	if !issuePresent || issueRaw == nil {
		addError(&FieldError{Field: "issue", Message: "missing required field: issue"})
	}

	// Rule 2: declared type must match the directory's tier.
	if declaredType != "" && declaredType != string(expected) {
		addError(&FieldError{
			Field:    "type",
			Message:  "artifact type does not match its directory",
			Expected: fmt.Sprintf("%q", expected),
			Actual:   fmt.Sprintf("%q", declaredType),
		})
	}

	// Rule 3: id must carry the tier prefix.
	if id != "" && !strings.HasPrefix(id, expected.Prefix()) {
		addError(&FieldError{
			Field:    "id",
			Message:  fmt.Sprintf("id %q must start with %q", id, expected.Prefix()),
			Expected: fmt.Sprintf("%s prefix", expected.Prefix()),
		})
	}

	// Rule 4: parentId polarity. Specs are roots and must not reference a
	// parent; plans and tasks always must.
	parentID, _ := headerString(header, "parentId")
	if expected.HasParent() {
		if parentID == "" {
			addError(&FieldError{
				Field:   "parentId",
				Message: fmt.Sprintf("%s artifacts require a non-empty parentId referencing a %s", expected, expected.ParentTier()),
			})
		}
	} else {
		if parentID != "" {
			addError(&FieldError{
				Field:   "parentId",
				Message: fmt.Sprintf("spec artifacts must not declare a parentId, got %q", parentID),
			})
		}
		// Normalized regardless of whether the header carried the field.
		parentID = ""
	}

	// Rule 5: issue must coerce losslessly to an integer.
	issue := 0
	if issuePresent && issueRaw != nil {
		n, err := coerceIssue(issueRaw)
		if err != nil {
			addError(&FieldError{
				Field:   "issue",
				Message: fmt.Sprintf("issue must be an integer, got %q", fmt.Sprint(issueRaw)),
			})
		} else {
			issue = n
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Artifact{
		ID:       id,
		Tier:     expected,
		Issue:    issue,
		ParentID: parentID,
		Links:    headerLinks(header),
		File:     file,
	}, nil
}

// headerString reads a scalar header value as a trimmed string. Non-string
// scalars (a numeric id, say) are stringified rather than rejected; the
// field-specific rules decide what is acceptable.
func headerString(header map[string]any, key string) (string, bool) {
	v, ok := header[key]
	if !ok || v == nil {
		return "", ok
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s), true
	}
	return strings.TrimSpace(fmt.Sprint(v)), true
}

// coerceIssue converts a decoded YAML value to an issue number. YAML gives
// ints for bare numerals; quoted values arrive as strings and must parse
// cleanly.
func coerceIssue(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("not an integer: %v", v)
	}
}

// headerLinks reads the optional links list. Entries are not resolved against
// the graph; they ride along on the record for downstream consumers.
func headerLinks(header map[string]any) []string {
	v, ok := header["links"]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []any:
		links := make([]string, 0, len(list))
		for _, item := range list {
			links = append(links, fmt.Sprint(item))
		}
		return links
	case string:
		return []string{list}
	default:
		return nil
	}
}
