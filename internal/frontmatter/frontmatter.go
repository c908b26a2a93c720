// Package frontmatter isolates and decodes the YAML metadata block that
// opens a traceability document. The block starts at the first non-blank
// line with a "---" delimiter and runs to the next one; the rest of the
// document is free-form body text.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter marks the start and end of a frontmatter block.
const Delimiter = "---"

// ParseError describes a malformed frontmatter block in a specific file.
// A ParseError excludes the file from the graph but never aborts the run.
type ParseError struct {
	File string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: malformed frontmatter: %v", e.File, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse splits a document into its decoded frontmatter header and body.
//
// A document without an opening delimiter yields an empty header and the
// full text as body; that is not an error here — downstream validation
// rejects it for the missing required fields. Malformed YAML inside the
// block, or an unterminated block, is a ParseError attributed to file.
func Parse(file, content string) (map[string]any, string, error) {
	lines := strings.Split(content, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == Delimiter {
			start = i
		}
		break
	}
	if start == -1 {
		return map[string]any{}, content, nil
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == Delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, "", &ParseError{File: file, Err: fmt.Errorf("unterminated block: no closing %q", Delimiter)}
	}

	block := strings.Join(lines[start+1:end], "\n")
	body := strings.Join(lines[end+1:], "\n")

	header := map[string]any{}
	if err := yaml.Unmarshal([]byte(block), &header); err != nil {
		return nil, "", &ParseError{File: file, Err: err}
	}

	return header, body, nil
}
