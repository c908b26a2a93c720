package frontmatter

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_HeaderAndBody(t *testing.T) {
	doc := `---
id: SPEC-1
type: spec
issue: 42
links:
  - PLAN-1
  - docs/adr/0001.md
---

# Title

Body text here.
`
	header, body, err := Parse("spec-1.md", doc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if header["id"] != "SPEC-1" {
		t.Errorf("header[id] = %v, want SPEC-1", header["id"])
	}
	if header["type"] != "spec" {
		t.Errorf("header[type] = %v, want spec", header["type"])
	}
	if header["issue"] != 42 {
		t.Errorf("header[issue] = %v (%T), want 42", header["issue"], header["issue"])
	}

	links, ok := header["links"].([]any)
	if !ok || len(links) != 2 {
		t.Errorf("header[links] = %v, want 2-element list", header["links"])
	}

	if !strings.Contains(body, "Body text here.") {
		t.Errorf("body missing document text: %q", body)
	}
	if strings.Contains(body, "id: SPEC-1") {
		t.Errorf("body still contains header text: %q", body)
	}
}

func TestParse_LeadingBlankLines(t *testing.T) {
	doc := "\n\n---\nid: SPEC-2\n---\nbody"
	header, _, err := Parse("spec-2.md", doc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if header["id"] != "SPEC-2" {
		t.Errorf("header[id] = %v, want SPEC-2", header["id"])
	}
}

func TestParse_NoDelimiter(t *testing.T) {
	doc := "# Just a markdown file\n\nNo frontmatter at all.\n"
	header, body, err := Parse("readme-ish.md", doc)
	if err != nil {
		t.Fatalf("expected no error for missing delimiter, got %v", err)
	}
	if len(header) != 0 {
		t.Errorf("expected empty header, got %v", header)
	}
	if body != doc {
		t.Errorf("body = %q, want full document", body)
	}
}

func TestParse_Unterminated(t *testing.T) {
	doc := "---\nid: SPEC-3\ntype: spec\n\nno closing delimiter"
	_, _, err := Parse("spec-3.md", doc)
	if err == nil {
		t.Fatal("expected error for unterminated block")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.File != "spec-3.md" {
		t.Errorf("ParseError.File = %q, want spec-3.md", perr.File)
	}
	if !strings.Contains(err.Error(), "spec-3.md") {
		t.Errorf("error message should name the file: %q", err.Error())
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	doc := "---\nid: [unclosed\n---\nbody"
	_, _, err := Parse("bad.md", doc)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestParse_NonMappingHeader(t *testing.T) {
	doc := "---\n- just\n- a\n- list\n---\nbody"
	_, _, err := Parse("list.md", doc)
	if err == nil {
		t.Fatal("expected error for non-mapping header")
	}
}

func TestParse_EmptyBlock(t *testing.T) {
	doc := "---\n---\nbody"
	header, body, err := Parse("empty.md", doc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(header) != 0 {
		t.Errorf("expected empty header, got %v", header)
	}
	if !strings.Contains(body, "body") {
		t.Errorf("body = %q, want remaining text", body)
	}
}
