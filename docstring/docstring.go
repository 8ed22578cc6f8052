// Package docstring extracts structured data embedded in documentation
// strings. Everything from the first line starting with the delimiter ("---"
// by default) on is parsed as YAML:
//
//	A greeting endpoint.
//	---
//	description: get a greeting
//	responses:
//	  200:
//	    description: said hi
package docstring

import (
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultDelimiter separates prose from the YAML block.
const DefaultDelimiter = "---"

// pathKeys are the keys of a resource-level block that belong on a path item.
var pathKeys = map[string]bool{
	"get":     true,
	"put":     true,
	"post":    true,
	"delete":  true,
	"options": true,
	"head":    true,
	"patch":   true,
}

// Extractor parses YAML blocks out of documentation strings.
// The zero value uses [DefaultDelimiter].
type Extractor struct {
	Delimiter string
}

func (e Extractor) delimiter() string {
	if e.Delimiter == "" {
		return DefaultDelimiter
	}
	return e.Delimiter
}

// LoadYAML returns the YAML block of doc as a map. A doc without a block, or
// whose block is not a mapping, yields an empty map.
func (e Extractor) LoadYAML(doc string) (map[string]any, error) {
	lines := strings.Split(Trim(doc), "\n")
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), e.delimiter()) {
			start = i
			break
		}
	}
	if start < 0 {
		return map[string]any{}, nil
	}

	block := strings.Join(dedent(lines[start:]), "\n")
	if e.delimiter() != DefaultDelimiter {
		block = strings.Replace(block, e.delimiter(), DefaultDelimiter, 1)
	}

	var raw any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return map[string]any{}, fmt.Errorf("docstring: parse yaml: %w", err)
	}
	m, ok := normalize(raw).(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return m, nil
}

// LoadOperations is LoadYAML restricted to path verbs and "x-" extensions.
func (e Extractor) LoadOperations(doc string) (map[string]any, error) {
	data, err := e.LoadYAML(doc)
	out := make(map[string]any)
	for k, v := range data {
		if pathKeys[k] || strings.HasPrefix(k, "x-") {
			out[k] = v
		}
	}
	return out, err
}

// LoadYAML uses the default [Extractor].
func LoadYAML(doc string) (map[string]any, error) {
	return Extractor{}.LoadYAML(doc)
}

// LoadOperations uses the default [Extractor].
func LoadOperations(doc string) (map[string]any, error) {
	return Extractor{}.LoadOperations(doc)
}

// Trim cleans up indentation of a documentation string: tabs are expanded,
// the first line is stripped, the common indentation of the remaining lines
// is removed, and leading and trailing blank lines are dropped.
func Trim(doc string) string {
	if strings.TrimSpace(doc) == "" {
		return ""
	}
	lines := strings.Split(doc, "\n")
	for i := range lines {
		lines[i] = expandTabs(lines[i], 8)
	}

	indent := math.MaxInt
	for _, line := range lines[1:] {
		stripped := strings.TrimLeft(line, " ")
		if stripped != "" {
			indent = min(indent, len(line)-len(stripped))
		}
	}

	out := []string{strings.TrimSpace(lines[0])}
	for _, line := range lines[1:] {
		if indent < math.MaxInt && len(line) >= indent {
			line = line[indent:]
		} else {
			line = strings.TrimLeft(line, " ")
		}
		out = append(out, strings.TrimRight(line, " \r"))
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	return strings.Join(out, "\n")
}

// dedent removes the whitespace prefix shared by all non-blank lines.
func dedent(lines []string) []string {
	prefix := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix, first = lead, false
			continue
		}
		for !strings.HasPrefix(lead, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimPrefix(line, prefix)
	}
	return out
}

func expandTabs(line string, size int) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := size - col%size
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

// normalize turns every nested map into map[string]any. YAML keys such as
// response codes (200:) decode as numbers.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i := range t {
			t[i] = normalize(t[i])
		}
		return t
	default:
		return v
	}
}
