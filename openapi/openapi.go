package openapi

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/Gobd/routedoc"
	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// AddPath adds an operation to the OpenAPI spec at the given path and method.
// Other operations already on the path are kept.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	if s.Paths == nil {
		s.Paths = openapi3.NewPaths()
	}
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(strings.ToUpper(method), op)
	s.Paths.Set(path, p)
}

// MergePathItem adds the operations and extensions of item to path in s.
// Operations of item replace those with the same method.
func MergePathItem(path string, s *openapi3.T, item *openapi3.PathItem) {
	if s.Paths == nil {
		s.Paths = openapi3.NewPaths()
	}
	p := s.Paths.Value(path)
	if p == nil {
		s.Paths.Set(path, item)
		return
	}
	for method, op := range item.Operations() {
		p.SetOperation(method, op)
	}
	for k, v := range item.Extensions {
		if p.Extensions == nil {
			p.Extensions = make(map[string]any)
		}
		p.Extensions[k] = v
	}
}

// PathItemFromOperations decodes an operations map into a path item.
// Verb keys become operations, "x-" keys become extensions.
func PathItemFromOperations(ops routedoc.Operations) (*openapi3.PathItem, error) {
	b, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("encode operations: %w", err)
	}
	item := &openapi3.PathItem{}
	if err := item.UnmarshalJSON(b); err != nil {
		return nil, fmt.Errorf("decode path item: %w", err)
	}
	return item, nil
}

// BasePath returns the path component of the first server URL, e.g.
// "https://api.example.com/v1" gives "/v1". It is "" when the document has no
// servers or the URL cannot be parsed.
func BasePath(s *openapi3.T) string {
	if len(s.Servers) == 0 || s.Servers[0] == nil {
		return ""
	}
	raw := s.Servers[0].URL
	if !govalidator.IsRequestURI(raw) {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(u.Path, "/")
}

// AddSchema generates a schema for value and registers it as a component
// under name, so documentation blocks can reference
// "#/components/schemas/<name>".
func AddSchema(s *openapi3.T, name string, value any) error {
	ref, err := openapi3gen.NewGenerator().NewSchemaRefForValue(value, nil)
	if err != nil {
		return fmt.Errorf("schema %s: %w", name, err)
	}
	if s.Components == nil {
		s.Components = &openapi3.Components{}
	}
	if s.Components.Schemas == nil {
		s.Components.Schemas = openapi3.Schemas{}
	}
	s.Components.Schemas[name] = ref
	return nil
}
