package openapi

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"net/http"
	"text/template"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-yaml"
)

//go:embed swagger/index.html
var swagFS embed.FS

// DocsHandler returns an http.Handler that serves the Swagger UI for the
// given OpenAPI spec at "/", the spec as JSON at "/docs.json" and as YAML at
// "/docs.yaml". Local references
// such as "#/components/schemas/Item" are resolved before the spec is
// validated. The prefix is stripped automatically, so just mount it:
//
//	http.Handle("/docs/", openapi.DocsHandlerMust("/docs/", spec))
func DocsHandler(prefix string, s *openapi3.T) (http.Handler, error) {
	if err := openapi3.NewLoader().ResolveRefsIn(s, nil); err != nil {
		return nil, err
	}
	if err := s.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var tree any
	if err := json.Unmarshal(specJSON, &tree); err != nil {
		return nil, err
	}
	specYAML, err := yaml.Marshal(tree)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.ParseFS(swagFS, "swagger/index.html")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{"Docs": string(specJSON)}); err != nil {
		return nil, err
	}
	index := buf.Bytes()

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "", "/", "index.html", "/index.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(index)
		case "docs.json", "/docs.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(specJSON)
		case "docs.yaml", "/docs.yaml":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write(specYAML)
		default:
			http.NotFound(w, r)
		}
	})), nil
}

// DocsHandlerMust is like DocsHandler but panics on error.
func DocsHandlerMust(prefix string, s *openapi3.T) http.Handler {
	h, err := DocsHandler(prefix, s)
	if err != nil {
		panic(err)
	}
	return h
}
