package openapi

import (
	"fmt"

	"github.com/Gobd/routedoc"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/hashicorp/go-multierror"
)

// Plugin documents routedoc resources into OpenAPI documents.
type Plugin struct {
	resolver *routedoc.Resolver
}

// NewPlugin returns a plugin resolving resources against tree.
func NewPlugin(tree routedoc.Tree, opts ...routedoc.Option) *Plugin {
	return &Plugin{resolver: routedoc.NewResolver(tree, opts...)}
}

// Resolver returns the underlying resolver.
func (p *Plugin) Resolver() *routedoc.Resolver {
	return p.resolver
}

// Path documents res in s and returns the path it was added under. The
// document's OpenAPI version selects the valid verbs unless opts override it.
func (p *Plugin) Path(s *openapi3.T, res *routedoc.Resource, opts ...routedoc.PathOption) (string, error) {
	ops := routedoc.Operations{}
	opts = append([]routedoc.PathOption{routedoc.WithOpenAPIVersion(s.OpenAPI)}, opts...)
	path, err := p.resolver.PathHelper(ops, res, opts...)
	if err != nil {
		return "", err
	}
	item, err := PathItemFromOperations(ops)
	if err != nil {
		return "", fmt.Errorf("path %s: %w", path, err)
	}
	MergePathItem(path, s, item)
	return path, nil
}

// PathAll documents every route bound to a resource, including resources
// bound under several paths. Routes without documentation are skipped.
// Failures are collected and returned together.
func (p *Plugin) PathAll(s *openapi3.T, opts ...routedoc.PathOption) error {
	opts = append([]routedoc.PathOption{routedoc.WithOpenAPIVersion(s.OpenAPI)}, opts...)

	var errs *multierror.Error
	for _, node := range p.resolver.Routes() {
		ops := routedoc.Operations{}
		path := p.resolver.RoutePath(ops, node, opts...)
		if len(ops) == 0 {
			continue
		}
		item, err := PathItemFromOperations(ops)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("path %s: %w", path, err))
			continue
		}
		MergePathItem(path, s, item)
	}
	return errs.ErrorOrNil()
}
