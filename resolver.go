package routedoc

import (
	"log/slog"
	"strings"

	"github.com/Gobd/routedoc/docstring"
)

// DefaultOpenAPIVersion decides the valid verb set when none is given.
const DefaultOpenAPIVersion = "3.0.3"

type (
	// Resolver finds the route and documentation of resources in a [Tree].
	// It keeps no state between calls: every call walks the live tree, so
	// routes added after construction are seen.
	Resolver struct {
		tree      Tree
		extractor Extractor
		logger    *slog.Logger
	}

	// Option configures [NewResolver].
	Option func(*Resolver)

	// PathOption configures a single resolution.
	PathOption func(*pathConfig)

	pathConfig struct {
		basePath string
		suffix   string
		version  string
	}

	// binding is a route node bound to the resource being resolved, with its
	// method map already filtered.
	binding struct {
		node    Node
		methods map[string]*Responder
	}
)

// WithExtractor replaces the documentation extractor.
func WithExtractor(e Extractor) Option {
	return func(r *Resolver) { r.extractor = e }
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// WithBasePath strips the first occurrence of base from the resolved path.
// "v1" and "/v1/" are the same base path. An empty base path or "/" leaves
// the path untouched, so "/hi" never becomes "hi".
func WithBasePath(base string) PathOption {
	return func(c *pathConfig) { c.basePath = base }
}

// WithSuffix only documents responders whose name ends with suffix, e.g.
// "hello" selects OnGetHello.
func WithSuffix(suffix string) PathOption {
	return func(c *pathConfig) { c.suffix = suffix }
}

// WithOpenAPIVersion selects the verbs an operation may be documented under.
func WithOpenAPIVersion(version string) PathOption {
	return func(c *pathConfig) {
		if version != "" {
			c.version = version
		}
	}
}

// NewResolver returns a resolver over tree.
func NewResolver(tree Tree, opts ...Option) *Resolver {
	r := &Resolver{
		tree:      tree,
		extractor: docstring.Extractor{},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func newPathConfig(opts []PathOption) *pathConfig {
	c := &pathConfig{version: DefaultOpenAPIVersion}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PathHelper resolves the path of res and merges its documentation into ops.
//
// Resource-level operations from res.Doc() go in first; then each responder
// kept for the route is added under its lowercase verb. Keys the resource
// level already set are never overwritten. When res is bound to several
// routes, the first one with documented responders wins.
//
// The only error is a *SpecError wrapping [ErrResourceNotFound].
func (r *Resolver) PathHelper(ops Operations, res *Resource, opts ...PathOption) (string, error) {
	if res == nil {
		return "", &SpecError{Err: ErrResourceNotFound}
	}
	cfg := newPathConfig(opts)

	bindings := r.bindings(res.ID(), cfg, true)
	if len(bindings) == 0 {
		return "", &SpecError{Resource: res.ID(), Name: res.Name(), Err: ErrResourceNotFound}
	}

	chosen := bindings[0]
	for _, b := range bindings {
		if len(b.methods) > 0 {
			chosen = b
			break
		}
	}
	if len(bindings) > 1 {
		r.logger.Debug("resource bound to several routes",
			"resource", res.Name(), "routes", len(bindings), "chosen", chosen.node.URITemplate())
	}

	path := stripBasePath(chosen.node.URITemplate(), cfg.basePath)
	r.merge(ops, res, chosen.methods)
	r.logger.Debug("resolved resource path", "resource", res.Name(), "path", path, "operations", len(chosen.methods))
	return path, nil
}

// RoutePath documents one specific route node. Unlike [Resolver.PathHelper]
// it needs no suffix: every non-default responder of the node with a valid
// verb is documented.
func (r *Resolver) RoutePath(ops Operations, node Node, opts ...PathOption) string {
	cfg := newPathConfig(opts)
	methods := filterMethods(node, cfg, false)
	if res := node.Resource(); res != nil {
		r.merge(ops, res, methods)
	}
	return stripBasePath(node.URITemplate(), cfg.basePath)
}

// Routes returns every node bound to a resource, breadth first.
func (r *Resolver) Routes() []Node {
	var out []Node
	walk(r.tree, func(n Node) {
		if n.Resource() != nil {
			out = append(out, n)
		}
	})
	return out
}

func (r *Resolver) bindings(id ResourceID, cfg *pathConfig, useSuffix bool) []binding {
	var out []binding
	walk(r.tree, func(n Node) {
		if res := n.Resource(); res != nil && res.ID() == id {
			out = append(out, binding{node: n, methods: filterMethods(n, cfg, useSuffix)})
		}
	})
	return out
}

// walk visits the roots and all their descendants breadth first.
func walk(tree Tree, visit func(Node)) {
	if tree == nil {
		return
	}
	queue := append([]Node(nil), tree.Roots()...)
	for i := 0; i < len(queue); i++ {
		n := queue[i]
		if n == nil {
			continue
		}
		visit(n)
		queue = append(queue, n.Children()...)
	}
}

// filterMethods keys the documentable responders of n by lowercase verb.
// With useSuffix, a responder name must end with the configured suffix, or
// with its own verb when no suffix is configured.
func filterMethods(n Node, cfg *pathConfig, useSuffix bool) map[string]*Responder {
	valid := validMethodSet(cfg.version)
	suffix := normalizeName(cfg.suffix)
	out := make(map[string]*Responder)
	for method, rp := range n.MethodMap() {
		if rp == nil || rp.Default {
			continue
		}
		verb := strings.ToLower(method)
		if !valid[verb] {
			continue
		}
		if useSuffix {
			name := normalizeName(rp.Name)
			if suffix != "" && !strings.HasSuffix(name, suffix) {
				continue
			}
			if suffix == "" && !strings.HasSuffix(name, verb) {
				continue
			}
		}
		out[verb] = rp
	}
	return out
}

func (r *Resolver) merge(ops Operations, res *Resource, methods map[string]*Responder) {
	resourceOps, err := r.extractor.LoadOperations(res.Doc())
	if err != nil {
		r.logger.Warn("ignoring resource documentation", "resource", res.Name(), "error", err)
		resourceOps = nil
	}
	for k, v := range resourceOps {
		ops[k] = v
	}

	for verb, rp := range methods {
		doc, err := r.extractor.LoadYAML(rp.Doc)
		if err != nil {
			r.logger.Warn("ignoring responder documentation", "resource", res.Name(), "responder", rp.Name, "error", err)
			doc = nil
		}
		if doc == nil {
			doc = map[string]any{}
		}
		if fixed, ok := resourceOps[verb].(map[string]any); ok {
			for k, v := range fixed {
				doc[k] = v
			}
		} else if _, ok := resourceOps[verb]; ok {
			continue
		}
		ops[verb] = doc
	}
}

// stripBasePath removes the first literal occurrence of base from path.
// base is normalized to one leading slash and no trailing slash; an empty
// base leaves path alone.
func stripBasePath(path, base string) string {
	trimmed := strings.Trim(base, "/")
	if trimmed == "" {
		return path
	}
	return strings.Replace(path, "/"+trimmed, "", 1)
}
