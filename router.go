package routedoc

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	templatePattern = regexp.MustCompile(`^/([^\s?#/]+(/[^\s?#/]+)*)?$`)
	suffixPattern   = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

type (
	// Router is a segment tree of routes. It implements [Tree].
	Router struct {
		mu    sync.RWMutex
		roots []*routeNode
	}

	// RouteOption configures [Router.AddRoute].
	RouteOption func(*routeConfig)

	routeConfig struct {
		suffix string
	}

	routeNode struct {
		segment  string
		template string
		resource *Resource
		methods  map[string]*Responder
		children []*routeNode
	}
)

// WithRouteSuffix maps the route to the On<Verb><Suffix> responders of the
// resource, so one resource can serve several routes:
//
//	router.AddRoute("/say", res)                                  // OnGet
//	router.AddRoute("/say/hi", res, routedoc.WithRouteSuffix("hello")) // OnGetHello
func WithRouteSuffix(suffix string) RouteOption {
	return func(c *routeConfig) { c.suffix = suffix }
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{}
}

// AddRoute binds res to uriTemplate. Invalid input is reported as
// [ValidationErrors]; templates other than "/" must not end in a slash or
// contain empty segments. Adding a template twice rebinds it.
func (rt *Router) AddRoute(uriTemplate string, res *Resource, opts ...RouteOption) error {
	cfg := &routeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	err := validation.Errors{
		"template": validation.Validate(uriTemplate, validation.Required, validation.Match(templatePattern)),
		"suffix":   validation.Validate(cfg.suffix, validation.Match(suffixPattern)),
		"resource": validation.Validate(res, validation.NotNil),
	}.Filter()
	if err != nil {
		return err
	}

	methods, err := mapMethods(res, cfg.suffix)
	if err != nil {
		return err
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	node := rt.insert(uriTemplate)
	node.resource = res
	node.methods = methods
	return nil
}

// mapMethods builds the method map of a route. Methods without a responder
// get a default one.
func mapMethods(res *Resource, suffix string) (map[string]*Responder, error) {
	methods := make(map[string]*Responder, len(HTTPMethods))
	var allowed []string
	for _, m := range HTTPMethods {
		if rp := res.lookup(responderName(m, suffix)); rp != nil {
			methods[m] = rp
			allowed = append(allowed, m)
		}
	}
	if suffix != "" && len(allowed) == 0 {
		return nil, fmt.Errorf("routedoc: no responders for suffix %q on %s", suffix, res.Name())
	}
	if _, ok := methods["OPTIONS"]; !ok {
		allowed = append(allowed, "OPTIONS")
	}
	for _, m := range HTTPMethods {
		if _, ok := methods[m]; !ok {
			methods[m] = defaultResponder(res, m, allowed)
		}
	}
	return methods, nil
}

func (rt *Router) insert(uriTemplate string) *routeNode {
	segments := strings.Split(strings.Trim(uriTemplate, "/"), "/")
	level := &rt.roots
	var node *routeNode
	prefix := ""
	for _, seg := range segments {
		prefix += "/" + seg
		node = nil
		for _, n := range *level {
			if n.segment == seg {
				node = n
				break
			}
		}
		if node == nil {
			node = &routeNode{segment: seg, template: prefix}
			*level = append(*level, node)
		}
		level = &node.children
	}
	node.template = uriTemplate
	return node
}

// Roots returns a snapshot of the root nodes.
func (rt *Router) Roots() []Node {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return snapshot(rt.roots)
}

func snapshot(nodes []*routeNode) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = &frozenNode{
			template: n.template,
			resource: n.resource,
			methods:  n.methods,
			children: snapshot(n.children),
		}
	}
	return out
}

// frozenNode is a read-only copy handed out by [Router.Roots] so readers do
// not race with AddRoute.
type frozenNode struct {
	template string
	resource *Resource
	methods  map[string]*Responder
	children []Node
}

func (n *frozenNode) URITemplate() string              { return n.template }
func (n *frozenNode) Resource() *Resource              { return n.resource }
func (n *frozenNode) MethodMap() map[string]*Responder { return n.methods }
func (n *frozenNode) Children() []Node                 { return n.children }
