// Package chiroute exposes a chi router as a routedoc route tree.
//
// Register responders of a routedoc resource as chi handlers:
//
//	hello := routedoc.NewResource(&HelloResource{})
//	r := chi.NewRouter()
//	r.Method(http.MethodGet, "/hi", hello.Responder(http.MethodGet))
//
//	path, err := routedoc.NewResolver(chiroute.Tree(r)).PathHelper(ops, hello)
//
// Handlers that are not *routedoc.Responder (plain funcs, middleware-wrapped
// handlers) are invisible to the resolver.
package chiroute

import (
	"net/http"
	"sort"
	"strings"

	"github.com/Gobd/routedoc"
	"github.com/go-chi/chi/v5"
)

type (
	tree struct {
		routes chi.Routes
	}

	node struct {
		template string
		resource *routedoc.Resource
		methods  map[string]*routedoc.Responder
		children []routedoc.Node
	}
)

// Tree returns a route tree reading routes. The chi routes are read again on
// every Roots call, so routes added later are seen.
func Tree(routes chi.Routes) routedoc.Tree {
	return &tree{routes: routes}
}

func (t *tree) Roots() []routedoc.Node {
	return convert("", t.routes)
}

func convert(prefix string, routes chi.Routes) []routedoc.Node {
	if routes == nil {
		return nil
	}
	var out []routedoc.Node
	for _, r := range routes.Routes() {
		template := joinPattern(prefix, r.Pattern)
		nodes := bind(template, r.Handlers)
		if r.SubRoutes != nil {
			if len(nodes) == 0 {
				nodes = append(nodes, &node{template: template, methods: map[string]*routedoc.Responder{}})
			}
			nodes[0].children = convert(strings.TrimSuffix(template, "/*"), r.SubRoutes)
		}
		for _, n := range nodes {
			out = append(out, n)
		}
	}
	return out
}

// bind groups the responders of one pattern by resource, giving one node per
// resource. Methods are visited in sorted order so the result is stable.
func bind(template string, handlers map[string]http.Handler) []*node {
	methods := make([]string, 0, len(handlers))
	for m := range handlers {
		methods = append(methods, m)
	}
	sort.Strings(methods)

	var nodes []*node
	index := make(map[routedoc.ResourceID]*node)
	for _, m := range methods {
		rp, ok := handlers[m].(*routedoc.Responder)
		if !ok || rp == nil || rp.Resource() == nil {
			continue
		}
		res := rp.Resource()
		n, ok := index[res.ID()]
		if !ok {
			n = &node{
				template: template,
				resource: res,
				methods:  make(map[string]*routedoc.Responder),
			}
			index[res.ID()] = n
			nodes = append(nodes, n)
		}
		n.methods[strings.ToUpper(m)] = rp
	}
	return nodes
}

// joinPattern glues a mount prefix to a sub-router pattern.
func joinPattern(prefix, pattern string) string {
	if prefix == "" {
		return pattern
	}
	if pattern == "/" {
		return prefix
	}
	return strings.TrimSuffix(prefix, "/") + pattern
}

func (n *node) URITemplate() string                       { return n.template }
func (n *node) Resource() *routedoc.Resource              { return n.resource }
func (n *node) MethodMap() map[string]*routedoc.Responder { return n.methods }
func (n *node) Children() []routedoc.Node                 { return n.children }
