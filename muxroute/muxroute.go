// Package muxroute exposes a gorilla/mux router as a routedoc route tree.
//
//	hello := routedoc.NewResource(&HelloResource{})
//	r := mux.NewRouter()
//	r.Handle("/hi", hello.Responder(http.MethodGet)).Methods(http.MethodGet)
//
//	t, err := muxroute.Tree(r)
//	path, err := routedoc.NewResolver(t).PathHelper(ops, hello)
//
// mux has no nested route table, so the tree is flat: one node per path
// template and resource, in registration order.
package muxroute

import (
	"strings"

	"github.com/Gobd/routedoc"
	"github.com/gorilla/mux"
)

type (
	tree struct {
		roots []routedoc.Node
	}

	node struct {
		template string
		resource *routedoc.Resource
		methods  map[string]*routedoc.Responder
	}

	nodeKey struct {
		template string
		resource routedoc.ResourceID
	}
)

// Tree snapshots the routes of r. Routes whose handler is not a
// *routedoc.Responder are skipped.
func Tree(r *mux.Router) (routedoc.Tree, error) {
	t := &tree{}
	index := make(map[nodeKey]*node)

	err := r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		rp, ok := route.GetHandler().(*routedoc.Responder)
		if !ok || rp == nil || rp.Resource() == nil {
			return nil
		}
		template, err := route.GetPathTemplate()
		if err != nil {
			// Routes matched on host or headers only have no path to document.
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{rp.Method}
		}

		key := nodeKey{template: template, resource: rp.Resource().ID()}
		n, ok := index[key]
		if !ok {
			n = &node{
				template: template,
				resource: rp.Resource(),
				methods:  make(map[string]*routedoc.Responder),
			}
			index[key] = n
			t.roots = append(t.roots, n)
		}
		for _, m := range methods {
			n.methods[strings.ToUpper(m)] = rp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *tree) Roots() []routedoc.Node { return t.roots }

func (n *node) URITemplate() string                       { return n.template }
func (n *node) Resource() *routedoc.Resource              { return n.resource }
func (n *node) MethodMap() map[string]*routedoc.Responder { return n.methods }
func (n *node) Children() []routedoc.Node                 { return nil }
