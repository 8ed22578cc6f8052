// Package routedoc resolves OpenAPI path documentation from a route tree.
//
// A [Resource] wraps a handler object whose exported On<Verb> methods are its
// responders. Documentation lives next to the code: the resource and each
// responder may carry a documentation string with a YAML block after a "---"
// line.
//
//	type HelloResource struct{}
//
//	func (h *HelloResource) OnGet(w http.ResponseWriter, r *http.Request) {}
//
//	func (h *HelloResource) ResponderDocs() map[string]string {
//	    return map[string]string{
//	        "OnGet": `A greeting endpoint.
//	---
//	description: get a greeting
//	responses:
//	  200:
//	    description: said hi
//	`,
//	    }
//	}
//
// Register it on a route tree and resolve its path:
//
//	hello := routedoc.NewResource(&HelloResource{})
//	router := routedoc.NewRouter()
//	_ = router.AddRoute("/hi", hello)
//
//	ops := routedoc.Operations{}
//	path, err := routedoc.NewResolver(router).PathHelper(ops, hello)
//
// Any tree implementing [Tree] can be resolved, see the chiroute and muxroute
// sub-packages.
//
// Sub-packages:
//   - docstring – YAML-in-documentation extraction
//   - openapi – OpenAPI 3 document assembly and docs serving
//   - chiroute – route trees from chi routers
//   - muxroute – route trees from gorilla/mux routers
package routedoc
