package routedoc

type (
	// Operations maps a lowercase HTTP verb to its documentation fragment.
	// Resource-level keys such as vendor extensions ("x-...") live alongside
	// the verbs. It is filled in place by [Resolver.PathHelper].
	Operations map[string]any

	// Node is one entry of a route tree. Implementations are owned by the
	// routing layer; the resolver only reads them.
	Node interface {
		// URITemplate returns the path pattern, e.g. "/items/{id}".
		URITemplate() string
		// Resource returns the bound resource, or nil for prefix-only nodes.
		Resource() *Resource
		// MethodMap returns the responders keyed by HTTP method name.
		MethodMap() map[string]*Responder
		Children() []Node
	}

	// Tree is a route tree given by its root nodes.
	Tree interface {
		Roots() []Node
	}

	// Extractor turns a documentation string into structured data.
	// See the docstring package for the default implementation.
	Extractor interface {
		// LoadYAML returns the whole structured block of doc.
		LoadYAML(doc string) (map[string]any, error)
		// LoadOperations returns only the path-level keys of the block.
		LoadOperations(doc string) (map[string]any, error)
	}

	// Documented is implemented by resource types that carry a
	// resource-level documentation string.
	//
	//	func (h *HelloResource) Doc() string {
	//	    return `Greeting API.
	//	---
	//	x-extension: global metadata
	//	`
	//	}
	Documented interface {
		Doc() string
	}

	// ResponderDocumenter is implemented by resource types that document
	// their responders. Keys are responder method names such as "OnGet" or
	// "OnGetHello".
	ResponderDocumenter interface {
		ResponderDocs() map[string]string
	}
)
