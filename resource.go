package routedoc

import (
	"fmt"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"sync/atomic"
)

// ResourceID is the identity key of a [Resource]. Resolution matches route
// nodes to resources by this key, never by structural equality.
type ResourceID uint64

var lastResourceID atomic.Uint64

type (
	// Resource is a handler object bound to one or more routes.
	Resource struct {
		id         ResourceID
		name       string
		doc        string
		responders map[string]*Responder
	}

	// Responder handles one HTTP method for a resource.
	Responder struct {
		// Name is the responder method name, e.g. "OnGetHello".
		Name string
		// Method is the HTTP method encoded in Name.
		Method string
		Doc    string
		// Default marks placeholders installed by the router for methods the
		// resource does not implement.
		Default bool

		resource *Resource
		fn       http.HandlerFunc
	}

	// ResourceOption configures [NewResource].
	ResourceOption func(*Resource)
)

// WithDoc sets the resource-level documentation, overriding [Documented].
func WithDoc(doc string) ResourceOption {
	return func(r *Resource) { r.doc = doc }
}

// WithName sets the display name used in errors and logs.
func WithName(name string) ResourceOption {
	return func(r *Resource) { r.name = name }
}

// WithResponder attaches a function responder. name must follow the
// On<Verb>[<Suffix>] convention; other names are ignored.
func WithResponder(name string, fn http.HandlerFunc, doc string) ResourceOption {
	return func(r *Resource) {
		r.addResponder(name, fn, doc)
	}
}

// WithResponderDoc sets the documentation of an already discovered responder.
func WithResponderDoc(name, doc string) ResourceOption {
	return func(r *Resource) {
		if resp := r.lookup(name); resp != nil {
			resp.Doc = doc
		}
	}
}

// NewResource wraps impl as a resource. Exported methods of impl named
// On<Verb>[<Suffix>] with the signature func(http.ResponseWriter, *http.Request)
// become responders. impl may be nil for a documentation-only resource built
// from options.
func NewResource(impl any, opts ...ResourceOption) *Resource {
	r := &Resource{
		id:         ResourceID(lastResourceID.Add(1)),
		responders: make(map[string]*Responder),
	}
	if impl != nil {
		r.name = fmt.Sprintf("%T", impl)
		r.discover(impl)
	}
	if d, ok := impl.(Documented); ok {
		r.doc = d.Doc()
	}
	if d, ok := impl.(ResponderDocumenter); ok {
		for name, doc := range d.ResponderDocs() {
			if resp := r.lookup(name); resp != nil {
				resp.Doc = doc
			}
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resource) discover(impl any) {
	v := reflect.ValueOf(impl)
	t := v.Type()
	for i := range t.NumMethod() {
		fn, ok := v.Method(i).Interface().(func(http.ResponseWriter, *http.Request))
		if !ok {
			continue
		}
		r.addResponder(t.Method(i).Name, fn, "")
	}
}

func (r *Resource) addResponder(name string, fn http.HandlerFunc, doc string) {
	method := methodFromName(name)
	if method == "" || fn == nil {
		return
	}
	r.responders[normalizeName(name)] = &Responder{
		Name:     name,
		Method:   method,
		Doc:      doc,
		resource: r,
		fn:       fn,
	}
}

func (r *Resource) lookup(name string) *Responder {
	return r.responders[normalizeName(name)]
}

// ID returns the identity key.
func (r *Resource) ID() ResourceID { return r.id }

// Name returns the display name, by default the Go type of the wrapped value.
func (r *Resource) Name() string { return r.name }

// Doc returns the resource-level documentation string.
func (r *Resource) Doc() string { return r.doc }

// Responder returns the un-suffixed responder for method, or nil.
func (r *Resource) Responder(method string) *Responder {
	return r.lookup(responderName(method, ""))
}

// SuffixedResponder returns the responder for method and suffix, or nil.
// SuffixedResponder(http.MethodGet, "hello") looks up OnGetHello.
func (r *Resource) SuffixedResponder(method, suffix string) *Responder {
	return r.lookup(responderName(method, suffix))
}

// Responders returns all responders sorted by name.
func (r *Resource) Responders() []*Responder {
	out := make([]*Responder, 0, len(r.responders))
	for _, resp := range r.responders {
		out = append(out, resp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Resource returns the resource the responder belongs to.
func (rp *Responder) Resource() *Resource { return rp.resource }

func (rp *Responder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	rp.fn(w, req)
}

// defaultResponder builds the placeholder for a method the resource does not
// implement. OPTIONS lists the allowed methods, everything else is a 405.
func defaultResponder(res *Resource, method string, allowed []string) *Responder {
	allow := strings.Join(allowed, ", ")
	rp := &Responder{
		Method:   method,
		Default:  true,
		resource: res,
	}
	if method == http.MethodOptions {
		rp.Name = "defaultOptions"
		rp.fn = func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Allow", allow)
			w.WriteHeader(http.StatusOK)
		}
		return rp
	}
	rp.Name = "methodNotAllowed"
	rp.fn = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", allow)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
	return rp
}
