package routedoc_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gobd/routedoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mixedResource struct{}

func (m *mixedResource) OnGet(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusTeapot)
}

func (m *mixedResource) OnPutItem(http.ResponseWriter, *http.Request) {}

// Wrong signature.
func (m *mixedResource) OnDelete() {}

// Not a verb.
func (m *mixedResource) OnBogus(http.ResponseWriter, *http.Request) {}

// Not a responder name.
func (m *mixedResource) Get(http.ResponseWriter, *http.Request) {}

func TestNewResource_Discovery(t *testing.T) {
	res := routedoc.NewResource(&mixedResource{})

	var names []string
	for _, rp := range res.Responders() {
		names = append(names, rp.Name)
	}
	assert.Equal(t, []string{"OnGet", "OnPutItem"}, names)

	put := res.SuffixedResponder(http.MethodPut, "item")
	require.NotNil(t, put)
	assert.Equal(t, http.MethodPut, put.Method)
	assert.False(t, put.Default)
	assert.Same(t, res, put.Resource())

	assert.Nil(t, res.Responder(http.MethodDelete))
	assert.Nil(t, res.Responder(http.MethodPut))
}

func TestNewResource_Identity(t *testing.T) {
	a := routedoc.NewResource(&mixedResource{})
	b := routedoc.NewResource(&mixedResource{})

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "*routedoc_test.mixedResource", a.Name())
}

func TestNewResource_Docs(t *testing.T) {
	res := routedoc.NewResource(&metadataResource{})
	assert.Contains(t, res.Doc(), "x-extension")

	res = routedoc.NewResource(&metadataResource{}, routedoc.WithDoc("Replaced."))
	assert.Equal(t, "Replaced.", res.Doc())

	hello := routedoc.NewResource(&helloResource{})
	assert.Equal(t, greetingDoc, hello.Responder(http.MethodGet).Doc)

	hello = routedoc.NewResource(&helloResource{}, routedoc.WithResponderDoc("on_get", "Overridden."))
	assert.Equal(t, "Overridden.", hello.Responder(http.MethodGet).Doc)
}

func TestNewResource_FunctionResponders(t *testing.T) {
	called := false
	res := routedoc.NewResource(nil,
		routedoc.WithName("greeter"),
		routedoc.WithResponder("OnGet", func(http.ResponseWriter, *http.Request) { called = true }, greetingDoc),
		routedoc.WithResponder("NotAResponder", func(http.ResponseWriter, *http.Request) {}, ""),
	)

	assert.Equal(t, "greeter", res.Name())
	require.Len(t, res.Responders(), 1)

	get := res.Responder(http.MethodGet)
	require.NotNil(t, get)
	get.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)

	router := routedoc.NewRouter()
	require.NoError(t, router.AddRoute("/greet", res))
	_, ops := resolve(t, router, res)
	assert.Equal(t, greeting, ops["get"])
}

func TestResponder_ServeHTTP(t *testing.T) {
	res := routedoc.NewResource(&mixedResource{})

	rec := httptest.NewRecorder()
	res.Responder(http.MethodGet).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
