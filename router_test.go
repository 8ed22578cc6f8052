package routedoc_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gobd/routedoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRoute_Validation(t *testing.T) {
	hello := routedoc.NewResource(&helloResource{})

	tests := []struct {
		name     string
		template string
		res      *routedoc.Resource
		opts     []routedoc.RouteOption
		field    string
	}{
		{"empty template", "", hello, nil, "template"},
		{"relative template", "hi", hello, nil, "template"},
		{"template with query", "/hi?x=1", hello, nil, "template"},
		{"trailing slash", "/hi/", hello, nil, "template"},
		{"empty segment", "/api//hi", hello, nil, "template"},
		{"nil resource", "/hi", nil, nil, "resource"},
		{"bad suffix", "/hi", hello, []routedoc.RouteOption{routedoc.WithRouteSuffix("he-llo")}, "suffix"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := routedoc.NewRouter().AddRoute(tt.template, tt.res, tt.opts...)
			require.Error(t, err)

			var verrs routedoc.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, tt.field)
		})
	}
}

func TestAddRoute_TrailingSlashKeepsBinding(t *testing.T) {
	first := routedoc.NewResource(&helloResource{})
	second := routedoc.NewResource(&postResource{})
	router := routedoc.NewRouter()
	require.NoError(t, router.AddRoute("/hi", first))
	require.Error(t, router.AddRoute("/hi/", second))

	path, err := routedoc.NewResolver(router).PathHelper(routedoc.Operations{}, first)
	require.NoError(t, err)
	assert.Equal(t, "/hi", path)
}

func TestAddRoute_Root(t *testing.T) {
	hello := routedoc.NewResource(&helloResource{})
	router := routedoc.NewRouter()
	require.NoError(t, router.AddRoute("/", hello))

	path, err := routedoc.NewResolver(router).PathHelper(routedoc.Operations{}, hello)
	require.NoError(t, err)
	assert.Equal(t, "/", path)
}

func TestAddRoute_UnknownSuffix(t *testing.T) {
	hello := routedoc.NewResource(&helloResource{})

	err := routedoc.NewRouter().AddRoute("/hi", hello, routedoc.WithRouteSuffix("nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestAddRoute_ResourceWithoutResponders(t *testing.T) {
	res := routedoc.NewResource(&metadataResource{})
	assert.NoError(t, routedoc.NewRouter().AddRoute("/hi", res))
}

func TestAddRoute_Rebind(t *testing.T) {
	first := routedoc.NewResource(&helloResource{})
	second := routedoc.NewResource(&postResource{})
	router := routedoc.NewRouter()
	require.NoError(t, router.AddRoute("/hi", first))
	require.NoError(t, router.AddRoute("/hi", second))

	resolver := routedoc.NewResolver(router)
	_, err := resolver.PathHelper(routedoc.Operations{}, first)
	assert.ErrorIs(t, err, routedoc.ErrResourceNotFound)

	path, err := resolver.PathHelper(routedoc.Operations{}, second)
	require.NoError(t, err)
	assert.Equal(t, "/hi", path)
}

func TestRouter_Tree(t *testing.T) {
	hello := routedoc.NewResource(&helloResource{})
	router := routedoc.NewRouter()
	require.NoError(t, router.AddRoute("/api/items/{id}", hello))
	require.NoError(t, router.AddRoute("/api/users", hello))

	roots := router.Roots()
	require.Len(t, roots, 1)
	api := roots[0]
	assert.Equal(t, "/api", api.URITemplate())
	assert.Nil(t, api.Resource())

	children := api.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "/api/items", children[0].URITemplate())
	assert.Equal(t, "/api/users", children[1].URITemplate())
	assert.Same(t, hello, children[1].Resource())

	item := children[0].Children()
	require.Len(t, item, 1)
	assert.Equal(t, "/api/items/{id}", item[0].URITemplate())
	assert.Same(t, hello, item[0].Resource())
}

func TestRouter_MethodMap(t *testing.T) {
	hello := routedoc.NewResource(&helloResource{})
	router := routedoc.NewRouter()
	require.NoError(t, router.AddRoute("/hi", hello))

	methods := router.Roots()[0].MethodMap()
	require.Len(t, methods, len(routedoc.HTTPMethods))

	assert.Same(t, hello.Responder(http.MethodGet), methods[http.MethodGet])
	assert.False(t, methods[http.MethodGet].Default)
	for _, m := range []string{http.MethodPost, http.MethodOptions, http.MethodDelete} {
		assert.True(t, methods[m].Default, m)
		assert.Same(t, hello, methods[m].Resource(), m)
	}
}

func TestRouter_DefaultResponders(t *testing.T) {
	hello := routedoc.NewResource(&helloResource{})
	router := routedoc.NewRouter()
	require.NoError(t, router.AddRoute("/hi", hello))
	methods := router.Roots()[0].MethodMap()

	rec := httptest.NewRecorder()
	methods[http.MethodPost].ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hi", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Allow"))

	rec = httptest.NewRecorder()
	methods[http.MethodOptions].ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/hi", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Allow"))
}

func TestRouter_SuffixedMethodMap(t *testing.T) {
	res := routedoc.NewResource(&suffixedResource{})
	router := routedoc.NewRouter()
	require.NoError(t, router.AddRoute("/hi", res, routedoc.WithRouteSuffix("hello")))

	get := router.Roots()[0].MethodMap()[http.MethodGet]
	assert.Equal(t, "OnGetHello", get.Name)
	assert.Same(t, res.SuffixedResponder(http.MethodGet, "hello"), get)
}
