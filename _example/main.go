// Command example documents a small API from its route tree and serves the
// resulting OpenAPI document.
//
// Run:
//
//	go run ./_example
//
// Then open http://localhost:8080/docs/ in your browser.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Gobd/routedoc"
	"github.com/Gobd/routedoc/openapi"
)

// Greeting is the response body of the greeting endpoints.
type Greeting struct {
	Message string `json:"message"`
}

// GreetingResource serves /hi and, with the "hello" suffix, /hi/hello.
type GreetingResource struct{}

func (g *GreetingResource) OnGet(w http.ResponseWriter, _ *http.Request) {
	_ = json.NewEncoder(w).Encode(Greeting{Message: "hi"})
}

func (g *GreetingResource) OnGetHello(w http.ResponseWriter, _ *http.Request) {
	_ = json.NewEncoder(w).Encode(Greeting{Message: "hello"})
}

func (g *GreetingResource) Doc() string {
	return `Greeting API.
---
x-owner: greeters
`
}

func (g *GreetingResource) ResponderDocs() map[string]string {
	return map[string]string{
		"OnGet": `Say hi.
---
summary: Say hi
responses:
  200:
    description: a short greeting
    content:
      application/json:
        schema:
          $ref: '#/components/schemas/Greeting'
`,
		"OnGetHello": `Say hello.
---
summary: Say hello
responses:
  200:
    description: a longer greeting
    content:
      application/json:
        schema:
          $ref: '#/components/schemas/Greeting'
`,
	}
}

func main() {
	greeting := routedoc.NewResource(&GreetingResource{})

	router := routedoc.NewRouter()
	if err := router.AddRoute("/v1/hi", greeting); err != nil {
		log.Fatal(err)
	}
	if err := router.AddRoute("/v1/hi/hello", greeting, routedoc.WithRouteSuffix("hello")); err != nil {
		log.Fatal(err)
	}

	doc := openapi.DocBase("Example API", "Demonstrates routedoc", "0.1.0")
	if err := openapi.AddSchema(doc, "Greeting", Greeting{}); err != nil {
		log.Fatal(err)
	}

	plugin := openapi.NewPlugin(router)
	base := routedoc.WithBasePath("v1")
	if _, err := plugin.Path(doc, greeting, base); err != nil {
		log.Fatal(err)
	}
	if _, err := plugin.Path(doc, greeting, base, routedoc.WithSuffix("hello")); err != nil {
		log.Fatal(err)
	}

	http.Handle("/docs/", openapi.DocsHandlerMust("/docs/", doc))
	http.Handle("/v1/hi", greeting.Responder(http.MethodGet))
	http.Handle("/v1/hi/hello", greeting.SuffixedResponder(http.MethodGet, "hello"))

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("Docs: http://localhost:8080/docs/")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
