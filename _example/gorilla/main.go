// Command gorilla documents a gorilla/mux router with routedoc.
//
// Run:
//
//	cd _example/gorilla && go run .
//
// Then open http://localhost:8080/docs/ in your browser.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Gobd/routedoc"
	"github.com/Gobd/routedoc/muxroute"
	"github.com/Gobd/routedoc/openapi"
	"github.com/gorilla/mux"
)

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserResource struct{}

func (u *UserResource) OnGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(User{ID: mux.Vars(r)["id"], Name: "gopher"})
}

func (u *UserResource) OnDelete(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (u *UserResource) Doc() string {
	return `Users.
---
x-owner: accounts
`
}

func (u *UserResource) ResponderDocs() map[string]string {
	return map[string]string{
		"OnGet": `Fetch a user.
---
operationId: getUser
parameters:
  - name: id
    in: path
    required: true
    schema:
      type: string
responses:
  200:
    description: the user
    content:
      application/json:
        schema:
          $ref: '#/components/schemas/User'
`,
		"OnDelete": `Delete a user.
---
operationId: deleteUser
parameters:
  - name: id
    in: path
    required: true
    schema:
      type: string
responses:
  204:
    description: deleted
`,
	}
}

func main() {
	users := routedoc.NewResource(&UserResource{})

	r := mux.NewRouter()
	r.Handle("/users/{id}", users.Responder(http.MethodGet)).Methods(http.MethodGet)
	r.Handle("/users/{id}", users.Responder(http.MethodDelete)).Methods(http.MethodDelete)

	tree, err := muxroute.Tree(r)
	if err != nil {
		log.Fatal(err)
	}

	doc := openapi.DocBase("Example API (gorilla)", "Demonstrates routedoc with gorilla/mux", "0.1.0")
	if err := openapi.AddSchema(doc, "User", User{}); err != nil {
		log.Fatal(err)
	}
	if _, err := openapi.NewPlugin(tree).Path(doc, users); err != nil {
		log.Fatal(err)
	}

	r.PathPrefix("/docs/").Handler(openapi.DocsHandlerMust("/docs/", doc))

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("Docs: http://localhost:8080/docs/")
	log.Fatal(http.ListenAndServe(":8080", r))
}
