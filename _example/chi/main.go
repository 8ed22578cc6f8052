// Command chi documents a chi router with routedoc.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then open http://localhost:8080/docs/ in your browser.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Gobd/routedoc"
	"github.com/Gobd/routedoc/chiroute"
	"github.com/Gobd/routedoc/openapi"
	"github.com/go-chi/chi/v5"
)

type Order struct {
	CustomerName string  `json:"customer_name"`
	Total        float64 `json:"total"`
}

type OrderResource struct{}

func (o *OrderResource) OnPost(w http.ResponseWriter, r *http.Request) {
	var order Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(order)
}

func (o *OrderResource) ResponderDocs() map[string]string {
	return map[string]string{
		"OnPost": `Create an order.
---
operationId: createOrder
requestBody:
  content:
    application/json:
      schema:
        $ref: '#/components/schemas/Order'
responses:
  200:
    description: the created order
  400:
    description: malformed order
`,
	}
}

func main() {
	orders := routedoc.NewResource(&OrderResource{})

	api := chi.NewRouter()
	api.Method(http.MethodPost, "/orders", orders.Responder(http.MethodPost))

	r := chi.NewRouter()
	r.Mount("/api", api)

	doc := openapi.DocBase("Example API (chi)", "Demonstrates routedoc with chi", "0.1.0")
	if err := openapi.AddSchema(doc, "Order", Order{}); err != nil {
		log.Fatal(err)
	}
	if err := openapi.NewPlugin(chiroute.Tree(r)).PathAll(doc); err != nil {
		log.Fatal(err)
	}

	r.Handle("/docs/*", openapi.DocsHandlerMust("/docs/", doc))

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("Docs: http://localhost:8080/docs/")
	log.Fatal(http.ListenAndServe(":8080", r))
}
