// Package openapi assembles OpenAPI 3 documents from a routedoc route tree.
//
// Create a base document with [DocBase], document resources with a [Plugin],
// and serve the result with [DocsHandlerMust]:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	plugin := openapi.NewPlugin(router)
//	if _, err := plugin.Path(doc, hello); err != nil {
//	    log.Fatal(err)
//	}
//	http.Handle("/docs/", openapi.DocsHandlerMust("/docs/", doc))
package openapi
