package routedoc

import (
	"net/http"
	"strings"
)

// HTTPMethods lists the methods a route can map responders for.
var HTTPMethods = []string{
	http.MethodConnect,
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
	http.MethodTrace,
}

// responderPrefix starts every responder method name.
const responderPrefix = "On"

var (
	validMethodsV2 = []string{"get", "put", "post", "delete", "options", "head", "patch"}
	validMethodsV3 = append(append([]string{}, validMethodsV2...), "trace")
)

// ValidMethods returns the lowercase verbs an OpenAPI path item of the given
// version may hold. Versions starting with "2" are Swagger 2.0; anything else
// is treated as 3.x.
func ValidMethods(openapiVersion string) []string {
	if strings.HasPrefix(strings.TrimSpace(openapiVersion), "2") {
		return append([]string(nil), validMethodsV2...)
	}
	return append([]string(nil), validMethodsV3...)
}

func validMethodSet(openapiVersion string) map[string]bool {
	set := make(map[string]bool)
	for _, m := range ValidMethods(openapiVersion) {
		set[m] = true
	}
	return set
}

// normalizeName folds a responder name or suffix for comparison:
// "OnGet_Hello", "ongethello" and "OnGetHello" are the same responder.
func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

// responderName builds the method name a route looks up for method and
// suffix, e.g. ("GET", "hello") -> "OnGetHello".
func responderName(method, suffix string) string {
	var b strings.Builder
	b.WriteString(responderPrefix)
	b.WriteString(titleWord(method))
	for _, part := range strings.Split(suffix, "_") {
		b.WriteString(titleWord(part))
	}
	return b.String()
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

// methodFromName returns the HTTP method encoded in a responder name, or ""
// if name is not a responder name. The longest matching verb wins.
func methodFromName(name string) string {
	if !strings.HasPrefix(name, responderPrefix) {
		return ""
	}
	rest := strings.ToLower(strings.TrimPrefix(name, responderPrefix))
	var found string
	for _, m := range HTTPMethods {
		if strings.HasPrefix(rest, strings.ToLower(m)) && len(m) > len(found) {
			found = m
		}
	}
	return found
}
