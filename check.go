package routedoc

import "github.com/Gobd/routedoc/docstring"

// MissingDocs returns the names of responders of res whose documentation has
// no structured block, or a block that does not parse. Names listed in
// exclude are skipped.
//
// Use in tests to catch undocumented endpoints:
//
//	assert.Empty(t, routedoc.MissingDocs(res))
//	assert.Empty(t, routedoc.MissingDocs(res, "OnDelete"))
func MissingDocs(res *Resource, exclude ...string) []string {
	excl := map[string]bool{}
	for _, e := range exclude {
		excl[normalizeName(e)] = true
	}

	var missing []string
	for _, rp := range res.Responders() {
		if excl[normalizeName(rp.Name)] {
			continue
		}
		doc, err := docstring.LoadYAML(rp.Doc)
		if err != nil || len(doc) == 0 {
			missing = append(missing, rp.Name)
		}
	}
	return missing
}
