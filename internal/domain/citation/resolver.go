package citation

import "fmt"

// Document is the authoritative record owned by the document service. The chat
// pipeline only reads it for the duration of one request.
type Document struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	URL    string `json:"url,omitempty"`
}

// Reference is a resolved citation returned to the client: the marker's id and
// name plus a link target that is never empty.
type Reference struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	URL    string `json:"url"`
}

// FallbackURL is the link target used when a cited document has no usable URL.
// The web client renders it as an in-page anchor, so the link never dangles.
func FallbackURL(id int) string {
	return fmt.Sprintf("#doc-%d", id)
}

// Resolve cross-references markers against docs. The output has the same length
// and order as markers, duplicates included. A marker whose id has no match, or
// whose document has no URL yet, degrades to FallbackURL. Resolution never fails.
//
// When the model repeats an id with two different names, each occurrence keeps
// its own literal name and both resolve to the same URL.
func Resolve(markers []Marker, docs []Document) []Reference {
	byID := make(map[int]Document, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}

	refs := make([]Reference, len(markers))
	for i, m := range markers {
		ref := Reference{ID: m.ID, Nombre: m.Nombre, URL: FallbackURL(m.ID)}
		if d, ok := byID[m.ID]; ok && d.URL != "" {
			ref.URL = d.URL
		}
		refs[i] = ref
	}
	return refs
}

// Catalog converts the full authoritative document list into client-facing
// references, one per document, applying the same URL fallback as Resolve.
// The client uses it to repair stale links in locally persisted history.
func Catalog(docs []Document) []Reference {
	refs := make([]Reference, len(docs))
	for i, d := range docs {
		url := d.URL
		if url == "" {
			url = FallbackURL(d.ID)
		}
		refs[i] = Reference{ID: d.ID, Nombre: d.Nombre, URL: url}
	}
	return refs
}
