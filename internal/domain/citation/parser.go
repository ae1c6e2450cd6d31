// Package citation extracts document citation markers from model output and
// resolves them against the workspace's authoritative document list.
//
// A marker is the literal token `[Doc <id>: <nombre>]`. The same grammar is
// used by the web client to linkify replies; keep both sides in sync.
package citation

import (
	"regexp"
	"strconv"
	"strings"
)

// Marker is one citation occurrence as written by the model.
type Marker struct {
	ID     int
	Nombre string
}

// markerRe matches [Doc <digits>: <text without ']'>]. The id must be an
// unsigned integer and the name runs up to (not including) the closing bracket.
var markerRe = regexp.MustCompile(`\[Doc (\d+):\s*([^\]]+)\]`)

// FindMarkers returns every citation marker in text in left-to-right order.
// Malformed brackets (missing colon, non-numeric id, unterminated bracket) are
// simply not markers. The function has no side effects and re-running it on the
// same input yields the same sequence.
func FindMarkers(text string) []Marker {
	matches := markerRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	markers := make([]Marker, 0, len(matches))
	for _, m := range matches {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			// \d+ guarantees digits, so Atoi only fails on overflow.
			continue
		}
		markers = append(markers, Marker{ID: id, Nombre: strings.TrimSpace(m[2])})
	}
	return markers
}
