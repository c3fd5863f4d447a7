package formatter

import (
	"strings"

	"github.com/saarmobil/extxml-to-fptf/fptf"
)

// FilterPlaces keeps the places whose name contains the given text,
// case-insensitively. An empty filter keeps everything.
func FilterPlaces(places []fptf.Place, contains string) []fptf.Place {
	contains = strings.ToLower(strings.TrimSpace(contains))
	if contains == "" {
		return places
	}

	filtered := []fptf.Place{}
	for _, place := range places {
		var name string
		switch p := place.(type) {
		case fptf.Station:
			name = p.Name
		case fptf.Location:
			name = p.Name
		}
		if strings.Contains(strings.ToLower(name), contains) {
			filtered = append(filtered, place)
		}
	}
	return filtered
}
