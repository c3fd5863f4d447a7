package formatter

import (
	"encoding/json"

	"github.com/saarmobil/extxml-to-fptf/fptf"
)

type resultBuilder struct {
	indent bool
}

// NewResultBuilder creates a builder for rendering search results.
func NewResultBuilder(indent bool) *resultBuilder {
	return &resultBuilder{indent: indent}
}

// BuildJSON serializes a list of places to JSON.
func (rb *resultBuilder) BuildJSON(places []fptf.Place) ([]byte, error) {
	if places == nil {
		places = []fptf.Place{}
	}
	if rb.indent {
		return json.MarshalIndent(places, "", "  ")
	}
	return json.Marshal(places)
}
