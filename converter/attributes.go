package converter

import (
	"strings"

	"github.com/saarmobil/extxml-to-fptf/extxml"
	"github.com/saarmobil/extxml-to-fptf/fptf"
)

// Journey attribute wire tags.
const (
	tagJourneyAttribute = "JourneyAttribute"
	tagAttribute        = "Attribute"
	tagAttributeVariant = "AttributeVariant"
	tagText             = "Text"
)

// Variant labels a journey attribute's text comes in.
const (
	VariantShort  = "SHORT"
	VariantNormal = "NORMAL"
	VariantLong   = "LONG"
)

const attributeOperator = "OPERATOR"

// JourneyAttribute is an interval-tagged annotation on a journey: the
// half-open [From, To) leg range it is valid for, its semantic name, and
// its text in one or more variant forms.
type JourneyAttribute struct {
	Name     string
	From     int
	To       int
	Variants map[string]string
}

// ExtractJourneyAttributes scans an element tree for journey attribute
// elements, in document order.
func ExtractJourneyAttributes(el *extxml.Element) []JourneyAttribute {
	var attrs []JourneyAttribute
	var walk func(*extxml.Element)
	walk = func(e *extxml.Element) {
		if extxml.StripNamespace(e.LocalTag()) == tagJourneyAttribute {
			attrs = append(attrs, parseJourneyAttribute(e))
			return
		}
		for i := range e.Children {
			walk(&e.Children[i])
		}
	}
	walk(el)
	return attrs
}

func parseJourneyAttribute(el *extxml.Element) JourneyAttribute {
	ja := JourneyAttribute{Variants: map[string]string{}}
	ja.From, _ = el.IntAttr("from")
	ja.To, _ = el.IntAttr("to")

	attr := el.Find(tagAttribute)
	if attr == nil {
		return ja
	}
	ja.Name, _ = attr.Attr("type")
	for i := range attr.Children {
		variant := &attr.Children[i]
		if variant.LocalTag() != tagAttributeVariant {
			continue
		}
		label, ok := variant.Attr("type")
		if !ok {
			continue
		}
		if text := variant.Find(tagText); text != nil {
			ja.Variants[label] = strings.TrimSpace(text.Text)
		}
	}
	return ja
}

// ResolveOperator picks the operator serving a journey from its attribute
// list. Among OPERATOR attributes the one covering the strictly largest
// leg span wins; on equal spans the earliest-seen candidate is kept. The
// operator id uses the shortest available text form, the display name the
// longest. Journeys without an operator attribute yield nil.
func ResolveOperator(attrs []JourneyAttribute) (*fptf.Operator, error) {
	var chosen *JourneyAttribute
	for i := range attrs {
		if attrs[i].Name != attributeOperator {
			continue
		}
		if chosen == nil || attrs[i].To-attrs[i].From > chosen.To-chosen.From {
			chosen = &attrs[i]
		}
	}
	if chosen == nil {
		return nil, nil
	}

	id, okID := firstVariant(chosen.Variants, VariantShort, VariantNormal, VariantLong)
	name, okName := firstVariant(chosen.Variants, VariantLong, VariantNormal, VariantShort)
	if !okID || !okName {
		return nil, &extxml.MissingFieldError{Field: tagAttributeVariant}
	}
	return &fptf.Operator{Type: fptf.TypeOperator, ID: id, Name: name}, nil
}

func firstVariant(variants map[string]string, labels ...string) (string, bool) {
	for _, label := range labels {
		if text, ok := variants[label]; ok {
			return text, true
		}
	}
	return "", false
}
