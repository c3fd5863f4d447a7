package extxml

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Namespace is the fixed XML namespace of the ExtXML protocol.
const Namespace = "urn:ExtXml"

// Element is a generic node of a parsed response document. The protocol is
// dispatched by tag at runtime, so responses are decoded into this tree
// rather than into per-message structs.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []Element  `xml:",any"`
}

// ParseDocument decodes a response body into an element tree. The decoder
// honors the charset declared in the XML header, so the protocol's
// iso8859-1 bodies decode correctly.
func ParseDocument(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var root Element
	if err := dec.Decode(&root); err != nil {
		return nil, &ProtocolError{Msg: "decode response document: " + err.Error()}
	}
	return &root, nil
}

// LocalTag returns the element name without its namespace qualifier.
func (e *Element) LocalTag() string { return e.XMLName.Local }

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// IntAttr returns the named attribute parsed as an integer. A missing or
// non-numeric attribute reports false.
func (e *Element) IntAttr(name string) (int, bool) {
	raw, ok := e.Attr(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

// Find returns the first direct child with the given local tag, or nil.
func (e *Element) Find(localTag string) *Element {
	for i := range e.Children {
		if e.Children[i].LocalTag() == localTag {
			return &e.Children[i]
		}
	}
	return nil
}

// StripNamespace reduces a Clark-notation tag such as {urn:ExtXml}ResC to
// its local part. A tag without the namespace marker passes through
// unchanged.
func StripNamespace(tag string) string {
	marker := "{" + Namespace + "}"
	if !strings.Contains(tag, marker) {
		return tag
	}
	return strings.SplitN(tag, marker, 2)[1]
}
