package extxml

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Fixed ReqC attributes expected by the server.
const (
	protocolVersion = "1.2"
	protocolProduct = "ivi"
	protocolLang    = "DE"
)

// LocationKind selects what a location search matches against.
type LocationKind string

// Wire values of the ReqLoc type attribute.
const (
	KindStation LocationKind = "ST"
	KindAddress LocationKind = "ADR"
	KindPOI     LocationKind = "POI"
	KindAny     LocationKind = "ALLTYPE"
)

func (k LocationKind) valid() bool {
	switch k {
	case KindStation, KindAddress, KindPOI, KindAny:
		return true
	}
	return false
}

// SearchQuery is a single location lookup: free text plus the kind of
// place it should match.
type SearchQuery struct {
	Text string
	Kind LocationKind
}

type reqC struct {
	XMLName  xml.Name `xml:"ReqC"`
	Ver      string   `xml:"ver,attr"`
	Prod     string   `xml:"prod,attr"`
	Lang     string   `xml:"lang,attr"`
	AccessID string   `xml:"accessId,attr"`

	LocValReqs []locValReq
}

type locValReq struct {
	XMLName xml.Name `xml:"LocValReq"`
	ID      string   `xml:"id,attr"`
	ReqLoc  reqLoc
}

type reqLoc struct {
	XMLName xml.Name `xml:"ReqLoc"`
	Match   string   `xml:"match,attr"`
	Type    string   `xml:"type,attr"`
}

// BuildLocationSearch assembles a ReqC document with one LocValReq per
// query and returns it encoded as iso8859-1 XML bytes ready for the
// transport. Sub-request ids are assigned by position so that responses,
// which the server may return in any order, can be re-sorted afterwards.
func BuildLocationSearch(queries []SearchQuery, accessToken string) ([]byte, error) {
	doc := reqC{
		Ver:      protocolVersion,
		Prod:     protocolProduct,
		Lang:     protocolLang,
		AccessID: accessToken,
	}
	for i, q := range queries {
		if !q.Kind.valid() {
			return nil, &InvalidArgumentError{Msg: fmt.Sprintf("unknown location kind %q", string(q.Kind))}
		}
		doc.LocValReqs = append(doc.LocValReqs, locValReq{
			ID:     strconv.Itoa(i),
			ReqLoc: reqLoc{Match: q.Text, Type: string(q.Kind)},
		})
	}
	return encodeRequest(doc)
}

// encodeRequest marshals a request document and transcodes it to the
// iso8859-1 charset the server expects on both request and response.
func encodeRequest(doc any) ([]byte, error) {
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal request document: %w", err)
	}
	raw := append([]byte(`<?xml version="1.0" encoding="iso8859-1"?>`), body...)
	encoded, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("encode request to iso8859-1: %w", err)
	}
	return encoded, nil
}

// RouteFlags are the search-window parameters of a journey request:
// how many connections to return before and after the requested time, and
// optional limits on changes and price relevance. Absent optional fields
// stay nil.
type RouteFlags struct {
	NBefore *int
	NAfter  *int
	Changes *int
	Price   *int
}

// RFlags is the wire form of RouteFlags, embeddable in a ConReq document.
type RFlags struct {
	XMLName xml.Name `xml:"RFlags"`
	B       int      `xml:"b,attr"`
	F       int      `xml:"f,attr"`
	Chg     string   `xml:"chg,attr,omitempty"`
	Price   string   `xml:"price,attr,omitempty"`
	SMode   string   `xml:"sMode,attr"`
}

// BuildRouteFlags validates journey search-window parameters and produces
// their wire element. The server accepts at most 1 connection before and
// 5 after the requested time, and at most 6 changes.
func BuildRouteFlags(flags RouteFlags) (*RFlags, error) {
	if flags.NBefore == nil {
		return nil, &InvalidArgumentError{Msg: "nbefore is required"}
	}
	if *flags.NBefore > 1 {
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("nbefore %d exceeds maximum 1", *flags.NBefore)}
	}
	if flags.NAfter == nil {
		return nil, &InvalidArgumentError{Msg: "nafter is required"}
	}
	if *flags.NAfter > 5 {
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("nafter %d exceeds maximum 5", *flags.NAfter)}
	}
	out := &RFlags{B: *flags.NBefore, F: *flags.NAfter, SMode: "N"}
	if flags.Changes != nil {
		if *flags.Changes > 6 {
			return nil, &InvalidArgumentError{Msg: fmt.Sprintf("changes %d exceeds maximum 6", *flags.Changes)}
		}
		out.Chg = strconv.Itoa(*flags.Changes)
	}
	if flags.Price != nil {
		out.Price = strconv.Itoa(*flags.Price)
	}
	return out, nil
}

// TimeSpec names the point in time a journey search anchors on and whether
// it is interpreted as a departure or an arrival.
type TimeSpec struct {
	Date string
	Time string
	Type string // "departure" (default when empty) or "arrival"
}

// ReqT is the wire form of TimeSpec. The a attribute is "1" for arrival
// searches and "0" for departure searches.
type ReqT struct {
	XMLName xml.Name `xml:"ReqT"`
	A       string   `xml:"a,attr"`
	Date    string   `xml:"date,attr"`
	Time    string   `xml:"time,attr"`
}

// BuildTimeSpec validates a journey time anchor and produces its wire
// element.
func BuildTimeSpec(spec TimeSpec) (*ReqT, error) {
	if spec.Date == "" {
		return nil, &InvalidArgumentError{Msg: "date is required"}
	}
	if spec.Time == "" {
		return nil, &InvalidArgumentError{Msg: "time is required"}
	}
	a := "0"
	switch spec.Type {
	case "", "departure":
	case "arrival":
		a = "1"
	default:
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("unknown time spec type %q", spec.Type)}
	}
	return &ReqT{A: a, Date: spec.Date, Time: spec.Time}, nil
}
