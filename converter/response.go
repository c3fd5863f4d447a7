package converter

import (
	"encoding/xml"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/saarmobil/extxml-to-fptf/extxml"
	"github.com/saarmobil/extxml-to-fptf/fptf"
)

// Response tags this converter understands.
const (
	TagResponseRoot   = "ResC"
	TagLocationSearch = "LocValRes"
)

// ResponseEnvelope is a demultiplexed ResC document. Kind is empty iff
// Items is empty; otherwise it equals the kind of the first item. The
// server never mixes kinds within one envelope.
type ResponseEnvelope struct {
	Kind  string
	Items []ResponseItem
}

// ResponseItem is one decoded child of a response envelope, tagged by
// kind. Exactly the field matching Kind is set.
type ResponseItem struct {
	Kind      string
	Locations *LocationResult
}

// LocationResult carries the places one LocValRes sub-response yielded,
// together with the echoed request id used to restore request order.
type LocationResult struct {
	RequestID int
	Places    []fptf.Place
}

type responseConverter func(*extxml.Element) (ResponseItem, error)

// Static registry of response tags. Only the location search result is
// registered; any other top-level tag is fatal for the whole call.
var responseConverters = map[string]responseConverter{
	TagLocationSearch: convertLocValRes,
}

// ParseResponse validates a parsed document as a ResC envelope and routes
// each child to its registered converter. A child with no registered
// converter is dumped for diagnosis and aborts the call; no partial
// envelope is ever returned.
func ParseResponse(doc *extxml.Element) (*ResponseEnvelope, error) {
	tag := extxml.StripNamespace(doc.LocalTag())
	if tag != TagResponseRoot {
		return nil, &extxml.ProtocolError{Msg: fmt.Sprintf("unexpected response root %q, want %s", tag, TagResponseRoot)}
	}

	env := &ResponseEnvelope{}
	for i := range doc.Children {
		child := &doc.Children[i]
		childTag := extxml.StripNamespace(child.LocalTag())
		convert, ok := responseConverters[childTag]
		if !ok {
			dumpUnknownElement(child)
			return nil, &extxml.UnknownElementError{Tag: childTag}
		}
		item, err := convert(child)
		if err != nil {
			return nil, err
		}
		env.Items = append(env.Items, item)
	}
	if len(env.Items) > 0 {
		env.Kind = env.Items[0].Kind
	}
	return env, nil
}

// CollateLocationResults restores request order over a location search
// envelope: sub-responses are grouped by their echoed request id and
// returned ascending by id, since transport order is not guaranteed to
// match request order.
func CollateLocationResults(queries []extxml.SearchQuery, env *ResponseEnvelope) ([][]fptf.Place, error) {
	if env.Kind != TagLocationSearch {
		return nil, &extxml.InvalidArgumentError{Msg: fmt.Sprintf("envelope kind %q is not a location search", env.Kind)}
	}

	byID := make(map[int][]fptf.Place, len(env.Items))
	ids := make([]int, 0, len(env.Items))
	for _, item := range env.Items {
		if item.Kind != TagLocationSearch || item.Locations == nil {
			return nil, &extxml.InvalidArgumentError{Msg: fmt.Sprintf("mixed response kind %q in location search envelope", item.Kind)}
		}
		id := item.Locations.RequestID
		if id < 0 || id >= len(queries) {
			return nil, &extxml.ProtocolError{Msg: fmt.Sprintf("echoed request id %d outside request range", id)}
		}
		byID[id] = item.Locations.Places
		ids = append(ids, id)
	}
	sort.Ints(ids)

	results := make([][]fptf.Place, 0, len(ids))
	for _, id := range ids {
		results = append(results, byID[id])
	}
	return results, nil
}

// convertLocValRes decodes one location search sub-response. Elements that
// fail their own validation because they carry no usable name are dropped;
// unknown element kinds abort the batch.
func convertLocValRes(el *extxml.Element) (ResponseItem, error) {
	id, ok := el.IntAttr("id")
	if !ok {
		return ResponseItem{}, &extxml.MissingFieldError{Field: "id"}
	}

	places := make([]fptf.Place, 0, len(el.Children))
	for i := range el.Children {
		place, err := ConvertLocation(&el.Children[i])
		if err != nil {
			var missing *extxml.MissingFieldError
			if errors.As(err, &missing) {
				continue
			}
			return ResponseItem{}, err
		}
		places = append(places, place)
	}
	return ResponseItem{
		Kind:      TagLocationSearch,
		Locations: &LocationResult{RequestID: id, Places: places},
	}, nil
}

// dumpUnknownElement logs the payload of an unrecognized response element
// so callers can inspect what the server actually sent.
func dumpUnknownElement(el *extxml.Element) {
	raw, err := xml.Marshal(el)
	if err != nil {
		log.Debug().Str("tag", el.LocalTag()).Msg("unrecognized response element (unmarshalable)")
		return
	}
	log.Debug().Str("tag", el.LocalTag()).Msgf("unrecognized response element: %s", raw)
}
