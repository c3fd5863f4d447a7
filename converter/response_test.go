package converter

import (
	"errors"
	"testing"

	"github.com/saarmobil/extxml-to-fptf/extxml"
	"github.com/saarmobil/extxml-to-fptf/fptf"
)

func TestParseResponse(t *testing.T) {
	doc := mustParse(t, `<ResC xmlns="urn:ExtXml" ver="1.2">
		<LocValRes id="1">
			<Station name="Saarbrücken Hbf" externalStationNr="8000323" x="70657" y="4924"/>
		</LocValRes>
		<LocValRes id="0">
			<Address name="Mainzer Straße 1" x="70701" y="4923"/>
		</LocValRes>
	</ResC>`)

	env, err := ParseResponse(doc)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}
	if env.Kind != TagLocationSearch {
		t.Errorf("envelope kind = %q, want %s", env.Kind, TagLocationSearch)
	}
	if len(env.Items) != 2 {
		t.Fatalf("envelope has %d items, want 2", len(env.Items))
	}
	if env.Items[0].Locations.RequestID != 1 || env.Items[1].Locations.RequestID != 0 {
		t.Errorf("echoed ids = %d, %d", env.Items[0].Locations.RequestID, env.Items[1].Locations.RequestID)
	}
}

func TestParseResponse_EmptyEnvelope(t *testing.T) {
	env, err := ParseResponse(mustParse(t, `<ResC xmlns="urn:ExtXml"/>`))
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}
	if env.Kind != "" || len(env.Items) != 0 {
		t.Errorf("empty envelope = %+v, want no kind and no items", env)
	}
}

func TestParseResponse_WrongRoot(t *testing.T) {
	_, err := ParseResponse(mustParse(t, `<ReqC xmlns="urn:ExtXml"/>`))
	var perr *extxml.ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
}

func TestParseResponse_UnknownChildIsFatal(t *testing.T) {
	// One decodable item plus one unregistered tag: the whole call must
	// fail, never return a partial envelope.
	doc := mustParse(t, `<ResC xmlns="urn:ExtXml">
		<LocValRes id="0"><Station name="Hbf" externalStationNr="1"/></LocValRes>
		<ConRes id="1"/>
	</ResC>`)

	env, err := ParseResponse(doc)
	var unknown *extxml.UnknownElementError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownElementError, got %v", err)
	}
	if unknown.Tag != "ConRes" {
		t.Errorf("unknown tag = %q, want ConRes", unknown.Tag)
	}
	if env != nil {
		t.Error("no partial envelope may be returned")
	}
}

func TestParseResponse_SkipsNamelessLocations(t *testing.T) {
	doc := mustParse(t, `<ResC xmlns="urn:ExtXml">
		<LocValRes id="0">
			<Address x="10" y="10"/>
			<Address name="Valid one"/>
		</LocValRes>
	</ResC>`)

	env, err := ParseResponse(doc)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}
	places := env.Items[0].Locations.Places
	if len(places) != 1 {
		t.Fatalf("got %d places, want 1 (nameless element dropped)", len(places))
	}
	if loc, ok := places[0].(fptf.Location); !ok || loc.Name != "Valid one" {
		t.Errorf("surviving place = %+v", places[0])
	}
}

func TestParseResponse_UnknownLocationKindAbortsBatch(t *testing.T) {
	doc := mustParse(t, `<ResC xmlns="urn:ExtXml">
		<LocValRes id="0">
			<Address name="Valid one"/>
			<Journey/>
		</LocValRes>
	</ResC>`)

	_, err := ParseResponse(doc)
	var unknown *extxml.UnknownElementError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownElementError, got %v", err)
	}
}

func TestCollateLocationResults(t *testing.T) {
	queries := []extxml.SearchQuery{
		{Text: "a", Kind: extxml.KindStation},
		{Text: "b", Kind: extxml.KindStation},
	}
	env := &ResponseEnvelope{
		Kind: TagLocationSearch,
		Items: []ResponseItem{
			{Kind: TagLocationSearch, Locations: &LocationResult{RequestID: 1, Places: []fptf.Place{fptf.Location{Type: "location", Name: "second"}}}},
			{Kind: TagLocationSearch, Locations: &LocationResult{RequestID: 0, Places: []fptf.Place{fptf.Location{Type: "location", Name: "first"}}}},
		},
	}

	results, err := CollateLocationResults(queries, env)
	if err != nil {
		t.Fatalf("CollateLocationResults failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d result lists, want 2", len(results))
	}
	if results[0][0].(fptf.Location).Name != "first" || results[1][0].(fptf.Location).Name != "second" {
		t.Error("results are not in request order")
	}
}

func TestCollateLocationResults_Errors(t *testing.T) {
	queries := []extxml.SearchQuery{{Text: "a", Kind: extxml.KindStation}}

	tests := []struct {
		name string
		env  *ResponseEnvelope
	}{
		{
			name: "envelope of the wrong kind",
			env:  &ResponseEnvelope{Kind: "ConRes"},
		},
		{
			name: "empty envelope",
			env:  &ResponseEnvelope{},
		},
		{
			name: "mixed item kinds",
			env: &ResponseEnvelope{
				Kind: TagLocationSearch,
				Items: []ResponseItem{
					{Kind: TagLocationSearch, Locations: &LocationResult{RequestID: 0}},
					{Kind: "ConRes"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CollateLocationResults(queries, tt.env)
			var inval *extxml.InvalidArgumentError
			if !errors.As(err, &inval) {
				t.Fatalf("expected InvalidArgumentError, got %v", err)
			}
		})
	}
}

func TestCollateLocationResults_IDOutOfRange(t *testing.T) {
	queries := []extxml.SearchQuery{{Text: "a", Kind: extxml.KindStation}}
	env := &ResponseEnvelope{
		Kind: TagLocationSearch,
		Items: []ResponseItem{
			{Kind: TagLocationSearch, Locations: &LocationResult{RequestID: 3}},
		},
	}

	_, err := CollateLocationResults(queries, env)
	var perr *extxml.ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
}
