package converter

import (
	"errors"
	"strings"
	"testing"

	"github.com/saarmobil/extxml-to-fptf/extxml"
	"github.com/saarmobil/extxml-to-fptf/fptf"
)

// mustParse parses a wire XML snippet into an element tree.
func mustParse(t *testing.T, raw string) *extxml.Element {
	t.Helper()
	doc, err := extxml.ParseDocument(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("fixture does not parse: %v", err)
	}
	return doc
}

func TestConvertStation(t *testing.T) {
	el := mustParse(t, `<Station name="Saarbrücken Hbf" externalStationNr="8000323" x="70657" y="4924"/>`)

	station, err := ConvertStation(el)
	if err != nil {
		t.Fatalf("ConvertStation failed: %v", err)
	}
	if station.Type != fptf.TypeStation || station.ID != "8000323" || station.Name != "Saarbrücken Hbf" {
		t.Errorf("station = %+v", station)
	}
	if station.Location == nil {
		t.Fatal("station should embed a location")
	}
	if station.Location.Name != station.Name {
		t.Errorf("location name = %q, want %q", station.Location.Name, station.Name)
	}
	if station.Location.Latitude == nil || station.Location.Longitude == nil {
		t.Fatal("coordinates should be present when x and y are")
	}
	if *station.Location.Latitude != 49.24 || *station.Location.Longitude != 7065.7 {
		t.Errorf("decoded coordinate = (%v, %v)", *station.Location.Latitude, *station.Location.Longitude)
	}
}

func TestConvertStation_MissingCoordinates(t *testing.T) {
	el := mustParse(t, `<Station name="Hbf" externalStationNr="1" x="70657"/>`)

	station, err := ConvertStation(el)
	if err != nil {
		t.Fatalf("ConvertStation failed: %v", err)
	}
	if station.Location.Latitude != nil || station.Location.Longitude != nil {
		t.Error("partial coordinate data should yield no coordinates at all")
	}
}

func TestConvertStation_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no id", raw: `<Station name="Hbf"/>`},
		{name: "no name", raw: `<Station externalStationNr="1"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertStation(mustParse(t, tt.raw))
			var missing *extxml.MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingFieldError, got %v", err)
			}
		})
	}
}

func TestDecodeCoordinate_ScaleAsymmetry(t *testing.T) {
	// The axes use different fixed-point scales; equal raw values must
	// not decode to equal degrees.
	el := mustParse(t, `<Address name="x" x="100" y="100"/>`)

	coord := DecodeCoordinate(el)
	if coord == nil {
		t.Fatal("DecodeCoordinate returned nil")
	}
	if coord.Longitude != 10.0 {
		t.Errorf("longitude = %v, want 10.0 (x/10)", coord.Longitude)
	}
	if coord.Latitude != 1.0 {
		t.Errorf("latitude = %v, want 1.0 (y/100)", coord.Latitude)
	}
}

func TestConvertLocation_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantType string
	}{
		{name: "station", raw: `<Station name="Hbf" externalStationNr="1"/>`, wantType: fptf.TypeStation},
		{name: "address", raw: `<Address name="Mainzer Straße 1"/>`, wantType: fptf.TypeLocation},
		{name: "poi", raw: `<POI name="Schloss"/>`, wantType: fptf.TypeLocation},
		{name: "request echo", raw: `<ReqLoc match="Hbf" output="Hbf (echo)"/>`, wantType: fptf.TypeLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			place, err := ConvertLocation(mustParse(t, tt.raw))
			if err != nil {
				t.Fatalf("ConvertLocation failed: %v", err)
			}
			switch p := place.(type) {
			case fptf.Station:
				if tt.wantType != fptf.TypeStation {
					t.Fatalf("got station, want %s", tt.wantType)
				}
			case fptf.Location:
				if tt.wantType != fptf.TypeLocation {
					t.Fatalf("got location, want %s", tt.wantType)
				}
				if p.Name == "" {
					t.Error("location has no name")
				}
			default:
				t.Fatalf("unexpected place type %T", place)
			}
		})
	}
}

func TestConvertLocation_UnknownTag(t *testing.T) {
	_, err := ConvertLocation(mustParse(t, `<Journey/>`))
	var unknown *extxml.UnknownElementError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownElementError, got %v", err)
	}
}

func TestConvertGenericLocation_NameFallback(t *testing.T) {
	place, err := ConvertLocation(mustParse(t, `<Address output="Display output"/>`))
	if err != nil {
		t.Fatalf("ConvertLocation failed: %v", err)
	}
	loc, ok := place.(fptf.Location)
	if !ok {
		t.Fatalf("unexpected place type %T", place)
	}
	if loc.Name != "Display output" {
		t.Errorf("name = %q, want fallback to output attribute", loc.Name)
	}

	_, err = ConvertLocation(mustParse(t, `<Address x="10" y="10"/>`))
	var missing *extxml.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError when both name attributes are absent, got %v", err)
	}
}
