package converter

import (
	"github.com/saarmobil/extxml-to-fptf/extxml"
	"github.com/saarmobil/extxml-to-fptf/fptf"
)

// Location element tags of the ExtXML wire format.
const (
	tagStation = "Station"
	tagAddress = "Address"
	tagPOI     = "POI"
	tagReqLoc  = "ReqLoc"
)

// Raw coordinates are fixed-point integers with different scales per axis:
// y carries hundredths of a degree latitude, x tenths of a degree
// longitude. The asymmetry is a fact of the wire format.
const (
	latitudeScale  = 100
	longitudeScale = 10
)

// Coordinate is a decoded WGS84 pair in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// ConvertLocation maps one raw location element into its normalized
// record: Station elements become fptf.Station, address/POI/request
// echo elements become plain fptf.Location. Any other tag is an
// UnknownElementError.
func ConvertLocation(el *extxml.Element) (fptf.Place, error) {
	switch extxml.StripNamespace(el.LocalTag()) {
	case tagStation:
		station, err := ConvertStation(el)
		if err != nil {
			return nil, err
		}
		return station, nil
	case tagAddress, tagPOI, tagReqLoc:
		loc, err := convertGenericLocation(el)
		if err != nil {
			return nil, err
		}
		return loc, nil
	default:
		return nil, &extxml.UnknownElementError{Tag: el.LocalTag()}
	}
}

// ConvertStation converts a Station element. The external station number
// and display name are required; the nested location repeats the name and
// carries the decoded coordinates when the element has any.
func ConvertStation(el *extxml.Element) (fptf.Station, error) {
	id, ok := el.Attr("externalStationNr")
	if !ok {
		return fptf.Station{}, &extxml.MissingFieldError{Field: "externalStationNr"}
	}
	name, ok := el.Attr("name")
	if !ok {
		return fptf.Station{}, &extxml.MissingFieldError{Field: "name"}
	}

	loc := fptf.Location{Type: fptf.TypeLocation, Name: name}
	if coord := DecodeCoordinate(el); coord != nil {
		loc.Latitude = &coord.Latitude
		loc.Longitude = &coord.Longitude
	}
	return fptf.Station{Type: fptf.TypeStation, ID: id, Name: name, Location: &loc}, nil
}

// convertGenericLocation converts address, POI and request echo elements.
// The display name comes from the name attribute, falling back to the
// output attribute; an element with neither has no usable identity.
func convertGenericLocation(el *extxml.Element) (fptf.Location, error) {
	name, ok := el.Attr("name")
	if !ok {
		name, ok = el.Attr("output")
	}
	if !ok {
		return fptf.Location{}, &extxml.MissingFieldError{Field: "name"}
	}

	loc := fptf.Location{Type: fptf.TypeLocation, Name: name}
	if coord := DecodeCoordinate(el); coord != nil {
		loc.Latitude = &coord.Latitude
		loc.Longitude = &coord.Longitude
	}
	return loc, nil
}

// DecodeCoordinate reads the raw x/y attributes of an element. It returns
// nil when either axis is missing: a location without coordinates is a
// legitimate "position unknown" case, not an error.
func DecodeCoordinate(el *extxml.Element) *Coordinate {
	x, okX := el.IntAttr("x")
	y, okY := el.IntAttr("y")
	if !okX || !okY {
		return nil
	}
	return &Coordinate{
		Latitude:  float64(y) / latitudeScale,
		Longitude: float64(x) / longitudeScale,
	}
}
