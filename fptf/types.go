package fptf

// Values of the type discriminator field.
const (
	TypeStation  = "station"
	TypeLocation = "location"
	TypeOperator = "operator"
)

// Place is the closed variant over the record kinds a location search can
// yield: Station or Location.
type Place interface {
	placeType() string
}

// Location is a point on the map, optionally named. Coordinates are nil
// when the source element carried none; an unknown position is a
// legitimate state, not an error.
type Location struct {
	Type      string   `json:"type"`
	Name      string   `json:"name,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (Location) placeType() string { return TypeLocation }

// Station is a stop or station with a stable external identifier and a
// nested Location carrying its name and position.
type Station struct {
	Type     string    `json:"type"`
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Location *Location `json:"location,omitempty"`
}

func (Station) placeType() string { return TypeStation }

// Operator is the company serving a journey section. It is derived from
// journey attributes on demand and never stored.
type Operator struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}
