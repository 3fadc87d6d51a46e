package cafes

import "context"

// Coordinates is a lat/lng pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Cafe is one place returned by a provider search.
type Cafe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Distance     int      `json:"distance,omitempty"` // meters from search center
	OpeningHours string   `json:"openingHours,omitempty"`
	IsOpenNow    *bool    `json:"isOpenNow,omitempty"`
	MapLink      string   `json:"mapLink,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// SearchParams are the inputs to a cafe search. Radius is in meters.
type SearchParams struct {
	Lat    float64
	Lng    float64
	Radius int
	Query  string
	Limit  int
}

const (
	DefaultRadius = 2000
	DefaultLimit  = 10
)

// withDefaults fills unset radius and limit.
func (p SearchParams) withDefaults() SearchParams {
	if p.Radius <= 0 {
		p.Radius = DefaultRadius
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	return p
}

// SearchResult is the provider response for one search.
type SearchResult struct {
	Cafes      []Cafe      `json:"cafes"`
	Query      string      `json:"query"`
	Center     Coordinates `json:"center"`
	Radius     int         `json:"radius"`
	TotalFound int         `json:"totalFound"`
}

// emptyResult builds a zero-hit result for the given params.
func emptyResult(p SearchParams) SearchResult {
	return SearchResult{
		Cafes:  []Cafe{},
		Query:  p.Query,
		Center: Coordinates{Lat: p.Lat, Lng: p.Lng},
		Radius: p.Radius,
	}
}

// GeocodingResult converts a city name to coordinates.
type GeocodingResult struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DisplayName string  `json:"displayName"`
	City        string  `json:"city,omitempty"`
	Country     string  `json:"country,omitempty"`
}

// Provider is a pluggable cafe data source.
type Provider interface {
	Name() string
	SearchCafes(ctx context.Context, params SearchParams) (SearchResult, error)
	GeocodeCity(ctx context.Context, city string) (*GeocodingResult, error)
}
