package cafes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	nominatimBaseURL = "https://nominatim.openstreetmap.org"
	overpassBaseURL  = "https://overpass-api.de/api/interpreter"

	// Nominatim's usage policy requires an identifying User-Agent.
	osmUserAgent = "CoffeeSuggester/1.0 (https://github.com/coffee-suggester)"

	osmRetries    = 2
	osmRetryPause = time.Second
)

// OSMProvider searches cafes via the free OpenStreetMap stack: Nominatim for
// geocoding and Overpass for the cafe search itself. No API key required.
type OSMProvider struct {
	client       *http.Client
	nominatimURL string
	overpassURL  string
	retryPause   time.Duration
}

func NewOSMProvider() *OSMProvider {
	return &OSMProvider{
		client:       &http.Client{Timeout: 15 * time.Second},
		nominatimURL: nominatimBaseURL,
		overpassURL:  overpassBaseURL,
		retryPause:   osmRetryPause,
	}
}

func (p *OSMProvider) Name() string { return "OpenStreetMap" }

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

// GeocodeCity resolves a city name to coordinates. Returns nil when the
// place is unknown.
func (p *OSMProvider) GeocodeCity(ctx context.Context, city string) (*GeocodingResult, error) {
	q := url.Values{
		"q":              {city},
		"format":         {"json"},
		"limit":          {"1"},
		"addressdetails": {"1"},
	}
	body, err := p.doWithRetry(ctx, http.MethodGet, p.nominatimURL+"/search?"+q.Encode(), "", "")
	if err != nil {
		return nil, fmt.Errorf("nominatim geocode: %w", err)
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decode nominatim response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	first := results[0]
	var lat, lng float64
	if _, err := fmt.Sscanf(first.Lat, "%f", &lat); err != nil {
		return nil, fmt.Errorf("parse nominatim lat %q: %w", first.Lat, err)
	}
	if _, err := fmt.Sscanf(first.Lon, "%f", &lng); err != nil {
		return nil, fmt.Errorf("parse nominatim lon %q: %w", first.Lon, err)
	}

	cityName := first.Address.City
	if cityName == "" {
		cityName = first.Address.Town
	}
	if cityName == "" {
		cityName = first.Address.Village
	}
	return &GeocodingResult{
		Lat:         lat,
		Lng:         lng,
		DisplayName: first.DisplayName,
		City:        cityName,
		Country:     first.Address.Country,
	}, nil
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string  `json:"type"`
	ID     int64   `json:"id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

// SearchCafes queries Overpass for cafes around the given point, sorted by
// distance from the center.
func (p *OSMProvider) SearchCafes(ctx context.Context, params SearchParams) (SearchResult, error) {
	params = params.withDefaults()

	query := buildOverpassQuery(params.Lat, params.Lng, params.Radius)
	form := "data=" + url.QueryEscape(query)
	body, err := p.doWithRetry(ctx, http.MethodPost, p.overpassURL, form, "application/x-www-form-urlencoded")
	if err != nil {
		return emptyResult(params), fmt.Errorf("overpass search: %w", err)
	}

	var resp overpassResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return emptyResult(params), fmt.Errorf("decode overpass response: %w", err)
	}

	cafes := make([]Cafe, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		name := el.Tags["name"]
		if name == "" {
			continue
		}
		lat, lng := el.Lat, el.Lon
		if lat == 0 && lng == 0 && el.Center != nil {
			lat, lng = el.Center.Lat, el.Center.Lon
		}
		cafes = append(cafes, Cafe{
			ID:           fmt.Sprintf("osm-%s-%d", el.Type, el.ID),
			Name:         name,
			Address:      buildAddress(el.Tags),
			Lat:          lat,
			Lng:          lng,
			Distance:     haversineMeters(params.Lat, params.Lng, lat, lng),
			OpeningHours: parseOpeningHours(el.Tags["opening_hours"]),
			MapLink:      fmt.Sprintf("https://www.openstreetmap.org/%s/%d", el.Type, el.ID),
			Tags:         buildCafeTags(el.Tags),
		})
	}

	sort.SliceStable(cafes, func(i, j int) bool { return cafes[i].Distance < cafes[j].Distance })
	if len(cafes) > params.Limit {
		cafes = cafes[:params.Limit]
	}

	return SearchResult{
		Cafes:      cafes,
		Query:      params.Query,
		Center:     Coordinates{Lat: params.Lat, Lng: params.Lng},
		Radius:     params.Radius,
		TotalFound: len(resp.Elements),
	}, nil
}

// doWithRetry performs the request, retrying on transport errors and 5xx
// responses with a pause between attempts.
func (p *OSMProvider) doWithRetry(ctx context.Context, method, rawURL, body, contentType string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= osmRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(p.retryPause):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, rawURL, strings.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", osmUserAgent)
		req.Header.Set("Accept", "application/json")
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := p.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				continue
			}
			return nil, lastErr
		}
		return data, nil
	}
	return nil, lastErr
}

// buildOverpassQuery matches cafes, coffee-cuisine spots, and coffee shops
// around the point.
func buildOverpassQuery(lat, lng float64, radius int) string {
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node["amenity"="cafe"](around:%d,%f,%f);
  way["amenity"="cafe"](around:%d,%f,%f);
  node["cuisine"~"coffee"](around:%d,%f,%f);
  node["shop"="coffee"](around:%d,%f,%f);
);
out center body;`,
		radius, lat, lng,
		radius, lat, lng,
		radius, lat, lng,
		radius, lat, lng)
}

func buildAddress(tags map[string]string) string {
	var parts []string
	for _, key := range []string{"addr:housenumber", "addr:street", "addr:city"} {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "Address not available"
	}
	return strings.Join(parts, " ")
}

func buildCafeTags(tags map[string]string) []string {
	var out []string
	if strings.Contains(tags["cuisine"], "coffee") {
		out = append(out, "specialty")
	}
	if tags["internet_access"] == "wlan" {
		out = append(out, "wifi")
	}
	if tags["outdoor_seating"] == "yes" {
		out = append(out, "outdoor")
	}
	return out
}

// parseOpeningHours simplifies the OSM opening_hours tag. The format can get
// arbitrarily complex; long values collapse to a generic note.
func parseOpeningHours(hours string) string {
	if len(hours) > 50 {
		return "Hours vary"
	}
	return hours
}

// haversineMeters is the great-circle distance between two points, rounded
// to whole meters.
func haversineMeters(lat1, lng1, lat2, lng2 float64) int {
	const earthRadius = 6371e3
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return int(math.Round(earthRadius * c))
}
