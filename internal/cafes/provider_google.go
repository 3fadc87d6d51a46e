package cafes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	placesBaseURL  = "https://maps.googleapis.com/maps/api/place"
	geocodeBaseURL = "https://maps.googleapis.com/maps/api/geocode"
)

// GooglePlacesProvider searches cafes via the Google Places API. Requires an
// API key with the Places and Geocoding APIs enabled.
type GooglePlacesProvider struct {
	client     *http.Client
	placesURL  string
	geocodeURL string
	apiKey     string
}

func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		client:     &http.Client{Timeout: 10 * time.Second},
		placesURL:  placesBaseURL,
		geocodeURL: geocodeBaseURL,
		apiKey:     apiKey,
	}
}

func (p *GooglePlacesProvider) Name() string { return "Google Places" }

func (p *GooglePlacesProvider) GeocodeCity(ctx context.Context, city string) (*GeocodingResult, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("google places api key not configured")
	}

	q := url.Values{"address": {city}, "key": {p.apiKey}}
	var resp struct {
		Status  string `json:"status"`
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
			Geometry         struct {
				Location Coordinates `json:"location"`
			} `json:"geometry"`
			AddressComponents []struct {
				LongName string   `json:"long_name"`
				Types    []string `json:"types"`
			} `json:"address_components"`
		} `json:"results"`
	}
	if err := p.getJSON(ctx, p.geocodeURL+"/json?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("google geocode: %w", err)
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return nil, nil
	}

	first := resp.Results[0]
	out := &GeocodingResult{
		Lat:         first.Geometry.Location.Lat,
		Lng:         first.Geometry.Location.Lng,
		DisplayName: first.FormattedAddress,
	}
	for _, comp := range first.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality":
				out.City = comp.LongName
			case "country":
				out.Country = comp.LongName
			}
		}
	}
	return out, nil
}

func (p *GooglePlacesProvider) SearchCafes(ctx context.Context, params SearchParams) (SearchResult, error) {
	params = params.withDefaults()
	if p.apiKey == "" {
		return emptyResult(params), fmt.Errorf("google places api key not configured")
	}

	q := url.Values{
		"location": {fmt.Sprintf("%f,%f", params.Lat, params.Lng)},
		"radius":   {strconv.Itoa(params.Radius)},
		"type":     {"cafe"},
		"keyword":  {"coffee"},
		"key":      {p.apiKey},
	}
	var resp struct {
		Status  string `json:"status"`
		Results []struct {
			PlaceID  string `json:"place_id"`
			Name     string `json:"name"`
			Vicinity string `json:"vicinity"`
			Geometry struct {
				Location Coordinates `json:"location"`
			} `json:"geometry"`
			OpeningHours *struct {
				OpenNow *bool `json:"open_now"`
			} `json:"opening_hours"`
			Types []string `json:"types"`
		} `json:"results"`
	}
	if err := p.getJSON(ctx, p.placesURL+"/nearbysearch/json?"+q.Encode(), &resp); err != nil {
		return emptyResult(params), fmt.Errorf("google places search: %w", err)
	}
	if resp.Status != "OK" {
		return emptyResult(params), fmt.Errorf("google places search status %s", resp.Status)
	}

	cafes := make([]Cafe, 0, params.Limit)
	for _, place := range resp.Results {
		if len(cafes) >= params.Limit {
			break
		}
		address := place.Vicinity
		if address == "" {
			address = "Address not available"
		}
		cafe := Cafe{
			ID:       "google-" + place.PlaceID,
			Name:     place.Name,
			Address:  address,
			Lat:      place.Geometry.Location.Lat,
			Lng:      place.Geometry.Location.Lng,
			Distance: haversineMeters(params.Lat, params.Lng, place.Geometry.Location.Lat, place.Geometry.Location.Lng),
			MapLink:  "https://www.google.com/maps/place/?q=place_id:" + place.PlaceID,
		}
		if place.OpeningHours != nil {
			cafe.IsOpenNow = place.OpeningHours.OpenNow
		}
		for _, t := range place.Types {
			if t == "cafe" {
				cafe.Tags = []string{"cafe"}
				break
			}
		}
		cafes = append(cafes, cafe)
	}

	return SearchResult{
		Cafes:      cafes,
		Query:      params.Query,
		Center:     Coordinates{Lat: params.Lat, Lng: params.Lng},
		Radius:     params.Radius,
		TotalFound: len(resp.Results),
	}, nil
}

func (p *GooglePlacesProvider) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.Unmarshal(data, out)
}
