package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"smartcal/models"
)

const nearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

// defaultRadiusMeters bounds the venue search around the meeting point.
const defaultRadiusMeters = 2000

// VenueFinder supplies place suggestions near a coordinate.
type VenueFinder interface {
	Nearby(ctx context.Context, lat, lng float64, keyword string) ([]models.Venue, error)
}

// GooglePlacesClient calls the Places Nearby Search API.
type GooglePlacesClient struct {
	apiKey string
	client *http.Client
}

func NewGooglePlacesClient(apiKey string) *GooglePlacesClient {
	return &GooglePlacesClient{
		apiKey: apiKey,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID  string  `json:"place_id"`
		Name     string  `json:"name"`
		Vicinity string  `json:"vicinity"`
		Rating   float64 `json:"rating"`
	} `json:"results"`
}

// Nearby returns up to five venues around the coordinate, optionally
// filtered by keyword.
func (c *GooglePlacesClient) Nearby(ctx context.Context, lat, lng float64, keyword string) ([]models.Venue, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("places client has no API key")
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", defaultRadiusMeters))
	params.Set("key", c.apiKey)
	if keyword != "" {
		params.Set("keyword", keyword)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, nearbySearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places request returned %s", resp.Status)
	}

	var body nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding places response: %w", err)
	}
	if body.Status != "OK" && body.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API status %s", body.Status)
	}

	venues := make([]models.Venue, 0, len(body.Results))
	for _, r := range body.Results {
		venues = append(venues, models.Venue{
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Address: r.Vicinity,
			Rating:  r.Rating,
		})
		if len(venues) == 5 {
			break
		}
	}
	return venues, nil
}
