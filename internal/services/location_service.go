package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dinesh3456/essential-workers-booking/internal/models/db_models"
	"github.com/dinesh3456/essential-workers-booking/internal/models/response_models"
	"github.com/dinesh3456/essential-workers-booking/pkg/memcache"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

const googleMapsBaseURL = "https://maps.googleapis.com"

type LocationServiceInterface interface {
	Geocode(ctx context.Context, address string) (*response_models.GeocodeResponse, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*response_models.GeocodeResponse, error)
	Distance(p1, p2 db_models.Coordinates) float64
}

type LocationService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *memcache.GeoCache[*response_models.GeocodeResponse]
}

func NewLocationService(apiKey string) *LocationService {
	return &LocationService{
		apiKey:     apiKey,
		baseURL:    googleMapsBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      memcache.NewGeoCache[*response_models.GeocodeResponse](time.Hour),
	}
}

// WithBaseURL overrides the API host, used by tests.
func (s *LocationService) WithBaseURL(base string) *LocationService {
	s.baseURL = strings.TrimRight(base, "/")
	return s
}

type googleGeocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

func (s *LocationService) Geocode(ctx context.Context, address string) (*response_models.GeocodeResponse, error) {
	key := "addr:" + strings.ToLower(strings.TrimSpace(address))
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", s.apiKey)

	result, err := s.lookup(ctx, params)
	if err != nil {
		return nil, utils.BadRequestWrap("Geocoding failed", err)
	}
	s.cache.Set(key, result)
	return result, nil
}

func (s *LocationService) ReverseGeocode(ctx context.Context, lat, lng float64) (*response_models.GeocodeResponse, error) {
	key := fmt.Sprintf("latlng:%.6f,%.6f", lat, lng)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("key", s.apiKey)

	result, err := s.lookup(ctx, params)
	if err != nil {
		return nil, utils.BadRequestWrap("Reverse geocoding failed", err)
	}
	s.cache.Set(key, result)
	return result, nil
}

func (s *LocationService) lookup(ctx context.Context, params url.Values) (*response_models.GeocodeResponse, error) {
	endpoint := fmt.Sprintf("%s/maps/api/geocode/json?%s", s.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	if len(decoded.Results) == 0 {
		return nil, fmt.Errorf("no result for location (status %s)", decoded.Status)
	}

	first := decoded.Results[0]
	out := &response_models.GeocodeResponse{
		Address: first.FormattedAddress,
		Coordinates: db_models.Coordinates{
			Lat: first.Geometry.Location.Lat,
			Lng: first.Geometry.Location.Lng,
		},
	}
	for _, component := range first.AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "locality":
				out.City = component.LongName
			case "administrative_area_level_1":
				out.State = component.ShortName
			case "postal_code":
				out.ZipCode = component.LongName
			}
		}
	}
	return out, nil
}

const earthRadiusKm = 6371

// Distance is the great-circle (haversine) distance in kilometers.
func (s *LocationService) Distance(p1, p2 db_models.Coordinates) float64 {
	dLat := degreesToRadians(p2.Lat - p1.Lat)
	dLng := degreesToRadians(p2.Lng - p1.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(p1.Lat))*
			math.Cos(degreesToRadians(p2.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
