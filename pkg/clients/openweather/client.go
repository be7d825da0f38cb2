package openweather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 10 * time.Second

// Lookup failures the caller may want to present differently.
var (
	ErrMissingAPIKey  = errors.New("weather api key not provided")
	ErrMissingZip     = errors.New("zip code not provided")
	ErrInvalidAPIKey  = errors.New("invalid weather api key")
	ErrZipNotFound    = errors.New("weather data not found for zip code")
	ErrIncompleteData = errors.New("incomplete weather data received")
)

// Client looks up current conditions for a US ZIP code.
type Client interface {
	CurrentByZip(ctx context.Context, zipCode string) (*Conditions, error)
}

// Conditions is the subset of the OpenWeatherMap response the dashboard uses.
type Conditions struct {
	Temp        float64
	FeelsLike   float64
	Humidity    int
	Description string
	Icon        string
	WindSpeed   float64
	CityName    string
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient builds an OpenWeatherMap client. baseURL should point at the
// data/2.5 API root.
func NewClient(baseURL, apiKey string) *APIClient {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(requestTimeout)

	return &APIClient{httpClient: restyClient, apiKey: apiKey}
}

// currentResponse mirrors the fields extracted from the API payload. Temp and
// Icon are pointers so a structurally valid but incomplete payload can be
// told apart from zero values.
type currentResponse struct {
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike float64  `json:"feels_like"`
		Humidity  int      `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

type apiError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// CurrentByZip fetches current conditions for a ZIP code. HTTP 401 and 404
// map to ErrInvalidAPIKey and ErrZipNotFound; other failures surface as
// generic errors. No retries are attempted.
func (c *APIClient) CurrentByZip(ctx context.Context, zipCode string) (*Conditions, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	zipCode = strings.TrimSpace(zipCode)
	if zipCode == "" {
		return nil, ErrMissingZip
	}

	result := new(currentResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"zip":   zipCode + ",us",
			"appid": c.apiKey,
			"units": "imperial",
		}).
		SetResult(result).
		SetError(apiErr).
		Get("/weather")
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrInvalidAPIKey
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrZipNotFound, zipCode)
	default:
		return nil, fmt.Errorf("weather api error: status=%d message=%s", resp.StatusCode(), apiErr.Message)
	}

	if result.Main.Temp == nil || len(result.Weather) == 0 || result.Weather[0].Icon == "" {
		return nil, ErrIncompleteData
	}

	description := result.Weather[0].Description
	if description == "" {
		description = "N/A"
	}

	return &Conditions{
		Temp:        *result.Main.Temp,
		FeelsLike:   result.Main.FeelsLike,
		Humidity:    result.Main.Humidity,
		Description: capitalize(description),
		Icon:        result.Weather[0].Icon,
		WindSpeed:   result.Wind.Speed,
		CityName:    result.Name,
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
