// Package client is a typed client for the Skyfeed weather API.
// It exposes current/forecast lookups and historical hourly lookups for a
// coordinate and reports every failure as an *errors.ClientError.
package client

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"weatherclient.app/pkg/errors"
)

// Provider endpoints. Current/forecast and history are served from distinct hosts.
const (
	WeatherBaseURL    = "https://api.skyfeed.io"
	HistoricalBaseURL = "https://history.skyfeed.io"

	WeatherPath    = "/v1/weather"
	HistoricalPath = "/v1/history"
)

const (
	apiKeyHeader   = "X-API-KEY"
	defaultTimeout = 10 * time.Second

	weatherFailurePrefix    = "Failed to fetch weather data: "
	historicalFailurePrefix = "Failed to fetch historical data: "
)

// Config holds the client settings fixed at construction
type Config struct {
	APIKey string `validate:"required"`
	Units  Units  `validate:"units"`
}

// Option customizes a Client
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient makes the client send requests through hc.
// Timeouts, proxies and instrumentation belong to hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}

// Client talks to the weather API. It is safe for concurrent use.
type Client struct {
	apiKey string
	units  Units
	http   *resty.Client
}

// New validates cfg and returns a ready client. No request is made.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if err := validate.Struct(cfg); err != nil {
		return nil, configError(err)
	}

	o := options{httpClient: &http.Client{Timeout: defaultTimeout}}
	for _, opt := range opts {
		opt(&o)
	}

	units := cfg.Units
	if units == UnitsUnspecified {
		units = UnitsMetric
	}

	rc := resty.NewWithClient(o.httpClient).
		SetLogger(discardLogger{}).
		SetRetryCount(0).
		SetHeader(apiKeyHeader, cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		apiKey: cfg.APIKey,
		units:  units,
		http:   rc,
	}, nil
}

func configError(err error) *errors.ClientError {
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "APIKey" {
				return errors.NewConfigurationError("API key is required", nil)
			}
		}
	}
	return validationError(err)
}

// Units returns the unit system used when a request sets no override
func (c *Client) Units() Units {
	return c.units
}

func (c *Client) effectiveUnits(override Units) Units {
	if override != UnitsUnspecified {
		return override
	}
	return c.units
}

// GetWeather fetches current and forecast conditions. Only the sections named
// in req.Parts are populated; all of them when Parts is empty.
func (c *Client) GetWeather(ctx context.Context, req WeatherRequest) (*WeatherResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	query := weatherQuery(req, c.effectiveUnits(req.Units))
	data, raw, err := fetch[WeatherData](ctx, c.http, WeatherBaseURL+WeatherPath, query, weatherFailurePrefix)
	if err != nil {
		return nil, err
	}

	return &WeatherResponse{Success: true, Data: data, Raw: raw}, nil
}

// GetHistorical fetches the observed hourly series between req.Start and req.End.
// The range is forwarded as given; the provider validates its order.
func (c *Client) GetHistorical(ctx context.Context, req HistoricalRequest) (*HistoricalResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	query := historicalQuery(req, c.effectiveUnits(req.Units))
	data, raw, err := fetch[HistoricalData](ctx, c.http, HistoricalBaseURL+HistoricalPath, query, historicalFailurePrefix)
	if err != nil {
		return nil, err
	}

	return &HistoricalResponse{Success: true, Data: data, Raw: raw}, nil
}

// fetch performs one GET and maps every failure to a ClientError
func fetch[T any](ctx context.Context, rc *resty.Client, endpoint string, query url.Values, prefix string) (T, []byte, error) {
	var zero T

	resp, err := rc.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(endpoint)
	if err != nil {
		if clientErr, ok := errors.AsClientError(err); ok {
			return zero, nil, clientErr
		}
		return zero, nil, errors.NewTransportError(prefix+err.Error(), err)
	}

	if !resp.IsSuccess() {
		return zero, nil, errors.NewHTTPStatusError(
			fmt.Sprintf("%srequest failed with status code %d", prefix, resp.StatusCode()),
			resp.StatusCode())
	}

	body := resp.Body()
	outcome, err := decodeEnvelope[T](body)
	if err != nil {
		return zero, nil, errors.NewUnexpectedError(prefix+err.Error(), err)
	}

	switch o := outcome.(type) {
	case Ok[T]:
		return o.Data, body, nil
	case Failure:
		return zero, nil, errors.NewApplicationError(o.Message, o.Code)
	default:
		return zero, nil, errors.NewUnexpectedError(prefix+"unrecognized response envelope", nil)
	}
}

// discardLogger silences resty; the client does not log
type discardLogger struct{}

func (discardLogger) Errorf(string, ...interface{}) {}
func (discardLogger) Warnf(string, ...interface{})  {}
func (discardLogger) Debugf(string, ...interface{}) {}
