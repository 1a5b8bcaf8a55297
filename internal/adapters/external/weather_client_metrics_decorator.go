package external

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/client"
	"weatherclient.app/pkg/errors"
)

const outcomeSuccess = "success"

// WeatherClientMetrics holds the Prometheus collectors for weather client calls
type WeatherClientMetrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewWeatherClientMetrics registers the collectors with reg.
// A nil reg leaves them unregistered.
func NewWeatherClientMetrics(reg prometheus.Registerer) *WeatherClientMetrics {
	factory := promauto.With(reg)
	return &WeatherClientMetrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_client_requests_total",
				Help: "The total number of weather API calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		Latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_client_request_duration_seconds",
				Help:    "Weather API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *WeatherClientMetrics) record(operation string, duration time.Duration, err error) {
	m.Requests.WithLabelValues(operation, outcome(err)).Inc()
	m.Latency.WithLabelValues(operation).Observe(duration.Seconds())
}

// outcome is "success" or the lower-cased ClientError type
func outcome(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	if clientErr, ok := errors.AsClientError(err); ok {
		return strings.ToLower(clientErr.Type.String())
	}
	return strings.ToLower(errors.ErrorTypeUnknown.String())
}

// WeatherClientMetricsDecorator records call counts and latency for a weather client
type WeatherClientMetricsDecorator struct {
	client  ports.WeatherClient
	metrics *WeatherClientMetrics
}

// NewWeatherClientMetricsDecorator creates a new metrics decorator for a weather client
func NewWeatherClientMetricsDecorator(c ports.WeatherClient, metrics *WeatherClientMetrics) ports.WeatherClient {
	return &WeatherClientMetricsDecorator{
		client:  c,
		metrics: metrics,
	}
}

func (d *WeatherClientMetricsDecorator) GetWeather(ctx context.Context, req client.WeatherRequest) (*client.WeatherResponse, error) {
	startTime := time.Now()
	resp, err := d.client.GetWeather(ctx, req)
	d.metrics.record(ports.OperationGetWeather, time.Since(startTime), err)
	return resp, err
}

func (d *WeatherClientMetricsDecorator) GetHistorical(ctx context.Context, req client.HistoricalRequest) (*client.HistoricalResponse, error) {
	startTime := time.Now()
	resp, err := d.client.GetHistorical(ctx, req)
	d.metrics.record(ports.OperationGetHistorical, time.Since(startTime), err)
	return resp, err
}
