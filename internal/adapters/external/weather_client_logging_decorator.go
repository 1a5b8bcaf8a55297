package external

import (
	"context"
	"time"

	"github.com/google/uuid"
	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/client"
	"weatherclient.app/pkg/errors"
)

// WeatherClientLoggingDecorator decorates a weather client with structured logging.
// Every call gets a call_id so its start and end entries can be correlated.
type WeatherClientLoggingDecorator struct {
	client ports.WeatherClient
	logger ports.Logger
}

// NewWeatherClientLoggingDecorator creates a new logging decorator for a weather client
func NewWeatherClientLoggingDecorator(c ports.WeatherClient, logger ports.Logger) ports.WeatherClient {
	return &WeatherClientLoggingDecorator{
		client: c,
		logger: logger,
	}
}

// GetWeather wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) GetWeather(ctx context.Context, req client.WeatherRequest) (*client.WeatherResponse, error) {
	callID := uuid.NewString()
	base := []ports.Field{
		ports.F("call_id", callID),
		ports.F("operation", ports.OperationGetWeather),
		ports.F("lat", req.Lat),
		ports.F("lon", req.Lon),
	}

	d.logger.Info("Weather API request started", append(base,
		ports.F("event", "request"),
		ports.F("units", req.Units.String()),
		ports.F("parts", partNames(req.Parts)))...)

	startTime := time.Now()
	resp, err := d.client.GetWeather(ctx, req)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(base, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed", append(base,
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("timezone", resp.Data.Timezone),
		ports.F("sections", presentSections(resp.Data)))...)

	return resp, nil
}

// GetHistorical wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) GetHistorical(ctx context.Context, req client.HistoricalRequest) (*client.HistoricalResponse, error) {
	callID := uuid.NewString()
	base := []ports.Field{
		ports.F("call_id", callID),
		ports.F("operation", ports.OperationGetHistorical),
		ports.F("lat", req.Lat),
		ports.F("lon", req.Lon),
	}

	d.logger.Info("Weather API request started", append(base,
		ports.F("event", "request"),
		ports.F("units", req.Units.String()),
		ports.F("start", req.Start),
		ports.F("end", req.End))...)

	startTime := time.Now()
	resp, err := d.client.GetHistorical(ctx, req)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(base, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed", append(base,
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("timezone", resp.Data.Timezone),
		ports.F("hours", len(resp.Data.Hourly.Data)))...)

	return resp, nil
}

func (d *WeatherClientLoggingDecorator) logFailure(base []ports.Field, duration time.Duration, err error) {
	fields := append(base,
		ports.F("event", "error"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()))

	if clientErr, ok := errors.AsClientError(err); ok {
		fields = append(fields, ports.F("error_type", clientErr.Type.String()))
		if clientErr.HasStatus() {
			fields = append(fields, ports.F("status", clientErr.Status))
		}
		if clientErr.HasCode() {
			fields = append(fields, ports.F("code", clientErr.Code))
		}
	}

	d.logger.Error("Weather API request failed", fields...)
}

func partNames(parts []client.Part) []string {
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, p.String())
	}
	return names
}

func presentSections(data client.WeatherData) []string {
	var sections []string
	if data.Alerts != nil {
		sections = append(sections, client.PartAlerts.String())
	}
	if data.Currently != nil {
		sections = append(sections, client.PartCurrently.String())
	}
	if data.Hourly != nil {
		sections = append(sections, client.PartHourly.String())
	}
	if data.Daily != nil {
		sections = append(sections, client.PartDaily.String())
	}
	return sections
}
