package ports

import (
	"context"

	"weatherclient.app/pkg/client"
)

// WeatherClient defines the contract for fetching weather data from the provider.
// *client.Client implements it; decorators wrap it.
type WeatherClient interface {
	GetWeather(ctx context.Context, req client.WeatherRequest) (*client.WeatherResponse, error)
	GetHistorical(ctx context.Context, req client.HistoricalRequest) (*client.HistoricalResponse, error)
}

// Operation names used in logs and metrics
const (
	OperationGetWeather    = "get_weather"
	OperationGetHistorical = "get_historical"
)
