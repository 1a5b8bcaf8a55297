package mockserver_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherclient.app/internal/adapters/external"
	"weatherclient.app/internal/adapters/infrastructure"
	"weatherclient.app/internal/mockserver"
	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/client"
	"weatherclient.app/pkg/errors"
)

func newClientAgainstMock(t *testing.T, apiKey string, units client.Units) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(mockserver.New(mockserver.Options{APIKey: "integration-key"}))
	t.Cleanup(server.Close)

	transport, err := mockserver.NewTransport(server.URL, nil)
	require.NoError(t, err)

	c, err := client.New(client.Config{APIKey: apiKey, Units: units},
		client.WithHTTPClient(&http.Client{Transport: transport, Timeout: 5 * time.Second}))
	require.NoError(t, err)
	return c
}

func TestIntegration_GetWeather(t *testing.T) {
	c := newClientAgainstMock(t, "integration-key", client.UnitsMetric)

	resp, err := c.GetWeather(context.Background(), client.WeatherRequest{
		Lat:   51.5074,
		Lon:   -0.1278,
		Parts: []client.Part{client.PartCurrently, client.PartDaily},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 51.5074, resp.Data.Latitude)
	require.NotNil(t, resp.Data.Currently)
	require.NotNil(t, resp.Data.Daily)
	assert.Len(t, resp.Data.Daily.Data, 7)
	assert.Nil(t, resp.Data.Hourly)
	assert.Nil(t, resp.Data.Alerts)
	assert.NotEmpty(t, resp.Raw)
}

func TestIntegration_GetHistorical(t *testing.T) {
	c := newClientAgainstMock(t, "integration-key", client.UnitsImperial)

	resp, err := c.GetHistorical(context.Background(), client.HistoricalRequest{
		Lat:   40.7128,
		Lon:   -74.0060,
		Start: 1704880800,
		End:   1704970800,
	})

	require.NoError(t, err)
	require.Len(t, resp.Data.Hourly.Data, 26)
	assert.Equal(t, client.Timestamp(1704880800), resp.Data.Hourly.Data[0].Time)
}

func TestIntegration_ErrorKinds(t *testing.T) {
	ctx := context.Background()

	t.Run("WrongKeyIsApplicationError", func(t *testing.T) {
		c := newClientAgainstMock(t, "wrong-key", client.UnitsMetric)

		_, err := c.GetWeather(ctx, client.WeatherRequest{Lat: 1, Lon: 1})

		clientErr, ok := errors.AsClientError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeApplication, clientErr.Type)
		assert.Equal(t, "Invalid API key", clientErr.Message)
		assert.Equal(t, "401", clientErr.Code)
		assert.False(t, clientErr.HasStatus())
	})

	t.Run("ServerErrorCarriesStatus", func(t *testing.T) {
		c := newClientAgainstMock(t, "integration-key", client.UnitsMetric)

		_, err := c.GetWeather(ctx, client.WeatherRequest{Lat: mockserver.LatInternalError, Lon: 1})

		clientErr, ok := errors.AsClientError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeTransport, clientErr.Type)
		assert.Equal(t, http.StatusInternalServerError, clientErr.Status)
	})

	t.Run("MalformedBodyIsUnexpected", func(t *testing.T) {
		c := newClientAgainstMock(t, "integration-key", client.UnitsMetric)

		_, err := c.GetHistorical(ctx, client.HistoricalRequest{Lat: mockserver.LatMalformedJSON, Lon: 1, Start: 0, End: 3600})

		assert.True(t, errors.IsUnexpectedError(err))
		assert.Contains(t, err.Error(), "Failed to fetch historical data: ")
	})

	t.Run("ReversedRangeRejectedByServer", func(t *testing.T) {
		c := newClientAgainstMock(t, "integration-key", client.UnitsMetric)

		_, err := c.GetHistorical(ctx, client.HistoricalRequest{Lat: 1, Lon: 1, Start: 7200, End: 3600})

		clientErr, ok := errors.AsClientError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeApplication, clientErr.Type)
		assert.Equal(t, "400", clientErr.Code)
	})
}

func TestIntegration_DecoratedClient(t *testing.T) {
	c := newClientAgainstMock(t, "integration-key", client.UnitsMetric)

	var buf bytes.Buffer
	logger := infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, nil)))
	metrics := external.NewWeatherClientMetrics(prometheus.NewRegistry())

	var wc ports.WeatherClient = c
	wc = external.NewWeatherClientMetricsDecorator(wc, metrics)
	wc = external.NewWeatherClientLoggingDecorator(wc, logger)

	_, err := wc.GetWeather(context.Background(), client.WeatherRequest{Lat: 10, Lon: 10})
	require.NoError(t, err)
	_, err = wc.GetWeather(context.Background(), client.WeatherRequest{Lat: mockserver.LatInternalError, Lon: 10})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(ports.OperationGetWeather, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(ports.OperationGetWeather, "transport_error")))
	assert.Contains(t, buf.String(), `"msg":"Weather API request completed"`)
	assert.Contains(t, buf.String(), `"status":500`)
}
