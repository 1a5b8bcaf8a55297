package external

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherclient.app/internal/mocks"
	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/client"
	"weatherclient.app/pkg/errors"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

// testLogger captures log entries for assertions
type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) add(level, msg string, fields []ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	l.entries = append(l.entries, logEntry{level: level, message: msg, fields: m})
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) { l.add("DEBUG", msg, fields) }
func (l *testLogger) Info(msg string, fields ...ports.Field)  { l.add("INFO", msg, fields) }
func (l *testLogger) Warn(msg string, fields ...ports.Field)  { l.add("WARN", msg, fields) }
func (l *testLogger) Error(msg string, fields ...ports.Field) { l.add("ERROR", msg, fields) }

func TestWeatherClientLoggingDecorator_GetWeatherSuccess(t *testing.T) {
	mockClient := mocks.NewWeatherClient(t)
	req := client.WeatherRequest{Lat: 51.5, Lon: -0.12, Parts: []client.Part{client.PartCurrently}}
	resp := &client.WeatherResponse{
		Success: true,
		Data: client.WeatherData{
			Timezone:  "Europe/London",
			Currently: &client.CurrentConditions{Temperature: 11.2},
		},
	}
	mockClient.EXPECT().GetWeather(mock.Anything, req).Return(resp, nil).Once()

	logger := &testLogger{}
	decorator := NewWeatherClientLoggingDecorator(mockClient, logger)

	got, err := decorator.GetWeather(context.Background(), req)

	require.NoError(t, err)
	assert.Same(t, resp, got)
	require.Len(t, logger.entries, 2)

	started := logger.entries[0]
	assert.Equal(t, "INFO", started.level)
	assert.Equal(t, "Weather API request started", started.message)
	assert.Equal(t, ports.OperationGetWeather, started.fields["operation"])
	assert.Equal(t, 51.5, started.fields["lat"])
	assert.Equal(t, []string{"currently"}, started.fields["parts"])
	assert.Equal(t, "request", started.fields["event"])

	completed := logger.entries[1]
	assert.Equal(t, "INFO", completed.level)
	assert.Equal(t, "Weather API request completed", completed.message)
	assert.Equal(t, "Europe/London", completed.fields["timezone"])
	assert.Equal(t, []string{"currently"}, completed.fields["sections"])
	assert.Contains(t, completed.fields, "duration_ms")

	callID, ok := started.fields["call_id"].(string)
	require.True(t, ok)
	_, parseErr := uuid.Parse(callID)
	assert.NoError(t, parseErr)
	assert.Equal(t, callID, completed.fields["call_id"])
}

func TestWeatherClientLoggingDecorator_GetWeatherClientError(t *testing.T) {
	mockClient := mocks.NewWeatherClient(t)
	appErr := errors.NewApplicationError("bad key", "401")
	mockClient.EXPECT().GetWeather(mock.Anything, mock.Anything).Return(nil, appErr).Once()

	logger := &testLogger{}
	decorator := NewWeatherClientLoggingDecorator(mockClient, logger)

	got, err := decorator.GetWeather(context.Background(), client.WeatherRequest{})

	assert.Nil(t, got)
	assert.Same(t, appErr, err)
	require.Len(t, logger.entries, 2)

	failed := logger.entries[1]
	assert.Equal(t, "ERROR", failed.level)
	assert.Equal(t, "Weather API request failed", failed.message)
	assert.Equal(t, "error", failed.fields["event"])
	assert.Equal(t, "APPLICATION_ERROR", failed.fields["error_type"])
	assert.Equal(t, "401", failed.fields["code"])
	assert.NotContains(t, failed.fields, "status")
}

func TestWeatherClientLoggingDecorator_GetHistoricalStatusError(t *testing.T) {
	mockClient := mocks.NewWeatherClient(t)
	req := client.HistoricalRequest{Lat: 40.7128, Lon: -74.006, Start: 1704880800, End: 1704970800}
	mockClient.EXPECT().GetHistorical(mock.Anything, req).
		Return(nil, errors.NewHTTPStatusError("Failed to fetch historical data: request failed with status code 503", 503)).Once()

	logger := &testLogger{}
	decorator := NewWeatherClientLoggingDecorator(mockClient, logger)

	_, err := decorator.GetHistorical(context.Background(), req)

	assert.True(t, errors.IsTransportError(err))
	require.Len(t, logger.entries, 2)
	assert.Equal(t, int64(1704880800), logger.entries[0].fields["start"])
	assert.Equal(t, ports.OperationGetHistorical, logger.entries[0].fields["operation"])
	assert.Equal(t, 503, logger.entries[1].fields["status"])
	assert.NotContains(t, logger.entries[1].fields, "code")
}

func TestWeatherClientLoggingDecorator_GetHistoricalPlainError(t *testing.T) {
	mockClient := mocks.NewWeatherClient(t)
	mockClient.EXPECT().GetHistorical(mock.Anything, mock.Anything).Return(nil, stderrors.New("boom")).Once()

	logger := &testLogger{}
	_, err := NewWeatherClientLoggingDecorator(mockClient, logger).GetHistorical(context.Background(), client.HistoricalRequest{})

	assert.EqualError(t, err, "boom")
	assert.NotContains(t, logger.entries[1].fields, "error_type")
}

func TestWeatherClientLoggingDecorator_GetHistoricalSuccess(t *testing.T) {
	mockClient := mocks.NewWeatherClient(t)
	resp := &client.HistoricalResponse{
		Success: true,
		Data: client.HistoricalData{
			Timezone: "America/New_York",
			Hourly: client.HistoricalHourlyBlock{Data: []client.HistoricalHourlyCondition{
				{Time: 1704880800}, {Time: 1704884400}, {Time: 1704888000},
			}},
		},
	}
	mockClient.EXPECT().GetHistorical(mock.Anything, mock.Anything).Return(resp, nil).Once()

	logger := &testLogger{}
	got, err := NewWeatherClientLoggingDecorator(mockClient, logger).GetHistorical(context.Background(), client.HistoricalRequest{})

	require.NoError(t, err)
	assert.Same(t, resp, got)
	assert.Equal(t, 3, logger.entries[1].fields["hours"])
}

func TestWeatherClientLoggingDecorator_WithMockLogger(t *testing.T) {
	mockClient := mocks.NewWeatherClient(t)
	mockClient.EXPECT().GetWeather(mock.Anything, mock.Anything).
		Return(&client.WeatherResponse{Success: true}, nil).Once()

	// msg plus seven fields when starting, msg plus eight when completing
	mockLogger := mocks.NewLogger(t)
	mockLogger.On("Info", anythings(8)...).Once()
	mockLogger.On("Info", anythings(9)...).Once()

	_, err := NewWeatherClientLoggingDecorator(mockClient, mockLogger).GetWeather(context.Background(), client.WeatherRequest{})

	assert.NoError(t, err)
}

func anythings(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = mock.Anything
	}
	return args
}
