// Package mockserver fakes the weather provider API for local runs and integration tests.
// It serves both the weather and the history paths from a single host.
package mockserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherclient.app/pkg/client"
)

// Magic latitudes that trigger failure modes
const (
	LatInternalError = 13.13
	LatMalformedJSON = 66.6
)

// maxHistoryHours bounds a single history response to 31 days
const maxHistoryHours = 31 * 24

// Options configures the mock server
type Options struct {
	APIKey string

	// Now anchors the generated forecast; defaults to time.Now
	Now func() time.Time
}

type server struct {
	apiKey   string
	now      func() time.Time
	requests *prometheus.CounterVec
}

// New builds the gin engine. Each engine owns its own metrics registry.
func New(opts Options) *gin.Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	reg := prometheus.NewRegistry()
	s := &server{
		apiKey: opts.APIKey,
		now:    opts.Now,
		requests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "mock_weather_requests_total",
				Help: "The total number of requests served by the mock weather API",
			},
			[]string{"path", "status"},
		),
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.countRequests)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1", s.requireAPIKey)
	v1.GET("/weather", s.weather)
	v1.GET("/history", s.history)

	return r
}

func (s *server) countRequests(c *gin.Context) {
	c.Next()
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	s.requests.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
}

func (s *server) requireAPIKey(c *gin.Context) {
	if c.GetHeader("X-API-KEY") != s.apiKey {
		fail(c, "Invalid API key", "401")
		c.Abort()
		return
	}
	c.Next()
}

// fail writes an application-level failure inside a 200 envelope
func fail(c *gin.Context, message, code string) {
	c.JSON(http.StatusOK, gin.H{
		"success": false,
		"error": gin.H{
			"message":    message,
			"statusCode": code,
		},
	})
}

func succeed(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

type location struct {
	lat, lon float64
	units    client.Units
}

// parseLocation reads lat, lon and units; on failure it has already written the response
func parseLocation(c *gin.Context) (location, bool) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		fail(c, "Invalid latitude", "400")
		return location{}, false
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		fail(c, "Invalid longitude", "400")
		return location{}, false
	}

	units := client.UnitsFromString(c.Query("units"))
	if units == client.UnitsUnspecified {
		units = client.UnitsMetric
	}
	if !units.IsValid() {
		fail(c, "Invalid units", "400")
		return location{}, false
	}

	switch lat {
	case LatInternalError:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return location{}, false
	case LatMalformedJSON:
		c.Data(http.StatusOK, "application/json", []byte(`{"success": tru`))
		return location{}, false
	}

	return location{lat: lat, lon: lon, units: units}, true
}

func parseParts(raw string) ([]client.Part, string, bool) {
	if raw == "" {
		return []client.Part{client.PartAlerts, client.PartCurrently, client.PartHourly, client.PartDaily}, "", true
	}
	var parts []client.Part
	for _, name := range strings.Split(raw, ",") {
		p, ok := client.PartFromString(name)
		if !ok {
			return nil, name, false
		}
		parts = append(parts, p)
	}
	return parts, "", true
}

func (s *server) weather(c *gin.Context) {
	loc, ok := parseLocation(c)
	if !ok {
		return
	}

	parts, bad, ok := parseParts(c.Query("parts"))
	if !ok {
		fail(c, "Invalid part: "+bad, "400")
		return
	}

	succeed(c, forecast(loc, parts, s.now()))
}

func (s *server) history(c *gin.Context) {
	loc, ok := parseLocation(c)
	if !ok {
		return
	}

	start, err := strconv.ParseInt(c.Query("start"), 10, 64)
	if err != nil {
		fail(c, "Invalid start", "400")
		return
	}
	end, err := strconv.ParseInt(c.Query("end"), 10, 64)
	if err != nil {
		fail(c, "Invalid end", "400")
		return
	}
	if end < start {
		fail(c, "end must not be before start", "400")
		return
	}
	if (end-start)/3600 >= maxHistoryHours {
		fail(c, "Requested range exceeds 31 days", "422")
		return
	}

	succeed(c, history(loc, start, end))
}
