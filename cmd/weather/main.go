package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"weatherclient.app/internal/adapters/external"
	"weatherclient.app/internal/adapters/infrastructure"
	"weatherclient.app/internal/config"
	"weatherclient.app/internal/mockserver"
	"weatherclient.app/internal/ports"
	"weatherclient.app/internal/telemetry"
	"weatherclient.app/pkg/client"
	"weatherclient.app/pkg/errors"
	"weatherclient.app/pkg/logger"
)

const usage = `usage:
  weather [-metrics] weather -lat LAT -lon LON [-parts alerts,currently,hourly,daily] [-units metric|imperial]
  weather [-metrics] history -lat LAT -lon LON -start UNIX -end UNIX [-units metric|imperial]
`

// errUsage marks bad command-line input; run exits 2 for it
var errUsage = stderrors.New("invalid usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}

	global := flag.NewFlagSet("weather", flag.ContinueOnError)
	global.SetOutput(stderr)
	dumpMetrics := global.Bool("metrics", false, "write client metrics to stderr on exit")
	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	level, _ := logger.ParseLevel(cfg.Log.Level)
	log := logger.NewWithWriter(stderr, level).WithField("component", "weather-cli")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Error("Failed to set up telemetry", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Warn("Error flushing traces", "error", err)
		}
	}()

	var clientLogger ports.Logger = infrastructure.NewSlogLoggerAdapter(log.Logger)
	if cfg.Log.File != "" {
		journal, err := infrastructure.NewFileLogger(cfg.Log.File)
		if err != nil {
			log.Error("Failed to open log file", "error", err, "path", cfg.Log.File)
			return 1
		}
		defer journal.Close()
		clientLogger = infrastructure.FanoutLogger{clientLogger, journal}
	}

	registry := prometheus.NewRegistry()
	weatherClient, err := buildClient(cfg.Weather, registry, clientLogger)
	if err != nil {
		log.Error("Failed to create weather client", "error", err)
		return 1
	}

	var result interface{}
	cmd, cmdArgs := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "weather":
		result, err = runWeather(ctx, weatherClient, cmdArgs, stderr)
	case "history":
		result, err = runHistory(ctx, weatherClient, cmdArgs, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", cmd, usage)
		return 2
	}

	if *dumpMetrics {
		writeMetrics(registry, stderr, log)
	}

	if stderrors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "%v\n%s", err, usage)
		return 2
	}
	if err != nil {
		if clientErr, ok := errors.AsClientError(err); ok {
			attrs := []any{"error", clientErr.Message, "error_type", clientErr.Type.String()}
			if clientErr.HasStatus() {
				attrs = append(attrs, "status", clientErr.Status)
			}
			if clientErr.HasCode() {
				attrs = append(attrs, "code", clientErr.Code)
			}
			log.Error("Command failed", attrs...)
		} else {
			log.Error("Command failed", "error", err)
		}
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Error("Failed to write response", "error", err)
		return 1
	}
	return 0
}

// buildClient assembles the client with tracing, metrics and logging around it
func buildClient(cfg config.WeatherConfig, reg prometheus.Registerer, log ports.Logger) (ports.WeatherClient, error) {
	hc := telemetry.NewHTTPClient(cfg.HTTPTimeout())
	if cfg.MockServerURL != "" {
		transport, err := mockserver.NewTransport(cfg.MockServerURL, hc.Transport)
		if err != nil {
			return nil, err
		}
		hc.Transport = transport
	}

	c, err := client.New(cfg.ClientConfig(), client.WithHTTPClient(hc))
	if err != nil {
		return nil, err
	}

	var wc ports.WeatherClient = c
	wc = external.NewWeatherClientMetricsDecorator(wc, external.NewWeatherClientMetrics(reg))
	wc = external.NewWeatherClientLoggingDecorator(wc, log)
	return wc, nil
}

func runWeather(ctx context.Context, wc ports.WeatherClient, args []string, stderr io.Writer) (interface{}, error) {
	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lat := fs.Float64("lat", 0, "latitude")
	lon := fs.Float64("lon", 0, "longitude")
	parts := fs.String("parts", "", "comma separated sections: alerts, currently, hourly, daily")
	var units client.Units
	fs.TextVar(&units, "units", client.UnitsUnspecified, "metric or imperial; defaults to WEATHER_UNITS")
	if err := parseFlags(fs, args, &units); err != nil {
		return nil, err
	}

	req := client.WeatherRequest{Lat: *lat, Lon: *lon, Units: units}
	if *parts != "" {
		for _, name := range strings.Split(*parts, ",") {
			p, ok := client.PartFromString(strings.TrimSpace(name))
			if !ok {
				return nil, errors.NewValidationError(fmt.Sprintf("unknown part %q", name))
			}
			req.Parts = append(req.Parts, p)
		}
	}

	resp, err := wc.GetWeather(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func runHistory(ctx context.Context, wc ports.WeatherClient, args []string, stderr io.Writer) (interface{}, error) {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lat := fs.Float64("lat", 0, "latitude")
	lon := fs.Float64("lon", 0, "longitude")
	start := fs.Int64("start", 0, "range start, unix seconds")
	end := fs.Int64("end", 0, "range end, unix seconds")
	var units client.Units
	fs.TextVar(&units, "units", client.UnitsUnspecified, "metric or imperial; defaults to WEATHER_UNITS")
	if err := parseFlags(fs, args, &units); err != nil {
		return nil, err
	}

	resp, err := wc.GetHistorical(ctx, client.HistoricalRequest{
		Lat:   *lat,
		Lon:   *lon,
		Start: *start,
		End:   *end,
		Units: units,
	})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// parseFlags parses a subcommand's flags. Unknown flags, bad values and
// unknown units are usage errors.
func parseFlags(fs *flag.FlagSet, args []string, units *client.Units) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *units == client.UnitsUnknown {
		return fmt.Errorf("%w: -units must be metric or imperial", errUsage)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	return nil
}

func writeMetrics(g prometheus.Gatherer, w io.Writer, log *logger.Logger) {
	families, err := g.Gather()
	if err != nil {
		log.Warn("Failed to gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			log.Warn("Failed to write metrics", "error", err)
			return
		}
	}
}
