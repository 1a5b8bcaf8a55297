package client

import (
	"strings"
	"time"
)

// Units selects the measurement system applied to every numeric field
type Units int

const (
	UnitsUnknown Units = iota - 1
	UnitsUnspecified
	UnitsMetric
	UnitsImperial
)

// String returns the wire name of the unit system
func (u Units) String() string {
	switch u {
	case UnitsMetric:
		return "metric"
	case UnitsImperial:
		return "imperial"
	case UnitsUnspecified:
		return ""
	default:
		return "unknown"
	}
}

// IsValid checks if the units value names a real unit system
func (u Units) IsValid() bool {
	return u == UnitsMetric || u == UnitsImperial
}

// UnitsFromString converts a wire name to Units
func UnitsFromString(s string) Units {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric":
		return UnitsMetric
	case "imperial":
		return UnitsImperial
	case "":
		return UnitsUnspecified
	default:
		return UnitsUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (u *Units) UnmarshalText(text []byte) error {
	*u = UnitsFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (u Units) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Part selects a forecast section the server should populate
type Part int

const (
	PartAlerts Part = iota + 1
	PartCurrently
	PartHourly
	PartDaily
)

func (p Part) String() string {
	switch p {
	case PartAlerts:
		return "alerts"
	case PartCurrently:
		return "currently"
	case PartHourly:
		return "hourly"
	case PartDaily:
		return "daily"
	default:
		return "unknown"
	}
}

func (p Part) IsValid() bool {
	return p >= PartAlerts && p <= PartDaily
}

// PartFromString converts a wire name to Part, returning false for unknown names
func PartFromString(s string) (Part, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alerts":
		return PartAlerts, true
	case "currently":
		return PartCurrently, true
	case "hourly":
		return PartHourly, true
	case "daily":
		return PartDaily, true
	default:
		return 0, false
	}
}

// WeatherRequest describes a current/forecast lookup.
// Lat and Lon are documented as -90..90 and -180..180 but are forwarded
// as-is; the provider rejects out-of-range values.
type WeatherRequest struct {
	Lat   float64
	Lon   float64
	Parts []Part `validate:"omitempty,dive,part"`
	Units Units  `validate:"units"`
}

// HistoricalRequest describes an hourly history lookup between Start and End (Unix seconds)
type HistoricalRequest struct {
	Lat   float64
	Lon   float64
	Start int64
	End   int64
	Units Units `validate:"units"`
}

// Timestamp is a Unix time in seconds as sent by the provider
type Timestamp int64

// Time converts the timestamp to a UTC time.Time
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

type PrecipType string

const (
	PrecipNone  PrecipType = "none"
	PrecipRain  PrecipType = "rain"
	PrecipSnow  PrecipType = "snow"
	PrecipSleet PrecipType = "sleet"
)

// WeatherResponse is the success envelope of a weather call
type WeatherResponse struct {
	Success bool        `json:"success"`
	Data    WeatherData `json:"data"`

	// Raw holds the response body exactly as received
	Raw []byte `json:"-"`
}

// WeatherData holds location metadata plus the sections requested via Parts.
// Sections that were not requested are nil.
type WeatherData struct {
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	Timezone  string             `json:"timezone"`
	Offset    float64            `json:"offset"`
	Elevation float64            `json:"elevation"`
	Alerts    []Alert            `json:"alerts,omitempty"`
	Currently *CurrentConditions `json:"currently,omitempty"`
	Hourly    *HourlyBlock       `json:"hourly,omitempty"`
	Daily     *DailyBlock        `json:"daily,omitempty"`
}

// HistoricalResponse is the success envelope of a history call
type HistoricalResponse struct {
	Success bool           `json:"success"`
	Data    HistoricalData `json:"data"`

	Raw []byte `json:"-"`
}

type HistoricalData struct {
	Latitude  float64               `json:"latitude"`
	Longitude float64               `json:"longitude"`
	Timezone  string                `json:"timezone"`
	Offset    float64               `json:"offset"`
	Elevation float64               `json:"elevation"`
	Hourly    HistoricalHourlyBlock `json:"hourly"`
}

type HistoricalHourlyBlock struct {
	Data []HistoricalHourlyCondition `json:"data"`
}

type HourlyBlock struct {
	Summary string            `json:"summary,omitempty"`
	Icon    string            `json:"icon,omitempty"`
	Data    []HourlyCondition `json:"data"`
}

type DailyBlock struct {
	Summary string           `json:"summary,omitempty"`
	Icon    string           `json:"icon,omitempty"`
	Data    []DailyCondition `json:"data"`
}

// Alert is a severe weather warning issued for the location
type Alert struct {
	Title       string    `json:"title"`
	Regions     []string  `json:"regions"`
	Severity    string    `json:"severity"`
	Time        Timestamp `json:"time"`
	Expires     Timestamp `json:"expires"`
	Description string    `json:"description"`
	URI         string    `json:"uri"`
}

type CurrentConditions struct {
	Time                 Timestamp  `json:"time"`
	Summary              string     `json:"summary"`
	Icon                 string     `json:"icon"`
	NearestStormDistance float64    `json:"nearestStormDistance"`
	NearestStormBearing  float64    `json:"nearestStormBearing"`
	PrecipIntensity      float64    `json:"precipIntensity"`
	PrecipProbability    float64    `json:"precipProbability"`
	PrecipType           PrecipType `json:"precipType"`
	Temperature          float64    `json:"temperature"`
	ApparentTemperature  float64    `json:"apparentTemperature"`
	DewPoint             float64    `json:"dewPoint"`
	Humidity             float64    `json:"humidity"`
	Pressure             float64    `json:"pressure"`
	WindSpeed            float64    `json:"windSpeed"`
	WindGust             float64    `json:"windGust"`
	WindBearing          float64    `json:"windBearing"`
	CloudCover           float64    `json:"cloudCover"`
	UVIndex              float64    `json:"uvIndex"`
	Visibility           float64    `json:"visibility"`
	Ozone                float64    `json:"ozone"`
}

type HourlyCondition struct {
	Time                Timestamp  `json:"time"`
	Summary             string     `json:"summary"`
	Icon                string     `json:"icon"`
	PrecipIntensity     float64    `json:"precipIntensity"`
	PrecipProbability   float64    `json:"precipProbability"`
	PrecipAccumulation  float64    `json:"precipAccumulation"`
	PrecipType          PrecipType `json:"precipType"`
	Temperature         float64    `json:"temperature"`
	ApparentTemperature float64    `json:"apparentTemperature"`
	DewPoint            float64    `json:"dewPoint"`
	Humidity            float64    `json:"humidity"`
	Pressure            float64    `json:"pressure"`
	WindSpeed           float64    `json:"windSpeed"`
	WindGust            float64    `json:"windGust"`
	WindBearing         float64    `json:"windBearing"`
	CloudCover          float64    `json:"cloudCover"`
	UVIndex             float64    `json:"uvIndex"`
	Visibility          float64    `json:"visibility"`
	Ozone               float64    `json:"ozone"`
}

// HistoricalHourlyCondition is one observed hour; it carries no probabilities
type HistoricalHourlyCondition struct {
	Time                Timestamp  `json:"time"`
	Summary             string     `json:"summary"`
	Icon                string     `json:"icon"`
	PrecipIntensity     float64    `json:"precipIntensity"`
	PrecipAccumulation  float64    `json:"precipAccumulation"`
	PrecipType          PrecipType `json:"precipType"`
	Temperature         float64    `json:"temperature"`
	ApparentTemperature float64    `json:"apparentTemperature"`
	DewPoint            float64    `json:"dewPoint"`
	Humidity            float64    `json:"humidity"`
	Pressure            float64    `json:"pressure"`
	WindSpeed           float64    `json:"windSpeed"`
	WindGust            float64    `json:"windGust"`
	WindBearing         float64    `json:"windBearing"`
	CloudCover          float64    `json:"cloudCover"`
	Visibility          float64    `json:"visibility"`
	SolarRadiation      float64    `json:"solarRadiation"`
}

type DailyCondition struct {
	Time                    Timestamp  `json:"time"`
	Summary                 string     `json:"summary"`
	Icon                    string     `json:"icon"`
	SunriseTime             Timestamp  `json:"sunriseTime"`
	SunsetTime              Timestamp  `json:"sunsetTime"`
	MoonPhase               float64    `json:"moonPhase"`
	PrecipIntensity         float64    `json:"precipIntensity"`
	PrecipIntensityMax      float64    `json:"precipIntensityMax"`
	PrecipProbability       float64    `json:"precipProbability"`
	PrecipAccumulation      float64    `json:"precipAccumulation"`
	PrecipType              PrecipType `json:"precipType"`
	TemperatureHigh         float64    `json:"temperatureHigh"`
	TemperatureHighTime     Timestamp  `json:"temperatureHighTime"`
	TemperatureLow          float64    `json:"temperatureLow"`
	TemperatureLowTime      Timestamp  `json:"temperatureLowTime"`
	TemperatureMin          float64    `json:"temperatureMin"`
	TemperatureMax          float64    `json:"temperatureMax"`
	ApparentTemperatureHigh float64    `json:"apparentTemperatureHigh"`
	ApparentTemperatureLow  float64    `json:"apparentTemperatureLow"`
	DewPoint                float64    `json:"dewPoint"`
	Humidity                float64    `json:"humidity"`
	Pressure                float64    `json:"pressure"`
	WindSpeed               float64    `json:"windSpeed"`
	WindGust                float64    `json:"windGust"`
	WindBearing             float64    `json:"windBearing"`
	CloudCover              float64    `json:"cloudCover"`
	UVIndex                 float64    `json:"uvIndex"`
	Visibility              float64    `json:"visibility"`
}
