package mockserver

import (
	"math"
	"time"

	"weatherclient.app/pkg/client"
)

// Generated values are deterministic functions of position and time

func baseTemperature(lat float64, t time.Time) float64 {
	seasonal := 8 * math.Cos(2*math.Pi*float64(t.YearDay())/365)
	if lat < 0 {
		seasonal = -seasonal
	}
	diurnal := 4 * math.Sin(2*math.Pi*float64(t.Hour()-9)/24)
	return round(25-0.45*math.Abs(lat)+seasonal+diurnal, 1)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

type reading struct {
	temperature, apparent, dewPoint float64
	humidity, pressure              float64
	windSpeed, windGust, windBear   float64
	cloudCover, precipIntensity     float64
	precipType                      client.PrecipType
	summary, icon                   string
}

func sample(loc location, t time.Time) reading {
	tempC := baseTemperature(loc.lat, t)
	phase := math.Sin(float64(t.Unix())/7200 + loc.lon)
	humidity := round(0.6+0.3*phase, 2)
	cloud := round(0.5+0.5*math.Sin(float64(t.Unix())/10800+loc.lat), 2)
	wind := round(4+3*math.Abs(phase), 1)

	r := reading{
		temperature:     tempC,
		apparent:        round(tempC-wind*0.3, 1),
		dewPoint:        round(tempC-(1-humidity)*20, 1),
		humidity:        humidity,
		pressure:        round(1013+6*phase, 1),
		windSpeed:       wind,
		windGust:        round(wind*1.6, 1),
		windBear:        math.Mod(math.Abs(loc.lon*7+float64(t.Hour())*15), 360),
		cloudCover:      cloud,
		precipType:      client.PrecipNone,
		summary:         "Clear",
		icon:            "clear-day",
		precipIntensity: 0,
	}

	if cloud > 0.85 {
		r.precipIntensity = round((cloud-0.85)*10, 2)
		r.precipType = client.PrecipRain
		if tempC <= 0 {
			r.precipType = client.PrecipSnow
		}
		r.summary, r.icon = "Light Rain", "rain"
		if r.precipType == client.PrecipSnow {
			r.summary, r.icon = "Light Snow", "snow"
		}
	} else if cloud > 0.5 {
		r.summary, r.icon = "Partly Cloudy", "partly-cloudy-day"
	}

	if loc.units == client.UnitsImperial {
		r.temperature = toFahrenheit(r.temperature)
		r.apparent = toFahrenheit(r.apparent)
		r.dewPoint = toFahrenheit(r.dewPoint)
		r.windSpeed = round(r.windSpeed*2.23694, 1)
		r.windGust = round(r.windGust*2.23694, 1)
		r.precipIntensity = round(r.precipIntensity/25.4, 3)
	}
	return r
}

func toFahrenheit(c float64) float64 {
	return round(c*9/5+32, 1)
}

func probability(r reading) float64 {
	if r.precipType == client.PrecipNone {
		return round(r.cloudCover*0.2, 2)
	}
	return round(0.5+r.cloudCover/2, 2)
}

func forecast(loc location, parts []client.Part, now time.Time) client.WeatherData {
	now = now.UTC().Truncate(time.Hour)
	data := client.WeatherData{
		Latitude:  loc.lat,
		Longitude: loc.lon,
		Timezone:  "UTC",
		Elevation: 35,
	}

	for _, p := range parts {
		switch p {
		case client.PartAlerts:
			data.Alerts = alerts(loc, now)
		case client.PartCurrently:
			data.Currently = currently(loc, now)
		case client.PartHourly:
			data.Hourly = hourly(loc, now)
		case client.PartDaily:
			data.Daily = daily(loc, now)
		}
	}
	return data
}

func alerts(loc location, now time.Time) []client.Alert {
	alert := client.Alert{
		Title:       "Air Quality Advisory",
		Regions:     []string{"Local area"},
		Severity:    "advisory",
		Time:        client.Timestamp(now.Unix()),
		Expires:     client.Timestamp(now.Add(12 * time.Hour).Unix()),
		Description: "Sensitive groups should limit prolonged outdoor exertion.",
		URI:         "https://alerts.skyfeed.io/air-quality",
	}
	if math.Abs(loc.lat) >= 60 {
		alert.Title = "Extreme Cold Warning"
		alert.Regions = []string{"Polar region"}
		alert.Severity = "warning"
		alert.Expires = client.Timestamp(now.Add(24 * time.Hour).Unix())
		alert.Description = "Dangerously cold wind chills expected."
		alert.URI = "https://alerts.skyfeed.io/cold"
	}
	return []client.Alert{alert}
}

func currently(loc location, now time.Time) *client.CurrentConditions {
	r := sample(loc, now)
	return &client.CurrentConditions{
		Time:                 client.Timestamp(now.Unix()),
		Summary:              r.summary,
		Icon:                 r.icon,
		NearestStormDistance: 120,
		PrecipIntensity:      r.precipIntensity,
		PrecipProbability:    probability(r),
		PrecipType:           r.precipType,
		Temperature:          r.temperature,
		ApparentTemperature:  r.apparent,
		DewPoint:             r.dewPoint,
		Humidity:             r.humidity,
		Pressure:             r.pressure,
		WindSpeed:            r.windSpeed,
		WindGust:             r.windGust,
		WindBearing:          r.windBear,
		CloudCover:           r.cloudCover,
		UVIndex:              3,
		Visibility:           10,
		Ozone:                300,
	}
}

func hourly(loc location, now time.Time) *client.HourlyBlock {
	block := &client.HourlyBlock{Summary: "Forecast for the next 48 hours", Icon: "partly-cloudy-day"}
	for i := 0; i < 48; i++ {
		t := now.Add(time.Duration(i) * time.Hour)
		r := sample(loc, t)
		block.Data = append(block.Data, client.HourlyCondition{
			Time:                client.Timestamp(t.Unix()),
			Summary:             r.summary,
			Icon:                r.icon,
			PrecipIntensity:     r.precipIntensity,
			PrecipProbability:   probability(r),
			PrecipAccumulation:  r.precipIntensity,
			PrecipType:          r.precipType,
			Temperature:         r.temperature,
			ApparentTemperature: r.apparent,
			DewPoint:            r.dewPoint,
			Humidity:            r.humidity,
			Pressure:            r.pressure,
			WindSpeed:           r.windSpeed,
			WindGust:            r.windGust,
			WindBearing:         r.windBear,
			CloudCover:          r.cloudCover,
			UVIndex:             3,
			Visibility:          10,
			Ozone:               300,
		})
	}
	return block
}

func daily(loc location, now time.Time) *client.DailyBlock {
	block := &client.DailyBlock{Summary: "Forecast for the next 7 days", Icon: "partly-cloudy-day"}
	midnight := now.Truncate(24 * time.Hour)
	for d := 0; d < 7; d++ {
		day := midnight.Add(time.Duration(d) * 24 * time.Hour)
		high := sample(loc, day.Add(15*time.Hour))
		low := sample(loc, day.Add(3*time.Hour))
		noon := sample(loc, day.Add(12*time.Hour))
		block.Data = append(block.Data, client.DailyCondition{
			Time:                    client.Timestamp(day.Unix()),
			Summary:                 noon.summary,
			Icon:                    noon.icon,
			SunriseTime:             client.Timestamp(day.Add(6 * time.Hour).Unix()),
			SunsetTime:              client.Timestamp(day.Add(18 * time.Hour).Unix()),
			MoonPhase:               round(math.Mod(float64(day.YearDay())/29.53, 1), 2),
			PrecipIntensity:         noon.precipIntensity,
			PrecipIntensityMax:      math.Max(high.precipIntensity, low.precipIntensity),
			PrecipProbability:       probability(noon),
			PrecipAccumulation:      noon.precipIntensity * 24,
			PrecipType:              noon.precipType,
			TemperatureHigh:         high.temperature,
			TemperatureHighTime:     client.Timestamp(day.Add(15 * time.Hour).Unix()),
			TemperatureLow:          low.temperature,
			TemperatureLowTime:      client.Timestamp(day.Add(3 * time.Hour).Unix()),
			TemperatureMin:          low.temperature,
			TemperatureMax:          high.temperature,
			ApparentTemperatureHigh: high.apparent,
			ApparentTemperatureLow:  low.apparent,
			DewPoint:                noon.dewPoint,
			Humidity:                noon.humidity,
			Pressure:                noon.pressure,
			WindSpeed:               noon.windSpeed,
			WindGust:                noon.windGust,
			WindBearing:             noon.windBear,
			CloudCover:              noon.cloudCover,
			UVIndex:                 5,
			Visibility:              10,
		})
	}
	return block
}

func history(loc location, start, end int64) client.HistoricalData {
	data := client.HistoricalData{
		Latitude:  loc.lat,
		Longitude: loc.lon,
		Timezone:  "UTC",
		Elevation: 35,
		Hourly:    client.HistoricalHourlyBlock{Data: []client.HistoricalHourlyCondition{}},
	}

	for ts := start; ts <= end; ts += 3600 {
		t := time.Unix(ts, 0).UTC()
		r := sample(loc, t)
		data.Hourly.Data = append(data.Hourly.Data, client.HistoricalHourlyCondition{
			Time:                client.Timestamp(ts),
			Summary:             r.summary,
			Icon:                r.icon,
			PrecipIntensity:     r.precipIntensity,
			PrecipAccumulation:  r.precipIntensity,
			PrecipType:          r.precipType,
			Temperature:         r.temperature,
			ApparentTemperature: r.apparent,
			DewPoint:            r.dewPoint,
			Humidity:            r.humidity,
			Pressure:            r.pressure,
			WindSpeed:           r.windSpeed,
			WindGust:            r.windGust,
			WindBearing:         r.windBear,
			CloudCover:          r.cloudCover,
			Visibility:          10,
			SolarRadiation:      round(math.Max(0, 800*math.Sin(math.Pi*float64(t.Hour()-6)/12)), 1),
		})
	}
	return data
}
