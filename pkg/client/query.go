package client

import (
	"net/url"
	"strconv"
	"strings"
)

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// weatherQuery builds lat, lon, units and, when parts were requested, parts
func weatherQuery(req WeatherRequest, units Units) url.Values {
	q := url.Values{}
	q.Set("lat", formatCoordinate(req.Lat))
	q.Set("lon", formatCoordinate(req.Lon))
	q.Set("units", units.String())

	if len(req.Parts) > 0 {
		names := make([]string, 0, len(req.Parts))
		for _, p := range req.Parts {
			names = append(names, p.String())
		}
		q.Set("parts", strings.Join(names, ","))
	}
	return q
}

// historicalQuery builds exactly lat, lon, start, end and units
func historicalQuery(req HistoricalRequest, units Units) url.Values {
	q := url.Values{}
	q.Set("lat", formatCoordinate(req.Lat))
	q.Set("lon", formatCoordinate(req.Lon))
	q.Set("start", strconv.FormatInt(req.Start, 10))
	q.Set("end", strconv.FormatInt(req.End, 10))
	q.Set("units", units.String())
	return q
}
