package qweather

import (
	"context"
	"strconv"

	"github.com/foxzool/qweather-sdk/flex"
)

// Location is a GeoAPI place: a city, district, or point of interest.
type Location struct {
	Name string `json:"name"`
	// ID is the LocationID used by the weather endpoints.
	ID  string     `json:"id"`
	Lat flex.Float `json:"lat"`
	Lon flex.Float `json:"lon"`
	// Adm2 and Adm1 are the parent administrative divisions.
	Adm2    string `json:"adm2"`
	Adm1    string `json:"adm1"`
	Country string `json:"country"`
	// Tz is the IANA time zone name.
	Tz        string    `json:"tz"`
	UtcOffset string    `json:"utcOffset"`
	IsDst     flex.Bool `json:"isDst"`
	// Type is the place category, e.g. "city" or "scenic".
	Type string `json:"type"`
	// Rank scores relevance for search results, see
	// https://dev.qweather.com/docs/resource/glossary/#rank
	Rank   flex.Int `json:"rank"`
	FxLink string   `json:"fxLink"`
}

// CityLookupRequest parameterises CityLookup. Location is required; the
// rest narrow the search and may be left zero.
type CityLookupRequest struct {
	// Location is a name (fuzzy matched), a "lon,lat" pair, a LocationID,
	// or an Adcode.
	Location string
	// Adm restricts matches to a parent administrative division,
	// disambiguating same-named cities.
	Adm string
	// Range restricts matches to an ISO 3166 country code.
	Range string
	// Number caps the result count, 1-20. The provider defaults to 10.
	Number int
}

// TopCitiesRequest parameterises TopCities.
type TopCitiesRequest struct {
	Range  string
	Number int
}

// POILookupRequest parameterises POILookup. Location and Type are required.
type POILookupRequest struct {
	Location string
	// Type is the POI category: "scenic", "CSTA" (tide) or "TSTA" (tidal
	// current).
	Type   string
	City   string
	Number int
}

// POIRangeRequest parameterises POIRange. Location and Type are required.
type POIRangeRequest struct {
	Location string
	Type     string
	// Radius is the search radius in kilometres, 1-50. The provider
	// defaults to 5.
	Radius float64
	Number int
}

// CityLookup searches the GeoAPI for cities and districts.
func (c *Client) CityLookup(ctx context.Context, req CityLookupRequest) (*Envelope[LocationList], error) {
	return requestAPI[LocationList](ctx, c, c.geoHost+"/v2/city/lookup", Params{
		"location": req.Location,
		"adm":      req.Adm,
		"range":    req.Range,
		"number":   formatCount(req.Number),
	})
}

// TopCities returns the most-viewed cities, optionally limited to one
// country.
func (c *Client) TopCities(ctx context.Context, req TopCitiesRequest) (*Envelope[LocationList], error) {
	return requestAPI[LocationList](ctx, c, c.geoHost+"/v2/city/top", Params{
		"range":  req.Range,
		"number": formatCount(req.Number),
	})
}

// POILookup searches points of interest by keyword.
func (c *Client) POILookup(ctx context.Context, req POILookupRequest) (*Envelope[PoiList], error) {
	return requestAPI[PoiList](ctx, c, c.geoHost+"/v2/poi/lookup", Params{
		"location": req.Location,
		"type":     req.Type,
		"city":     req.City,
		"number":   formatCount(req.Number),
	})
}

// POIRange searches points of interest around a coordinate.
func (c *Client) POIRange(ctx context.Context, req POIRangeRequest) (*Envelope[PoiList], error) {
	params := Params{
		"location": req.Location,
		"type":     req.Type,
		"number":   formatCount(req.Number),
	}
	if req.Radius > 0 {
		params["radius"] = strconv.FormatFloat(req.Radius, 'f', -1, 64)
	}
	return requestAPI[PoiList](ctx, c, c.geoHost+"/v2/poi/range", params)
}

// formatCount renders an optional positive count, mapping zero to the
// empty string so the parameter is omitted.
func formatCount(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
