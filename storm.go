package qweather

import (
	"context"

	"github.com/foxzool/qweather-sdk/flex"
)

// StormForecastPoint is a forecast position of a tropical storm.
type StormForecastPoint struct {
	FxTime flex.Time  `json:"fxTime"`
	Lat    flex.Float `json:"lat"`
	Lon    flex.Float `json:"lon"`
	// Type is the storm classification, e.g. "TD" or "TS".
	Type     string     `json:"type"`
	Pressure flex.Float `json:"pressure"`
	// WindSpeed is the maximum wind speed near the centre.
	WindSpeed flex.Float `json:"windSpeed"`
	// MoveSpeed and the movement direction fields may be empty.
	MoveSpeed flex.NullFloat `json:"moveSpeed"`
	MoveDir   string         `json:"moveDir"`
	Move360   string         `json:"move360"`
}

// StormForecastData is the payload of StormForecast.
type StormForecastData struct {
	Forecast []StormForecastPoint `json:"forecast"`
}

// StormForecast returns the forecast track of a tropical storm. The storm
// ID comes from the storm list endpoint, e.g. "NP2018". The provider only
// serves this endpoint on the subscription host; construct the client with
// WithSubscription.
func (c *Client) StormForecast(ctx context.Context, stormID string) (*Envelope[StormForecastData], error) {
	return requestAPI[StormForecastData](ctx, c, c.apiHost+"/v7/tropical/storm-forecast", Params{
		"stormid": stormID,
	})
}
