package qweather

import (
	"context"

	"github.com/foxzool/qweather-sdk/flex"
)

// Minutely is a five-minute precipitation forecast entry.
type Minutely struct {
	FxTime flex.Time `json:"fxTime"`
	// Precip is the five-minute accumulated precipitation in millimetres.
	Precip flex.Float `json:"precip"`
	// Type is "rain" or "snow".
	Type string `json:"type"`
}

// MinutelyPrecipitation returns the next two hours of precipitation at
// five-minute resolution, China only. The location is a "lon,lat" pair.
func (c *Client) MinutelyPrecipitation(ctx context.Context, location string) (*Envelope[MinutelyList], error) {
	return requestAPI[MinutelyList](ctx, c, c.apiHost+"/v7/minutely/5m", Params{
		"location": location,
	})
}
