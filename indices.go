package qweather

import (
	"context"
	"strconv"

	"github.com/foxzool/qweather-sdk/flex"
)

// IndexForecast is a life index forecast entry: sport, car washing, UV,
// and the like.
type IndexForecast struct {
	Date flex.Date `json:"date"`
	// Type is the index type ID, see
	// https://dev.qweather.com/docs/api/indices/
	Type  flex.Int `json:"type"`
	Name  string   `json:"name"`
	Level flex.Int `json:"level"`
	// Category is the display name of the level.
	Category string `json:"category"`
	// Text describes the forecast, sometimes empty.
	Text string `json:"text"`
}

// IndicesData is the payload of IndicesForecast.
type IndicesData struct {
	Daily []IndexForecast `json:"daily"`
}

// IndicesForecast returns life index forecasts for a location. indexType
// is the index type ID or a comma-separated list of IDs, with "0" meaning
// all types. day must be 1 or 3.
func (c *Client) IndicesForecast(ctx context.Context, location, indexType string, day int) (*Envelope[IndicesData], error) {
	if err := validateOneOf("day", day, 1, 3); err != nil {
		return nil, err
	}
	url := c.apiHost + "/v7/indices/" + strconv.Itoa(day) + "d"
	return requestAPI[IndicesData](ctx, c, url, Params{
		"location": location,
		"type":     indexType,
	})
}
