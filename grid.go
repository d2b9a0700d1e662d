package qweather

import (
	"context"
	"strconv"

	"github.com/foxzool/qweather-sdk/flex"
)

// GridCurrentWeather is an observed condition for a grid point.
type GridCurrentWeather struct {
	ObsTime   flex.Time      `json:"obsTime"`
	Temp      flex.Float     `json:"temp"`
	Icon      string         `json:"icon"`
	Text      string         `json:"text"`
	Wind360   flex.Float     `json:"wind360"`
	WindDir   string         `json:"windDir"`
	WindScale flex.Float     `json:"windScale"`
	WindSpeed flex.Float     `json:"windSpeed"`
	Humidity  flex.Float     `json:"humidity"`
	Precip    flex.Float     `json:"precip"`
	Pressure  flex.Float     `json:"pressure"`
	Cloud     flex.NullFloat `json:"cloud"`
	Dew       flex.NullFloat `json:"dew"`
}

// GridDailyForecast is a one-day forecast entry for a grid point.
type GridDailyForecast struct {
	FxDate  flex.Date  `json:"fxDate"`
	TempMax flex.Float `json:"tempMax"`
	TempMin flex.Float `json:"tempMin"`

	IconDay   string `json:"iconDay"`
	TextDay   string `json:"textDay"`
	IconNight string `json:"iconNight"`
	TextNight string `json:"textNight"`

	Wind360Day     flex.Float `json:"wind360Day"`
	WindDirDay     string     `json:"windDirDay"`
	WindScaleDay   string     `json:"windScaleDay"`
	WindSpeedDay   flex.Float `json:"windSpeedDay"`
	Wind360Night   flex.Float `json:"wind360Night"`
	WindDirNight   string     `json:"windDirNight"`
	WindScaleNight string     `json:"windScaleNight"`
	WindSpeedNight flex.Float `json:"windSpeedNight"`

	Precip   flex.Float `json:"precip"`
	Humidity flex.Float `json:"humidity"`
	Pressure flex.Float `json:"pressure"`
}

// GridWeatherNowData is the payload of GridWeatherNow.
type GridWeatherNowData struct {
	Now GridCurrentWeather `json:"now"`
}

// GridDailyList is the payload of GridWeatherDailyForecast.
type GridDailyList struct {
	Daily []GridDailyForecast `json:"daily"`
}

// GridWeatherNow returns the observed weather for an arbitrary coordinate,
// at 3-5 km grid resolution. The location is a "lon,lat" pair.
func (c *Client) GridWeatherNow(ctx context.Context, location string) (*Envelope[GridWeatherNowData], error) {
	return requestAPI[GridWeatherNowData](ctx, c, c.apiHost+"/v7/grid-weather/now", Params{
		"location": location,
	})
}

// GridWeatherDailyForecast returns the daily forecast for an arbitrary
// coordinate. day must be 3 or 7.
func (c *Client) GridWeatherDailyForecast(ctx context.Context, location string, day int) (*Envelope[GridDailyList], error) {
	if err := validateOneOf("day", day, 3, 7); err != nil {
		return nil, err
	}
	url := c.apiHost + "/v7/grid-weather/" + strconv.Itoa(day) + "d"
	return requestAPI[GridDailyList](ctx, c, url, Params{
		"location": location,
	})
}
