package qweather

import (
	"context"
	"strconv"

	"github.com/foxzool/qweather-sdk/flex"
)

// CurrentWeather is an observed weather condition.
type CurrentWeather struct {
	// ObsTime is the observation time.
	ObsTime flex.Time `json:"obsTime"`
	// Temp is the air temperature in degrees Celsius (metric units).
	Temp      flex.Float `json:"temp"`
	FeelsLike flex.Float `json:"feelsLike"`
	// Icon is a weather icon code, see
	// https://dev.qweather.com/docs/resource/icons/
	Icon string `json:"icon"`
	// Text is the human-readable condition.
	Text      string     `json:"text"`
	Wind360   flex.Float `json:"wind360"`
	WindDir   string     `json:"windDir"`
	WindScale flex.Float `json:"windScale"`
	// WindSpeed is in km/h.
	WindSpeed flex.Float `json:"windSpeed"`
	// Humidity is relative humidity in percent.
	Humidity flex.Float `json:"humidity"`
	// Precip is precipitation in the current hour, millimetres.
	Precip   flex.Float `json:"precip"`
	Pressure flex.Float `json:"pressure"`
	// Vis is visibility in kilometres.
	Vis flex.Float `json:"vis"`
	// Cloud is cloud cover in percent, sometimes absent.
	Cloud flex.NullFloat `json:"cloud"`
	// Dew is the dew point, sometimes absent.
	Dew flex.NullFloat `json:"dew"`
}

// DailyForecast is a one-day forecast entry.
type DailyForecast struct {
	FxDate flex.Date `json:"fxDate"`
	// Sunrise and Sunset may be empty at high latitudes.
	Sunrise       string `json:"sunrise"`
	Sunset        string `json:"sunset"`
	Moonrise      string `json:"moonrise"`
	Moonset       string `json:"moonset"`
	MoonPhase     string `json:"moonPhase"`
	MoonPhaseIcon string `json:"moonPhaseIcon"`

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

	Precip   flex.Float     `json:"precip"`
	UVIndex  flex.Float     `json:"uvIndex"`
	Humidity flex.Float     `json:"humidity"`
	Pressure flex.Float     `json:"pressure"`
	Vis      flex.Float     `json:"vis"`
	Cloud    flex.NullFloat `json:"cloud"`
}

// HourlyForecast is a one-hour forecast entry.
type HourlyForecast struct {
	FxTime    flex.Time  `json:"fxTime"`
	Temp      flex.Float `json:"temp"`
	Icon      string     `json:"icon"`
	Text      string     `json:"text"`
	Wind360   flex.Float `json:"wind360"`
	WindDir   string     `json:"windDir"`
	WindScale flex.Float `json:"windScale"`
	WindSpeed flex.Float `json:"windSpeed"`
	Humidity  flex.Float `json:"humidity"`
	// Pop is the probability of precipitation in percent, sometimes absent.
	Pop      flex.NullFloat `json:"pop"`
	Precip   flex.Float     `json:"precip"`
	Pressure flex.Float     `json:"pressure"`
	Cloud    flex.NullFloat `json:"cloud"`
	Dew      flex.NullFloat `json:"dew"`
}

// WeatherNowData is the payload of WeatherNow.
type WeatherNowData struct {
	Now CurrentWeather `json:"now"`
}

// WeatherNow returns the observed weather for a location. The location is
// a LocationID or a "lon,lat" coordinate pair.
func (c *Client) WeatherNow(ctx context.Context, location string) (*Envelope[WeatherNowData], error) {
	return requestAPI[WeatherNowData](ctx, c, c.apiHost+"/v7/weather/now", Params{
		"location": location,
	})
}

// WeatherDailyForecast returns the daily forecast for a location. day must
// be 3, 7, 10, 15 or 30.
func (c *Client) WeatherDailyForecast(ctx context.Context, location string, day int) (*Envelope[DailyList], error) {
	if err := validateOneOf("day", day, 3, 7, 10, 15, 30); err != nil {
		return nil, err
	}
	url := c.apiHost + "/v7/weather/" + strconv.Itoa(day) + "d"
	return requestAPI[DailyList](ctx, c, url, Params{
		"location": location,
	})
}

// WeatherHourlyForecast returns the hourly forecast for a location. hour
// must be 24, 72 or 168. The payload shape varies by plan, so the envelope
// carries a DataPayload resolved by field presence; for this endpoint it is
// normally a *HourlyList.
func (c *Client) WeatherHourlyForecast(ctx context.Context, location string, hour int) (*Envelope[DataPayload], error) {
	if err := validateOneOf("hour", hour, 24, 72, 168); err != nil {
		return nil, err
	}
	url := c.apiHost + "/v7/weather/" + strconv.Itoa(hour) + "h"
	return requestAPI[DataPayload](ctx, c, url, Params{
		"location": location,
	})
}
