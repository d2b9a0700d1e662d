package qweather

import (
	"context"
	"fmt"
	"strconv"

	"github.com/foxzool/qweather-sdk/flex"
)

// AirMetadata describes the provenance of a v1 air quality response. The
// v1 family carries no common envelope; metadata sits inside the payload.
type AirMetadata struct {
	Tag     string   `json:"tag"`
	Sources []string `json:"sources"`
}

// RGBA is a colour in 0-255 channels.
type RGBA struct {
	Red   flex.Int `json:"red"`
	Green flex.Int `json:"green"`
	Blue  flex.Int `json:"blue"`
	Alpha flex.Int `json:"alpha"`
}

// AirIndex is an air quality index reading in one of the supported AQI
// standards, identified by Code ("us-epa", "qaqi", ...).
type AirIndex struct {
	Code string     `json:"code"`
	Name string     `json:"name"`
	AQI  flex.Float `json:"aqi"`
	// AQIDisplay is the value as the provider formats it.
	AQIDisplay string   `json:"aqiDisplay"`
	Level      flex.Int `json:"level"`
	Category   string   `json:"category"`
	Color      RGBA     `json:"color"`

	PrimaryPollutant *PrimaryPollutant `json:"primaryPollutant"`
	Health           *Health           `json:"health"`
}

// PrimaryPollutant names the dominant pollutant for an index reading.
type PrimaryPollutant struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
}

// Health is the health guidance attached to an index reading.
type Health struct {
	Effect string       `json:"effect"`
	Advice HealthAdvice `json:"advice"`
}

// HealthAdvice splits guidance by population.
type HealthAdvice struct {
	GeneralPopulation   string `json:"generalPopulation"`
	SensitivePopulation string `json:"sensitivePopulation"`
}

// Pollutant is a pollutant concentration reading.
type Pollutant struct {
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	FullName      string        `json:"fullName"`
	Concentration Concentration `json:"concentration"`
	SubIndexes    []SubIndex    `json:"subIndexes"`
}

// Concentration is a measured value with its unit.
type Concentration struct {
	Value flex.Float `json:"value"`
	Unit  string     `json:"unit"`
}

// SubIndex is a pollutant's contribution to one AQI standard.
type SubIndex struct {
	Code       string     `json:"code"`
	AQI        flex.Float `json:"aqi"`
	AQIDisplay string     `json:"aqiDisplay"`
}

// Station is a monitoring station associated with a reading.
type Station struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AirCurrent is the real-time air quality at a coordinate.
type AirCurrent struct {
	Metadata   AirMetadata `json:"metadata"`
	Indexes    []AirIndex  `json:"indexes"`
	Pollutants []Pollutant `json:"pollutants"`
	Stations   []Station   `json:"stations"`
}

// AirHourly is a 24-hour air quality forecast.
type AirHourly struct {
	Metadata AirMetadata      `json:"metadata"`
	Hours    []AirHourlyEntry `json:"hours"`
}

// AirHourlyEntry is one hour of an air quality forecast.
type AirHourlyEntry struct {
	ForecastTime flex.Time   `json:"forecastTime"`
	Indexes      []AirIndex  `json:"indexes"`
	Pollutants   []Pollutant `json:"pollutants"`
}

// AirDaily is a three-day air quality forecast.
type AirDaily struct {
	Metadata AirMetadata     `json:"metadata"`
	Days     []AirDailyEntry `json:"days"`
}

// AirDailyEntry is one day of an air quality forecast.
type AirDailyEntry struct {
	ForecastStartTime flex.Time   `json:"forecastStartTime"`
	ForecastEndTime   flex.Time   `json:"forecastEndTime"`
	Indexes           []AirIndex  `json:"indexes"`
	Pollutants        []Pollutant `json:"pollutants"`
}

// AirStationData is the pollutant readings of one monitoring station.
type AirStationData struct {
	Metadata   AirMetadata `json:"metadata"`
	Pollutants []Pollutant `json:"pollutants"`
}

// AirCurrent returns the real-time air quality at a coordinate, at 1 km
// resolution.
func (c *Client) AirCurrent(ctx context.Context, latitude, longitude float64) (*AirCurrent, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	url := c.apiHost + "/airquality/v1/current/" + formatCoord(latitude) + "/" + formatCoord(longitude)
	return requestPlain[AirCurrent](ctx, c, url, coordParams(latitude, longitude))
}

// AirHourlyForecast returns the next 24 hours of air quality at a
// coordinate.
func (c *Client) AirHourlyForecast(ctx context.Context, latitude, longitude float64) (*AirHourly, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	url := c.apiHost + "/airquality/v1/hourly/" + formatCoord(latitude) + "/" + formatCoord(longitude)
	return requestPlain[AirHourly](ctx, c, url, coordParams(latitude, longitude))
}

// AirDailyForecast returns the next three days of air quality at a
// coordinate.
func (c *Client) AirDailyForecast(ctx context.Context, latitude, longitude float64) (*AirDaily, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	url := c.apiHost + "/airquality/v1/daily/" + formatCoord(latitude) + "/" + formatCoord(longitude)
	return requestPlain[AirDaily](ctx, c, url, coordParams(latitude, longitude))
}

// AirStation returns the pollutant readings of a monitoring station,
// identified by its LocationID (e.g. "P58911").
func (c *Client) AirStation(ctx context.Context, locationID string) (*AirStationData, error) {
	url := c.apiHost + "/airquality/v1/station/" + locationID
	return requestPlain[AirStationData](ctx, c, url, Params{
		"location": locationID,
	})
}

func validateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return &ValidationError{
			Param:  "latitude",
			Detail: fmt.Sprintf("must be within [-90, 90], got %v", latitude),
		}
	}
	if longitude < -180 || longitude > 180 {
		return &ValidationError{
			Param:  "longitude",
			Detail: fmt.Sprintf("must be within [-180, 180], got %v", longitude),
		}
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func coordParams(latitude, longitude float64) Params {
	return Params{
		"latitude":  formatCoord(latitude),
		"longitude": formatCoord(longitude),
	}
}
