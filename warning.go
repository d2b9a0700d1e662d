package qweather

import (
	"context"

	"github.com/foxzool/qweather-sdk/flex"
)

// Warning is an official severe weather warning.
type Warning struct {
	// ID uniquely identifies the warning and is stable across updates.
	ID string `json:"id"`
	// Sender is the issuing authority, sometimes empty.
	Sender  string    `json:"sender"`
	PubTime flex.Time `json:"pubTime"`
	Title   string    `json:"title"`
	// StartTime and EndTime bound the validity window, sometimes empty.
	StartTime flex.NullTime `json:"startTime"`
	EndTime   flex.NullTime `json:"endTime"`
	// Status is "active", "update" or "cancel".
	Status   string `json:"status"`
	Severity string `json:"severity"`
	// SeverityColor is the warning colour, e.g. "Blue", sometimes empty.
	SeverityColor string `json:"severityColor"`
	// Type is the warning type ID, TypeName its display name. See
	// https://dev.qweather.com/docs/resource/warning-info/
	Type      string `json:"type"`
	TypeName  string `json:"typeName"`
	Urgency   string `json:"urgency"`
	Certainty string `json:"certainty"`
	Text      string `json:"text"`
	// Related names the superseded warning when Status is "update" or
	// "cancel".
	Related string `json:"related"`
}

// WarningLocation is a city currently under warning.
type WarningLocation struct {
	LocationID string `json:"locationId"`
}

// WarningData is the payload of WeatherWarning.
type WarningData struct {
	Warning []Warning `json:"warning"`
}

// WarningCityData is the payload of WarningCityList.
type WarningCityData struct {
	WarningLocList []WarningLocation `json:"warningLocList"`
}

// WeatherWarning returns the active severe weather warnings for a
// location. An empty Warning slice means no active warning.
func (c *Client) WeatherWarning(ctx context.Context, location string) (*Envelope[WarningData], error) {
	return requestAPI[WarningData](ctx, c, c.apiHost+"/v7/warning/now", Params{
		"location": location,
	})
}

// WarningCityList returns the cities with active warnings in a country or
// region, given as an ISO 3166 code, e.g. "cn".
func (c *Client) WarningCityList(ctx context.Context, countryRange string) (*Envelope[WarningCityData], error) {
	return requestAPI[WarningCityData](ctx, c, c.apiHost+"/v7/warning/list", Params{
		"range": countryRange,
	})
}
