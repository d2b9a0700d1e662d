package qweather

import (
	"encoding/json"
	"fmt"

	"github.com/foxzool/qweather-sdk/jsonutil"
)

// Data is the payload of an endpoint whose response shape is not fixed.
// Variants carry no type tag on the wire; they are told apart by which
// top-level field is present.
type Data interface {
	isData()
}

// DailyList is a daily forecast payload.
type DailyList struct {
	Daily []DailyForecast `json:"daily"`
}

// HourlyList is an hourly forecast payload.
type HourlyList struct {
	Hourly []HourlyForecast `json:"hourly"`
}

// MinutelyList is a minutely precipitation payload.
type MinutelyList struct {
	Summary  string     `json:"summary"`
	Minutely []Minutely `json:"minutely"`
}

// LocationList is a GeoAPI city payload.
type LocationList struct {
	Location []Location `json:"location"`
}

// PoiList is a GeoAPI point-of-interest payload.
type PoiList struct {
	Poi []Location `json:"poi"`
}

func (*DailyList) isData()    {}
func (*HourlyList) isData()   {}
func (*MinutelyList) isData() {}
func (*LocationList) isData() {}
func (*PoiList) isData()      {}

// dataVariants maps a discriminating top-level field to its payload type.
// The order is part of the contract: the first present field wins.
var dataVariants = []struct {
	field string
	build func() Data
}{
	{"daily", func() Data { return &DailyList{} }},
	{"hourly", func() Data { return &HourlyList{} }},
	{"minutely", func() Data { return &MinutelyList{} }},
	{"location", func() Data { return &LocationList{} }},
	{"poi", func() Data { return &PoiList{} }},
}

// DataPayload resolves an untagged payload to one of the Data variants by
// probing field presence. Only the list fields named in dataVariants
// discriminate; secondary fields such as MinutelyList's summary do not.
type DataPayload struct {
	Data Data
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *DataPayload) UnmarshalJSON(body []byte) error {
	var fields map[string]json.RawMessage
	if err := jsonutil.Unmarshal(body, &fields); err != nil {
		return err
	}
	for _, v := range dataVariants {
		if _, ok := fields[v.field]; !ok {
			continue
		}
		data := v.build()
		if err := jsonutil.Unmarshal(body, data); err != nil {
			return err
		}
		p.Data = data
		return nil
	}
	return fmt.Errorf("payload matches no known shape")
}
