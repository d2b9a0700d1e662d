package qweather

import (
	"github.com/foxzool/qweather-sdk/flex"
	"github.com/foxzool/qweather-sdk/jsonutil"
)

// Refer names the data sources and license terms for a response.
type Refer struct {
	Sources []string `json:"sources"`
	License []string `json:"license"`
}

// Envelope is the common response wrapper for the v7 and GeoAPI endpoints.
// The payload fields sit beside the envelope fields at the top level of the
// JSON object, so Data is decoded from the same bytes as the metadata.
//
// GeoAPI responses carry only Code and Refer; UpdateTime and FxLink are
// left in their zero state there.
type Envelope[T any] struct {
	Code       string
	UpdateTime flex.NullTime
	FxLink     string
	Refer      Refer
	Data       T
}

type envelopeMeta struct {
	Code       string        `json:"code"`
	UpdateTime flex.NullTime `json:"updateTime"`
	FxLink     string        `json:"fxLink"`
	Refer      Refer         `json:"refer"`
}

func decodeEnvelope[T any](body []byte) (*Envelope[T], error) {
	var meta envelopeMeta
	if err := jsonutil.Unmarshal(body, &meta); err != nil {
		return nil, err
	}
	var data T
	if err := jsonutil.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	return &Envelope[T]{
		Code:       meta.Code,
		UpdateTime: meta.UpdateTime,
		FxLink:     meta.FxLink,
		Refer:      meta.Refer,
		Data:       data,
	}, nil
}
