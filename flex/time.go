package flex

import (
	"fmt"
	"strconv"
	"time"
)

// The v7 endpoints emit minute-precision timestamps such as
// "2020-06-30T22:00+08:00"; the newer air quality endpoints emit full
// ISO 8601. Time accepts both.
const (
	layoutMinute = "2006-01-02T15:04Z07:00"
	layoutDate   = "2006-01-02"
)

// Time wraps time.Time with the provider's timestamp formats.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	parsed, err := parseProviderTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	layout := layoutMinute
	if t.Second() != 0 || t.Nanosecond() != 0 {
		layout = time.RFC3339
	}
	return strconv.AppendQuote(nil, t.Format(layout)), nil
}

// NullTime is a Time whose field may legitimately be absent: null and the
// empty string decode to the invalid state.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullTime) UnmarshalJSON(data []byte) error {
	if emptyScalar(data) {
		*n = NullTime{}
		return nil
	}
	var t Time
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = NullTime{Time: t.Time, Valid: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n NullTime) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return Time{Time: n.Time}.MarshalJSON()
}

// Date is a calendar date in the provider's "2006-01-02" form.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	parsed, err := time.Parse(layoutDate, s)
	if err != nil {
		return fmt.Errorf("flex: %q is not a date", s)
	}
	d.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, d.Format(layoutDate)), nil
}

func parseProviderTime(s string) (time.Time, error) {
	if t, err := time.Parse(layoutMinute, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("flex: %q is not a timestamp", s)
	}
	return t, nil
}
