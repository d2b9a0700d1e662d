package flex

import (
	"fmt"
	"strconv"
)

// Float is a float64 that accepts either a JSON number or a JSON string
// containing a number. Null and the empty string are decode errors; use
// NullFloat for fields the provider may leave empty.
type Float float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("flex: %q is not a number", s)
	}
	*f = Float(v)
	return nil
}

// MarshalJSON implements json.Marshaler, always emitting a JSON number.
func (f Float) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(f), 'f', -1, 64), nil
}

// Float64 returns the value as a plain float64.
func (f Float) Float64() float64 { return float64(f) }

// Int is an int64 that accepts either a JSON number or a JSON string
// containing an integer.
type Int int64

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*i = Int(v)
		return nil
	}
	// Some endpoints report integral quantities as "37.0".
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != float64(int64(v)) {
		return fmt.Errorf("flex: %q is not an integer", s)
	}
	*i = Int(int64(v))
	return nil
}

// MarshalJSON implements json.Marshaler, always emitting a JSON number.
func (i Int) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(i), 10), nil
}

// Int64 returns the value as a plain int64.
func (i Int) Int64() int64 { return int64(i) }

// NullFloat is a Float whose field may legitimately be absent: null and the
// empty string decode to the invalid state rather than failing.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if emptyScalar(data) {
		*n = NullFloat{}
		return nil
	}
	var f Float
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = NullFloat{Float64: float64(f), Valid: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return Float(n.Float64).MarshalJSON()
}

// NullInt is an Int whose field may legitimately be absent.
type NullInt struct {
	Int64 int64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullInt) UnmarshalJSON(data []byte) error {
	if emptyScalar(data) {
		*n = NullInt{}
		return nil
	}
	var i Int
	if err := i.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = NullInt{Int64: int64(i), Valid: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return Int(n.Int64).MarshalJSON()
}

// scalarText strips the quotes from a JSON string token, or returns a number
// token as-is. Null and the empty string are errors here; optional types
// check emptyScalar before calling.
func scalarText(data []byte) (string, error) {
	s := string(data)
	if s == "null" {
		return "", fmt.Errorf("flex: null for a required field")
	}
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return "", fmt.Errorf("flex: malformed string token %s", s)
		}
		if unquoted == "" {
			return "", fmt.Errorf("flex: empty string for a required field")
		}
		return unquoted, nil
	}
	return s, nil
}

func emptyScalar(data []byte) bool {
	s := string(data)
	return s == "null" || s == `""`
}
