package flex

import (
	"fmt"
	"strconv"
	"strings"
)

// Bool normalises the provider's boolean encodings: native true/false,
// "true"/"false" in any casing, "0"/"1", and the numbers 0/1.
type Bool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bool) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "true", "1":
		*b = true
		return nil
	case "false", "0":
		*b = false
		return nil
	}
	// Tolerate other numeric encodings: any non-zero value is true.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*b = v != 0
		return nil
	}
	return fmt.Errorf("flex: %q is not a boolean", s)
}

// MarshalJSON implements json.Marshaler, always emitting a JSON boolean.
func (b Bool) MarshalJSON() ([]byte, error) {
	return strconv.AppendBool(nil, bool(b)), nil
}

// Bool returns the value as a plain bool.
func (b Bool) Bool() bool { return bool(b) }
