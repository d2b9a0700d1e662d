package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"
)

// api is configured for std compatibility so that custom Unmarshaler
// implementations (the flex scalar types) behave exactly as they would with
// encoding/json.
var api = sonic.ConfigStd

// Marshal serialises v into a JSON byte slice.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent serialises v with the supplied prefix and indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses JSON data into v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// Encode streams the JSON encoding of v into w.
func Encode(w io.Writer, v any) error {
	return api.NewEncoder(w).Encode(v)
}

// Decode parses a single JSON value from r into v.
func Decode(r io.Reader, v any) error {
	return api.NewDecoder(r).Decode(v)
}
