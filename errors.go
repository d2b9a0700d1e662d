package qweather

import "fmt"

// codeOK is the provider status code for a successful response. Some
// endpoints (GeoAPI, the v1 air quality family) omit the code entirely on
// success; an absent code is treated the same as codeOK.
const codeOK = "200"

// TransportError reports a failure before a well-formed provider response
// was obtained: connection errors, context cancellation, or a body that is
// not JSON.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("qweather: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderError carries a non-success status code returned by the provider,
// verbatim. See https://dev.qweather.com/docs/resource/status-code/ for the
// code meanings.
type ProviderError struct {
	Code string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("qweather: provider returned code %s", e.Code)
}

// DecodeError reports a response the provider marked successful whose
// payload did not decode into the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("qweather: decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError reports an invalid argument rejected before any network
// request was made.
type ValidationError struct {
	Param  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("qweather: invalid %s: %s", e.Param, e.Detail)
}

func validateOneOf(param string, got int, allowed ...int) error {
	for _, v := range allowed {
		if got == v {
			return nil
		}
	}
	return &ValidationError{
		Param:  param,
		Detail: fmt.Sprintf("must be one of %v, got %d", allowed, got),
	}
}
