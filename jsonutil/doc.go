// Package jsonutil provides thin wrappers around sonic for the encoding and
// decoding work the SDK does on every response. Centralising the calls here
// keeps the rest of the module free of a direct sonic dependency and makes it
// trivial to swap the underlying codec.
package jsonutil
