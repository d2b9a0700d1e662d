// Package flex contains tolerant scalar types for the provider's loosely
// typed JSON. Numeric and boolean fields arrive sometimes as JSON numbers,
// sometimes as strings containing a number, and optional fields may be an
// empty string instead of null. Every payload field decoder in the SDK goes
// through these types, so the string-or-number-or-empty rule is defined and
// tested in exactly one place.
//
// Required fields use Float, Int, Bool, Time and Date: an empty string, null,
// or an unparsable value is a decode error. Optional fields use NullFloat,
// NullInt and NullTime, which map empty strings and null to the invalid
// state instead.
package flex
