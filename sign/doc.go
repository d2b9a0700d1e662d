// Package sign implements the provider's request signature scheme. The
// query parameters are canonicalised into a sorted k=v& string, the caller's
// private key is appended, and the result is hashed to a lowercase hex
// digest that travels as the "sign" parameter.
//
// The provider documents MD5 as the digest. The algorithm is pluggable via
// WithDigest so a different hash can be swapped in without touching the
// canonicalisation rules; the digest is not a secrecy boundary here, it is
// an API contract with the provider.
package sign
