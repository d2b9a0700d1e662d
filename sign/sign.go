package sign

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"sort"
	"strings"
)

const (
	// SignatureKey is the query parameter carrying the computed signature.
	SignatureKey = "sign"
	// CredentialKey is the legacy credential parameter. It never
	// participates in the canonical string.
	CredentialKey = "key"
)

// Canonical builds the canonical request string: parameters sorted by key
// byte-wise ascending and joined as k=v with "&". Parameters whose key is
// "sign" or "key" (case-insensitively) and parameters with an empty value
// are excluded, so re-signing a signed parameter set yields the same
// signature.
func Canonical(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" || strings.EqualFold(k, SignatureKey) || strings.EqualFold(k, CredentialKey) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

// Option configures a Signer.
type Option func(*Signer)

// WithDigest replaces the default MD5 digest constructor.
func WithDigest(newHash func() hash.Hash) Option {
	return func(s *Signer) {
		s.newHash = newHash
	}
}

// Signer computes request signatures with a fixed secret.
type Signer struct {
	secret  string
	newHash func() hash.Hash
}

// New returns a Signer for the given secret, hashing with MD5 unless
// WithDigest says otherwise.
func New(secret string, opts ...Option) *Signer {
	s := &Signer{
		secret:  secret,
		newHash: md5.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign canonicalises params, appends the secret and returns the lowercase
// hex digest.
func (s *Signer) Sign(params map[string]string) string {
	h := s.newHash()
	h.Write([]byte(Canonical(params)))
	h.Write([]byte(s.secret))
	return hex.EncodeToString(h.Sum(nil))
}
