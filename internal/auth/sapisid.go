package auth

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// The session secret lives in the __Secure-3PAPISID cookie on current
// sessions; older exports only carry SAPISID, which holds the same value.
const (
	primarySessionCookie  = "__Secure-3PAPISID"
	fallbackSessionCookie = "SAPISID"
)

var (
	// ErrNotAuthenticated means no session cookie exists at all.
	ErrNotAuthenticated = errors.New("not authenticated: no session cookie")

	// ErrAuthExpired means a session existed but is no longer accepted:
	// either the cookie's own expiry has passed or the server rejected it.
	ErrAuthExpired = errors.New("session expired")
)

// Signer derives the per-request SAPISIDHASH authorization value from the
// session cookie. The scheme proves possession of the secret without sending
// it outside the Cookie header: SHA1("{unix-ts} {secret} {origin}"), sent as
// "SAPISIDHASH {unix-ts}_{hex}". The timestamp is part of the digest, so the
// value must be recomputed for every request and never cached.
type Signer struct {
	provider Provider
	origin   string
	domain   string
	now      func() time.Time
}

func NewSigner(provider Provider, origin, domain string) *Signer {
	return &Signer{
		provider: provider,
		origin:   origin,
		domain:   domain,
		now:      time.Now,
	}
}

// Authorization returns the value for the Authorization header.
func (s *Signer) Authorization() (string, error) {
	secret, err := s.sessionSecret()
	if err != nil {
		return "", err
	}
	ts := s.now().Unix()
	return "SAPISIDHASH " + signature(ts, secret, s.origin), nil
}

func (s *Signer) sessionSecret() (string, error) {
	cookies, err := s.provider.CookiesForDomain(s.domain)
	if err != nil {
		return "", fmt.Errorf("reading cookies: %w", err)
	}

	found := false
	now := s.now()
	for _, name := range []string{primarySessionCookie, fallbackSessionCookie} {
		for _, c := range cookies {
			if c.Name != name {
				continue
			}
			found = true
			if c.Expired(now) {
				continue
			}
			return c.Value, nil
		}
	}
	if found {
		return "", ErrAuthExpired
	}
	return "", ErrNotAuthenticated
}

func signature(ts int64, secret, origin string) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%d %s %s", ts, secret, origin)))
	return fmt.Sprintf("%d_%s", ts, hex.EncodeToString(sum[:]))
}
