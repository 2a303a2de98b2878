package auth

import (
	"strings"
	"time"
)

// Cookie is a single browser cookie as exported by whatever user agent the
// session was established in. Expires is zero for session-only cookies.
type Cookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain"`
	Path     string    `json:"path"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure"`
	HTTPOnly bool      `json:"httpOnly"`
}

// SessionOnly reports whether the cookie has no expiry metadata at all.
func (c Cookie) SessionOnly() bool {
	return c.Expires.IsZero()
}

// Expired reports whether the cookie's expiry metadata has passed.
// Session-only cookies never report expired.
func (c Cookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && c.Expires.Before(now)
}

// Provider supplies cookies for outgoing requests. The embedded browser (or
// an exported cookie file standing in for it) owns the actual store; this
// layer only reads.
type Provider interface {
	AllCookies() ([]Cookie, error)
	CookiesForDomain(domain string) ([]Cookie, error)
}

// matchDomain implements the usual suffix rule: a cookie set for
// ".youtube.com" is sent to "music.youtube.com" and "youtube.com" alike.
func matchDomain(cookieDomain, host string) bool {
	d := strings.TrimPrefix(strings.ToLower(cookieDomain), ".")
	h := strings.ToLower(host)
	return h == d || strings.HasSuffix(h, "."+d)
}

// CookieHeader renders cookies into a Cookie request header value.
func CookieHeader(cookies []Cookie) string {
	var b strings.Builder
	for i, c := range cookies {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(c.Name)
		b.WriteByte('=')
		b.WriteString(c.Value)
	}
	return b.String()
}

// StaticProvider serves a fixed cookie set. Useful for embedding callers that
// already hold a session and for tests.
type StaticProvider struct {
	Set []Cookie
}

func (p *StaticProvider) AllCookies() ([]Cookie, error) {
	out := make([]Cookie, len(p.Set))
	copy(out, p.Set)
	return out, nil
}

func (p *StaticProvider) CookiesForDomain(domain string) ([]Cookie, error) {
	var out []Cookie
	for _, c := range p.Set {
		if matchDomain(c.Domain, domain) {
			out = append(out, c)
		}
	}
	return out, nil
}
