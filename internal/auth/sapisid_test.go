package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "https://music.youtube.com"

func fixedNow() time.Time {
	return time.Unix(1702483200, 0)
}

func newTestSigner(cookies []Cookie) *Signer {
	s := NewSigner(&StaticProvider{Set: cookies}, testOrigin, "music.youtube.com")
	s.now = fixedNow
	return s
}

func TestSignature_Golden(t *testing.T) {
	got := signature(1702483200, "xyzSecretValue", testOrigin)
	assert.Equal(t, "1702483200_0410118386967659548ed619b92915edd077afb7", got)
}

func TestSignature_InputsChangeOutput(t *testing.T) {
	base := signature(1702483200, "xyzSecretValue", testOrigin)

	assert.NotEqual(t, base, signature(1702483201, "xyzSecretValue", testOrigin))
	assert.NotEqual(t, base, signature(1702483200, "otherSecret", testOrigin))
	assert.NotEqual(t, base, signature(1702483200, "xyzSecretValue", "https://www.youtube.com"))
}

func TestAuthorization_UsesPrimaryCookie(t *testing.T) {
	s := newTestSigner([]Cookie{
		{Name: "SAPISID", Value: "fallback", Domain: ".youtube.com"},
		{Name: "__Secure-3PAPISID", Value: "xyzSecretValue", Domain: ".youtube.com"},
	})

	got, err := s.Authorization()
	require.NoError(t, err)
	assert.Equal(t, "SAPISIDHASH 1702483200_0410118386967659548ed619b92915edd077afb7", got)
}

func TestAuthorization_FallsBackToSAPISID(t *testing.T) {
	s := newTestSigner([]Cookie{
		{Name: "SAPISID", Value: "xyzSecretValue", Domain: ".youtube.com"},
	})

	got, err := s.Authorization()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "SAPISIDHASH 1702483200_"))
}

func TestAuthorization_NoSessionCookie(t *testing.T) {
	s := newTestSigner([]Cookie{
		{Name: "PREF", Value: "hl=en", Domain: ".youtube.com"},
	})

	_, err := s.Authorization()
	assert.True(t, errors.Is(err, ErrNotAuthenticated))
}

func TestAuthorization_ExpiredSessionCookie(t *testing.T) {
	s := newTestSigner([]Cookie{
		{
			Name:    "__Secure-3PAPISID",
			Value:   "stale",
			Domain:  ".youtube.com",
			Expires: fixedNow().Add(-time.Hour),
		},
	})

	_, err := s.Authorization()
	assert.True(t, errors.Is(err, ErrAuthExpired))
}

func TestAuthorization_ExpiredPrimaryUsesLiveFallback(t *testing.T) {
	s := newTestSigner([]Cookie{
		{
			Name:    "__Secure-3PAPISID",
			Value:   "stale",
			Domain:  ".youtube.com",
			Expires: fixedNow().Add(-time.Hour),
		},
		{Name: "SAPISID", Value: "stillGood", Domain: ".youtube.com"},
	})

	_, err := s.Authorization()
	assert.NoError(t, err)
}

func TestAuthorization_WrongDomainIsInvisible(t *testing.T) {
	s := newTestSigner([]Cookie{
		{Name: "__Secure-3PAPISID", Value: "secret", Domain: ".example.com"},
	})

	_, err := s.Authorization()
	assert.True(t, errors.Is(err, ErrNotAuthenticated))
}
