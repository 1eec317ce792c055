package api

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndValidate(t *testing.T) {
	tokens := newTokenIssuer([]byte("secret"), time.Minute)

	signed, expiresAt, err := tokens.Issue()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	subject, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, adminSubject, subject)
}

func TestTokenExpires(t *testing.T) {
	tokens := newTokenIssuer([]byte("secret"), time.Minute)
	signed, _, err := tokens.Issue()
	require.NoError(t, err)

	tokens.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = tokens.Validate(signed)
	assert.ErrorIs(t, err, errs.ErrExpiredToken)
}

func TestTokenRejectsForeignSignatures(t *testing.T) {
	signed, _, err := newTokenIssuer([]byte("other"), time.Minute).Issue()
	require.NoError(t, err)

	_, err = newTokenIssuer([]byte("secret"), time.Minute).Validate(signed)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    tokenIssuerName,
		Subject:   adminSubject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = newTokenIssuer([]byte("secret"), time.Minute).Validate(none)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestSessionCookieHasNoMaxAge(t *testing.T) {
	s := newTestSite(t)

	resp, _ := s.postForm("/admin/login", url.Values{"password": {testPassword}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionName, cookies[0].Name)
	assert.Zero(t, cookies[0].MaxAge)
	assert.True(t, cookies[0].Expires.IsZero())
	assert.True(t, cookies[0].HttpOnly)
}

func TestMetricsCountLogins(t *testing.T) {
	s := newTestSite(t)
	s.login()

	resp, body := s.get("/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `portfolio_login_attempts_total{channel="form",success="true"}`)
	assert.Contains(t, body, "portfolio_http_request_duration_seconds")
}
