package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordChangeNotifierDisabledWithoutConfig(t *testing.T) {
	n := NewPasswordChangeNotifier(map[string]string{"RESEND_API_KEY": "key"})
	assert.IsType(t, noopNotifier{}, n)
	assert.NoError(t, n.NotifyPasswordChanged(context.Background(), time.Now()))
}

func TestEmailNotifierSendsThroughResend(t *testing.T) {
	var got ResendEmailRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer srv.Close()

	n := NewPasswordChangeNotifier(map[string]string{
		"RESEND_API_KEY":     "re_test",
		"RESEND_FROM_EMAIL":  "Site <site@example.com>",
		"RESEND_API_URL":     srv.URL,
		"ADMIN_NOTIFY_EMAIL": "owner@example.com",
	})
	require.IsType(t, emailNotifier{}, n)

	require.NoError(t, n.NotifyPasswordChanged(context.Background(), time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, []string{"owner@example.com"}, got.To)
	assert.Equal(t, "Site <site@example.com>", got.From)
	assert.Contains(t, got.Html, "01 Mar 2024")
}

func TestSendEmailReportsResendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	mailer, ok := NewMailer(map[string]string{
		"RESEND_API_KEY":    "re_test",
		"RESEND_FROM_EMAIL": "bad",
		"RESEND_API_URL":    srv.URL,
	})
	require.True(t, ok)

	err := mailer.SendEmail(context.Background(), "s", "b", []string{"a@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from address")

	assert.Error(t, mailer.SendEmail(context.Background(), "s", "b", nil))
}
