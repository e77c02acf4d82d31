package mailer

import (
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-optimizer/internal/config"
)

func TestSendPasswordReset_DevMode(t *testing.T) {
	m := New(&config.SMTPConfig{Port: 587}) // no host = dev mode

	err := m.SendPasswordReset("user@example.com", "token-123")
	require.NoError(t, err)
}

func TestSendPasswordReset_UsesSMTP(t *testing.T) {
	cfg := &config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "noreply@example.com",
	}

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := New(cfg)
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg
		return nil
	}

	err := m.SendPasswordReset("user@example.com", "token-123")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "noreply@example.com", gotFrom)
	assert.Equal(t, []string{"user@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Password reset request")
	assert.Contains(t, string(gotMsg), "token-123")
}

func TestBuildMessage_Headers(t *testing.T) {
	msg := string(buildMessage("a@example.com", "b@example.com", "Hello", "body text"))
	assert.Contains(t, msg, "From: a@example.com\r\n")
	assert.Contains(t, msg, "To: b@example.com\r\n")
	assert.Contains(t, msg, "\r\n\r\nbody text")
}
