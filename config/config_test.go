package config_test

import (
	"testing"

	"portfolio-contact-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		t.Setenv("GMAIL_USER", "owner@gmail.com")
		t.Setenv("GMAIL_APP_PASSWORD", "app-password")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "5000", cfg.Port)
		assert.Equal(t, config.EnvDevelopment, cfg.Environment)
		assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
		assert.Equal(t, 587, cfg.SMTPPort)
		assert.False(t, cfg.SendAutoReply)
		assert.False(t, cfg.IsProduction())
		assert.True(t, cfg.MailConfigured())
		assert.Contains(t, cfg.AllowedOrigins, "http://localhost:3000")
		assert.Equal(t, "UTC", cfg.Location().String())
	})

	t.Run("Should fall back to sending account for recipient", func(t *testing.T) {
		t.Setenv("GMAIL_USER", "owner@gmail.com")
		t.Setenv("RECIPIENT_EMAIL", "")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "owner@gmail.com", cfg.Recipient())
	})

	t.Run("Should read overrides", func(t *testing.T) {
		t.Setenv("PORT", "8081")
		t.Setenv("APP_ENV", "Production")
		t.Setenv("RECIPIENT_EMAIL", "inbox@example.com")
		t.Setenv("SEND_AUTO_REPLY", "true")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example.com/, https://b.example.com")
		t.Setenv("DISPLAY_TIMEZONE", "Europe/Berlin")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8081", cfg.Port)
		assert.True(t, cfg.IsProduction())
		assert.True(t, cfg.SendAutoReply)
		assert.Equal(t, "inbox@example.com", cfg.Recipient())
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
		assert.Equal(t, "Europe/Berlin", cfg.Location().String())
	})

	t.Run("Should reject unknown transport", func(t *testing.T) {
		t.Setenv("MAIL_TRANSPORT", "carrier-pigeon")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("Should reject unknown timezone", func(t *testing.T) {
		t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
