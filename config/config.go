package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	TransportSMTP = "smtp"
	TransportLog  = "log"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"5000"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"debug"`

	// Mail transport (Gmail SMTP by default, authenticated with an app password)
	MailTransport  string `env:"MAIL_TRANSPORT" envDefault:"smtp"`
	SMTPHost       string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername   string `env:"GMAIL_USER"`
	SMTPPassword   string `env:"GMAIL_APP_PASSWORD"`
	RecipientEmail string `env:"RECIPIENT_EMAIL"`
	SendAutoReply  bool   `env:"SEND_AUTO_REPLY" envDefault:"false"`

	// Persona used to sign acknowledgment emails
	OwnerName       string `env:"OWNER_NAME" envDefault:"Mordecai"`
	OwnerTitle      string `env:"OWNER_TITLE" envDefault:"Full-Stack Developer"`
	DisplayTimezone string `env:"DISPLAY_TIMEZONE" envDefault:"UTC"`

	// HTTP
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,https://my-portfolio-853e1.web.app,https://your-firebase-app.firebaseapp.com,https://yourdomain.com"`
	BodyLimitBytes int64    `env:"BODY_LIMIT_BYTES" envDefault:"10485760"`
	SwaggerEnabled bool     `env:"SWAGGER_ENABLED" envDefault:"true"`

	location *time.Location
}

// LoadConfig reads .env (when present) and the process environment once.
func LoadConfig() (*Config, error) {
	// Missing .env is expected outside local development
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	cfg.MailTransport = strings.ToLower(strings.TrimSpace(cfg.MailTransport))
	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimRight(strings.TrimSpace(origin), "/")
	}

	switch cfg.MailTransport {
	case TransportSMTP, TransportLog:
	default:
		return nil, fmt.Errorf("unsupported MAIL_TRANSPORT %q", cfg.MailTransport)
	}

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", cfg.DisplayTimezone, err)
	}
	cfg.location = loc

	return cfg, nil
}

// IsProduction reports whether error details must be hidden from clients.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Recipient returns the notification address, falling back to the sending account.
func (c *Config) Recipient() string {
	if r := strings.TrimSpace(c.RecipientEmail); r != "" {
		return r
	}
	return c.SMTPUsername
}

// Location is the zone used when printing timestamps in emails.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// MailConfigured checks if SMTP credentials are present.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
}
