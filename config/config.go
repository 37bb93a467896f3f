package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DBDriver       string `envconfig:"DB_DRIVER" default:"postgres"` // postgres | sqlite
	DBURL          string `envconfig:"DB_URL" default:""`
	DirectoryStore string `envconfig:"DIRECTORY_STORE" default:"sql"` // sql | firestore

	FirebaseProjectID       string `envconfig:"FIREBASE_PROJECT_ID" default:""`
	FirebaseCredentialsPath string `envconfig:"FIREBASE_CREDENTIALS_PATH" default:""`

	JWTSecret      string `envconfig:"JWT_SECRET" default:""`
	JWTExpiryHours int    `envconfig:"JWT_EXPIRY_HOURS" default:"24"`

	TwilioAccountSID     string `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	TwilioAuthToken      string `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	TwilioPhoneNumber    string `envconfig:"TWILIO_PHONE_NUMBER" default:""`
	TwilioWhatsAppNumber string `envconfig:"TWILIO_WHATSAPP_NUMBER" default:""`
	DefaultCountryCode   string `envconfig:"DEFAULT_COUNTRY_CODE" default:"+92"`

	SendGridAPIKey  string `envconfig:"SENDGRID_API_KEY" default:""`
	DigestFromEmail string `envconfig:"DIGEST_FROM_EMAIL" default:""`

	ReminderSchedule     string        `envconfig:"REMINDER_SCHEDULE" default:"0 9 * * *"`
	AllowedOrigins       string        `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
	SlowRequestThreshold time.Duration `envconfig:"SLOW_REQUEST_THRESHOLD" default:"200ms"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver)
	}
	switch c.DirectoryStore {
	case "sql":
	case "firestore":
		if c.FirebaseCredentialsPath == "" && c.FirebaseProjectID == "" {
			return fmt.Errorf("DIRECTORY_STORE=firestore needs FIREBASE_CREDENTIALS_PATH or FIREBASE_PROJECT_ID")
		}
	default:
		return fmt.Errorf("DIRECTORY_STORE must be sql or firestore, got %q", c.DirectoryStore)
	}
	if c.JWTExpiryHours <= 0 {
		return fmt.Errorf("JWT_EXPIRY_HOURS must be positive")
	}
	return nil
}

func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c *Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != ""
}

func (c *Config) SendGridEnabled() bool {
	return c.SendGridAPIKey != "" && c.DigestFromEmail != ""
}
