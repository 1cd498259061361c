package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Per-portal credential salts. A digest minted under one portal's salt
	// never verifies under another's.
	GuestSalt string `env:"GUEST_PORTAL_SALT, default=guest-portal-dev-salt"`
	StaffSalt string `env:"STAFF_PORTAL_SALT, default=staff-portal-dev-salt"`
	AdminSalt string `env:"ADMIN_PORTAL_SALT, default=admin-portal-dev-salt"`

	NotifyWorkers int `env:"NOTIFY_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=resort_portal"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// SMTPConfig configures booking notification mail. An empty Host disables
// real delivery; bookings are then logged instead of mailed.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM,  default=bookings@palmbayresort.example"`
	Inbox    string `env:"SMTP_INBOX, default=frontdesk@palmbayresort.example"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
