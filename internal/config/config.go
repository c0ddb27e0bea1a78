package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/takasapp/takas-admin-api/internal/dataset"
)

// Config holds runtime configuration values for the admin API service.
type Config struct {
	AppName string
	AppEnv  string
	AppPort string

	MockSeed          int64
	MockUsers         int
	MockProducts      int
	MockOffers        int
	MockThreads       int
	MockMessages      int
	MockNotifications int
	MockReports       int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// MockOptions maps the configured seed and entity counts onto generation
// options.
func (c Config) MockOptions() dataset.Options {
	return dataset.Options{
		Seed:          c.MockSeed,
		Users:         c.MockUsers,
		Products:      c.MockProducts,
		Offers:        c.MockOffers,
		Threads:       c.MockThreads,
		Messages:      c.MockMessages,
		Notifications: c.MockNotifications,
		Reports:       c.MockReports,
	}
}

// Load reads configuration values from environment variables and an
// optional .env file. Malformed generation sizes fail here, before any
// snapshot is built.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TAKAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := dataset.DefaultOptions()

	v.SetDefault("app.name", "Takas Admin API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("mock.seed", defaults.Seed)
	v.SetDefault("mock.users", defaults.Users)
	v.SetDefault("mock.products", defaults.Products)
	v.SetDefault("mock.offers", defaults.Offers)
	v.SetDefault("mock.threads", defaults.Threads)
	v.SetDefault("mock.messages", defaults.Messages)
	v.SetDefault("mock.notifications", defaults.Notifications)
	v.SetDefault("mock.reports", defaults.Reports)

	cfg := Config{
		AppName: v.GetString("app.name"),
		AppEnv:  v.GetString("app.env"),
		AppPort: v.GetString("app.port"),

		MockSeed:          v.GetInt64("mock.seed"),
		MockUsers:         v.GetInt("mock.users"),
		MockProducts:      v.GetInt("mock.products"),
		MockOffers:        v.GetInt("mock.offers"),
		MockThreads:       v.GetInt("mock.threads"),
		MockMessages:      v.GetInt("mock.messages"),
		MockNotifications: v.GetInt("mock.notifications"),
		MockReports:       v.GetInt("mock.reports"),
	}

	if err := cfg.MockOptions().Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid mock data configuration: %w", err)
	}

	return cfg, nil
}
