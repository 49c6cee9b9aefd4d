package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App  AppConfig
	JWT  JWTConfig
	HTTP HTTPConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	SeedDemo bool // load the demo fixtures at startup (development convenience)
}

// JWTConfig token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables (and optionally a
// .env file). Env vars take precedence. Expected names: APP_ENV, JWT_SECRET,
// HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env in the working directory).
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore if absent

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ca-admin-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			SeedDemo: getBool(v, "SEED_DEMO_DATA", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "ca-admin-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
