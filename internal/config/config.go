// Package config reads the console settings from the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Setting keys. Each is also read from the upper-cased environment variable.
const (
	KeyPort           = "port"
	KeyOrigin         = "origin"
	KeyAPIBaseURL     = "api_base_url"
	KeyAPITimeout     = "api_timeout"
	KeyNoticeTTL      = "notice_ttl"
	KeySeriesCacheTTL = "series_cache_ttl"
	KeyResyncSchedule = "resync_schedule"
	KeyNearbyRadiusKm = "nearby_radius_km"
	KeyLogLevel       = "log_level"
)

// Config holds the console settings.
type Config struct {
	Port           string
	Origin         string
	APIBaseURL     string
	APITimeout     time.Duration
	NoticeTTL      time.Duration
	SeriesCacheTTL time.Duration
	ResyncSchedule string
	NearbyRadiusKm float64
	LogLevel       string
}

// SetDefaults registers the default of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyOrigin, "*")
	v.SetDefault(KeyAPIBaseURL, "http://localhost:5000")
	v.SetDefault(KeyAPITimeout, 10*time.Second)
	v.SetDefault(KeyNoticeTTL, 4*time.Second)
	v.SetDefault(KeySeriesCacheTTL, 5*time.Minute)
	v.SetDefault(KeyResyncSchedule, "")
	v.SetDefault(KeyNearbyRadiusKm, 2.0)
	v.SetDefault(KeyLogLevel, "info")
}

// Load reads the settings into a Config. When file is not empty it is read
// first; environment variables override it.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		Port:           v.GetString(KeyPort),
		Origin:         v.GetString(KeyOrigin),
		APIBaseURL:     v.GetString(KeyAPIBaseURL),
		APITimeout:     v.GetDuration(KeyAPITimeout),
		NoticeTTL:      v.GetDuration(KeyNoticeTTL),
		SeriesCacheTTL: v.GetDuration(KeySeriesCacheTTL),
		ResyncSchedule: strings.TrimSpace(v.GetString(KeyResyncSchedule)),
		NearbyRadiusKm: v.GetFloat64(KeyNearbyRadiusKm),
		LogLevel:       v.GetString(KeyLogLevel),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings that would otherwise fail at first use.
func (c Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("port must not be empty"))
	}

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api base url %q must be an absolute url", c.APIBaseURL))
	}

	if c.APITimeout <= 0 {
		errs = append(errs, fmt.Errorf("api timeout must be positive, got %s", c.APITimeout))
	}
	if c.NoticeTTL <= 0 {
		errs = append(errs, fmt.Errorf("notice ttl must be positive, got %s", c.NoticeTTL))
	}
	if c.NearbyRadiusKm < 0 {
		errs = append(errs, fmt.Errorf("nearby radius must not be negative, got %v", c.NearbyRadiusKm))
	}

	if c.ResyncSchedule != "" {
		if _, err := cron.ParseStandard(c.ResyncSchedule); err != nil {
			errs = append(errs, fmt.Errorf("invalid resync schedule %q: %w", c.ResyncSchedule, err))
		}
	}

	return errors.Join(errs...)
}
