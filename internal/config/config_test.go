package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/tj/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	assert.Nil(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 4*time.Second, cfg.NoticeTTL)
	assert.Equal(t, 5*time.Minute, cfg.SeriesCacheTTL)
	assert.Equal(t, 2.0, cfg.NearbyRadiusKm)
	assert.Equal(t, "", cfg.ResyncSchedule)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_BASE_URL", "https://lluvias.example.org")
	t.Setenv("NOTICE_TTL", "6s")
	t.Setenv("RESYNC_SCHEDULE", "*/15 * * * *")
	t.Setenv("NEARBY_RADIUS_KM", "3.5")

	cfg, err := Load(viper.New(), "")
	assert.Nil(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://lluvias.example.org", cfg.APIBaseURL)
	assert.Equal(t, 6*time.Second, cfg.NoticeTTL)
	assert.Equal(t, "*/15 * * * *", cfg.ResyncSchedule)
	assert.Equal(t, 3.5, cfg.NearbyRadiusKm)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	err := os.WriteFile(path, []byte("origin: https://consola.example.org\napi_timeout: 30s\n"), 0o600)
	assert.Nil(t, err)

	cfg, err := Load(viper.New(), path)
	assert.Nil(t, err)
	assert.Equal(t, "https://consola.example.org", cfg.Origin)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)

	_, err = Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:       "8080",
		APIBaseURL: "http://localhost:5000",
		APITimeout: time.Second,
		NoticeTTL:  time.Second,
	}
	assert.Nil(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "relative base url", mutate: func(c *Config) { c.APIBaseURL = "/api" }},
		{name: "no timeout", mutate: func(c *Config) { c.APITimeout = 0 }},
		{name: "no notice ttl", mutate: func(c *Config) { c.NoticeTTL = -time.Second }},
		{name: "negative radius", mutate: func(c *Config) { c.NearbyRadiusKm = -1 }},
		{name: "bad schedule", mutate: func(c *Config) { c.ResyncSchedule = "every hour" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			assert.NotNil(t, c.Validate())
		})
	}
}
