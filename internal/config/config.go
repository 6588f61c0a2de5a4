// Package config loads service settings from a YAML file with environment
// overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/charts"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/services"
)

// Storage drivers.
const (
	DriverCSV    = "csv"
	DriverSQLite = "sqlite"
)

// Config is the on-disk configuration.
type Config struct {
	Server    Server                         `yaml:"server"`
	Storage   Storage                        `yaml:"storage"`
	Spotify   Spotify                        `yaml:"spotify"`
	Tropes    []string                       `yaml:"tropes"`
	RankViews []RankView                     `yaml:"rank_views"`
	Palette   map[string]charts.SchoolColors `yaml:"palette"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Storage struct {
	Driver     string `yaml:"driver"`
	CSVPath    string `yaml:"csv_path"`
	SQLitePath string `yaml:"sqlite_path"`
}

// Spotify holds client credentials. They are normally supplied through the
// environment rather than the file.
type Spotify struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	BaseURL      string `yaml:"base_url"`
	TokenURL     string `yaml:"token_url"`
}

// Enabled reports whether credentials are present.
func (s Spotify) Enabled() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

// RankView is a charts.RankView whose metric is named by column.
type RankView struct {
	charts.RankView `yaml:",inline"`
	Metric          string `yaml:"metric"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:  Server{Addr: ":8080"},
		Storage: Storage{Driver: DriverCSV, CSVPath: "data/fight_songs.csv", SQLitePath: "fightsongs.db"},
	}
}

// Load reads path (if non-empty) over the defaults, then applies environment
// overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(bytes.NewReader(b), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode rejects unknown keys so typos surface at startup.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Server.Addr, "FIGHTSONGS_ADDR")
	set(&c.Storage.Driver, "FIGHTSONGS_STORAGE_DRIVER")
	set(&c.Storage.CSVPath, "FIGHTSONGS_DATA_PATH")
	set(&c.Storage.SQLitePath, "FIGHTSONGS_DB_PATH")
	set(&c.Spotify.ClientID, "SPOTIFY_CLIENT_ID")
	set(&c.Spotify.ClientSecret, "SPOTIFY_CLIENT_SECRET")
}

// Validate checks the storage driver and that every configured name resolves.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverCSV, DriverSQLite:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	if _, err := c.Settings(); err != nil {
		return err
	}
	for school, colors := range c.Palette {
		if _, err := charts.ParseColor(colors.Primary); colors.Primary != "" && err != nil {
			log.Printf("WARN config: %s primary colour %q is not a hex or rgb() value", school, colors.Primary)
		}
	}
	return nil
}

// Settings converts the file's names into the dashboard's typed settings.
// Empty sections fall back to the built-in trope order and rank views.
func (c Config) Settings() (services.Settings, error) {
	var s services.Settings

	if len(c.Tropes) > 0 {
		tropes, err := domain.ParseTropes(c.Tropes)
		if err != nil {
			return services.Settings{}, fmt.Errorf("config: tropes: %w", err)
		}
		s.Tropes = tropes
	}

	if len(c.RankViews) > 0 {
		s.RankViews = make(charts.RankViews, 0, len(c.RankViews))
		for i, rv := range c.RankViews {
			m, err := domain.ParseMetric(rv.Metric)
			if err != nil {
				return services.Settings{}, fmt.Errorf("config: rank_views[%d]: %w", i, err)
			}
			if rv.Key == "" {
				return services.Settings{}, fmt.Errorf("config: rank_views[%d]: key is required", i)
			}
			if rv.TickStep < 0 {
				return services.Settings{}, fmt.Errorf("config: rank_views[%d]: %w", i, domain.ErrInvalidStep)
			}
			view := rv.RankView
			view.Metric = m
			if view.AxisMode == "" {
				view.AxisMode = charts.AxisValue
			}
			s.RankViews = append(s.RankViews, view)
		}
	}

	s.Palette = charts.NewPalette(c.Palette)
	return s, nil
}
