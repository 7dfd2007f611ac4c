// Package config loads client settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL     = "http://localhost:3333"
	DefaultAPITimeout = 10 * time.Second
)

// Coordinate is a configured device position
type Coordinate struct {
	Latitude  float64 `validate:"min=-90,max=90"`
	Longitude float64 `validate:"min=-180,max=180"`
}

// Config holds the terminal client settings
type Config struct {
	APIURL     string        `validate:"required,url"`
	APITimeout time.Duration `validate:"gt=0"`
	// Location is nil when no position was granted to the client.
	Location *Coordinate `validate:"omitempty"`
	LogFile  string
	LogLevel string `validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Load reads .env (when present) and the NEARBY_* environment variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	loc, err := ParseCoordinate(String("NEARBY_LOCATION", ""))
	if err != nil {
		return Config{}, fmt.Errorf("NEARBY_LOCATION: %w", err)
	}

	cfg := Config{
		APIURL:     strings.TrimRight(String("NEARBY_API_URL", DefaultAPIURL), "/"),
		APITimeout: Duration("NEARBY_API_TIMEOUT", DefaultAPITimeout),
		Location:   loc,
		LogFile:    String("NEARBY_LOG_FILE", ""),
		LogLevel:   strings.ToLower(String("NEARBY_LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ParseCoordinate parses "lat,lon". An empty string yields nil.
func ParseCoordinate(raw string) (*Coordinate, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid coordinate %q; expected lat,lon", raw)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude: %w", err)
	}
	return &Coordinate{Latitude: lat, Longitude: lon}, nil
}
