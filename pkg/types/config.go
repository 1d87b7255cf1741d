package types

import (
	"errors"
	"fmt"
)

// Config holds the bucket names and logging level for a wardrobe session.
type Config struct {
	Seasons  []string `json:"seasons" yaml:"seasons" mapstructure:"seasons"`
	Types    []string `json:"types" yaml:"types" mapstructure:"types"`
	LogLevel string   `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Default bucket names used when config.yaml does not list any.
var (
	DefaultSeasons = []string{"Spring", "Summer", "Autumn", "Winter"}
	DefaultTypes   = []string{"Coat", "Top", "Bottom", "Dress", "Footwear", "Accessory"}
)

// DefaultLogLevel is the zerolog level used when none is configured.
const DefaultLogLevel = "warn"

// Config validation errors.
var (
	ErrInvalidBucketName = errors.New("bucket name must not be empty")
	ErrDuplicateBucket   = errors.New("duplicate bucket name")
)

// DefaultConfig returns a Config populated with the default bucket names.
func DefaultConfig() Config {
	return Config{
		Seasons:  append([]string(nil), DefaultSeasons...),
		Types:    append([]string(nil), DefaultTypes...),
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks that every season and type name is non-empty and unique
// within its dimension. Names are case-sensitive.
func (c Config) Validate() error {
	if err := validateNames("season", c.Seasons); err != nil {
		return err
	}
	return validateNames("type", c.Types)
}

func validateNames(dimension string, names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("%s: %w", dimension, ErrInvalidBucketName)
		}
		if seen[name] {
			return fmt.Errorf("%s %q: %w", dimension, name, ErrDuplicateBucket)
		}
		seen[name] = true
	}
	return nil
}
