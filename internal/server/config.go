package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/prasdif/calculator/internal/config"
	"github.com/prasdif/calculator/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of calculator-server.
type Config struct {
	Address     string               `yaml:"address"`
	MaxBodySize string               `yaml:"maxBodySize"`
	RatesFile   string               `yaml:"ratesFile"`
	Logging     config.LoggingConfig `yaml:"logging"`

	bodyLimit int64
}

func defaultConfig() *Config {
	c := &Config{Address: constants.DefaultServerAddress}
	c.SetBodySizeBytes(constants.DefaultMaxBodySizeBytes)
	return c
}

// LoadConfig reads the server settings at path. An empty path or a missing
// file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return c, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	limit, err := ParseSize(c.MaxBodySize)
	if err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = constants.DefaultMaxBodySizeBytes
	}
	c.bodyLimit = limit
	return c, nil
}

// BodySizeBytes is the request body limit in bytes.
func (c *Config) BodySizeBytes() int64 { return c.bodyLimit }

// SetBodySizeBytes replaces the request body limit. Non-positive sizes are
// ignored.
func (c *Config) SetBodySizeBytes(size int64) {
	if size <= 0 {
		return
	}
	c.bodyLimit = size
	c.MaxBodySize = strconv.FormatInt(size, 10)
}

// sizeSuffixes are tried in order, so two-letter suffixes precede "B".
var sizeSuffixes = []struct {
	suffix     string
	multiplier int64
}{
	{"KB", 1 << 10},
	{"MB", 1 << 20},
	{"K", 1 << 10},
	{"M", 1 << 20},
	{"B", 1},
}

// ParseSize reads a byte count such as "4096", "64K" or "1MB". Suffixes are
// case-insensitive and binary. A blank value means the default limit.
func ParseSize(value string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	multiplier := int64(1)
	for _, u := range sizeSuffixes {
		if strings.HasSuffix(s, u.suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			multiplier = u.multiplier
			break
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", value)
	}
	if n < 0 {
		return 0, fmt.Errorf("size %q must not be negative", value)
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size %q overflows", value)
	}
	return n * multiplier, nil
}
