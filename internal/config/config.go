package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/factors"
)

// ErrInvalidConfig is returned by Validate for any out-of-range setting.
var ErrInvalidConfig = errors.New("invalid config")

// ErrUnknownKey is returned by Get for a key that names no setting.
var ErrUnknownKey = errors.New("unknown config key")

// Supported output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// outputTypeFile is the logging output used when a log file is configured.
const outputTypeFile = "file"

// Config is the greenevent configuration file.
type Config struct {
	Output  OutputConfig  `yaml:"output"  json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Engine  EngineConfig  `yaml:"engine"  json:"engine"`
	Server  ServerConfig  `yaml:"server"  json:"server"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	Precision     int    `yaml:"precision"      json:"precision"`
	Equivalencies bool   `yaml:"equivalencies"  json:"equivalencies"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file"   json:"file"`
}

// EngineConfig holds the calculation defaults the CLI and server pass to the engine.
type EngineConfig struct {
	DistributionPolicy    string  `yaml:"distribution_policy"    json:"distribution_policy"`
	DistributionTolerance float64 `yaml:"distribution_tolerance" json:"distribution_tolerance"`
	InPersonShare         float64 `yaml:"in_person_share"        json:"in_person_share"`
	Region                string  `yaml:"region"                 json:"region"`
	Adoption              string  `yaml:"adoption"               json:"adoption"`
	Concurrency           int     `yaml:"concurrency"            json:"concurrency"`
	ChunkSize             int     `yaml:"chunk_size"             json:"chunk_size"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr                string `yaml:"addr"                  json:"addr"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"  json:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds" json:"write_timeout_seconds"`
	MaxBodyBytes        int64  `yaml:"max_body_bytes"        json:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Engine: EngineConfig{
			DistributionPolicy:    string(engine.DistributionWarn),
			DistributionTolerance: factors.DefaultDistributionTolerance,
			InPersonShare:         factors.DefaultInPersonShare,
			Region:                string(factors.RegionUS),
			Adoption:              string(factors.AdoptionModerate),
			Concurrency:           4,
			ChunkSize:             25,
		},
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 30,
			MaxBodyBytes:        1 << 20,
		},
	}
}

// New returns the defaults overlaid with the user config file, if any, and the
// environment overrides. A malformed config file is reported on stderr and ignored.
func New() *Config {
	cfg := Default()
	if path, err := ConfigFilePath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if loadErr := cfg.Load(path); loadErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: ignoring config file %s: %v\n", path, loadErr)
				cfg = Default()
			}
		}
	}
	cfg.ApplyEnvOverrides()
	return cfg
}

// Load reads a YAML file onto cfg. Absent keys keep their current values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Save writes cfg to path as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Environment variables that override file settings.
const (
	EnvHome               = "GREENEVENT_HOME"
	EnvProjectDir         = "GREENEVENT_PROJECT_DIR"
	EnvOutputFormat       = "GREENEVENT_OUTPUT_FORMAT"
	EnvLogLevel           = "GREENEVENT_LOG_LEVEL"
	EnvLogFormat          = "GREENEVENT_LOG_FORMAT"
	EnvLogFile            = "GREENEVENT_LOG_FILE"
	EnvDistributionPolicy = "GREENEVENT_DISTRIBUTION_POLICY"
	EnvRegion             = "GREENEVENT_REGION"
	EnvConcurrency        = "GREENEVENT_CONCURRENCY"
	EnvServerAddr         = "GREENEVENT_SERVER_ADDR"
)

// ApplyEnvOverrides applies GREENEVENT_* environment variables. Unparseable
// numeric values are ignored.
func (c *Config) ApplyEnvOverrides() {
	str := func(env string, dst *string) {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
	str(EnvOutputFormat, &c.Output.DefaultFormat)
	str(EnvLogLevel, &c.Logging.Level)
	str(EnvLogFormat, &c.Logging.Format)
	str(EnvLogFile, &c.Logging.File)
	str(EnvDistributionPolicy, &c.Engine.DistributionPolicy)
	str(EnvRegion, &c.Engine.Region)
	str(EnvServerAddr, &c.Server.Addr)
	if v := os.Getenv(EnvConcurrency); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.Concurrency = n
		}
	}
}

// Validate checks every setting.
func (c *Config) Validate() error {
	var errs []error
	bad := func(key string, v any, why string) {
		errs = append(errs, fmt.Errorf("%w: %s %s (got %v)", ErrInvalidConfig, key, why, v))
	}

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		bad("output.default_format", c.Output.DefaultFormat, "must be table, json or ndjson")
	}
	if c.Output.Precision < 0 || c.Output.Precision > 6 {
		bad("output.precision", c.Output.Precision, "must be between 0 and 6")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		bad("logging.level", c.Logging.Level, "is not a log level")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		bad("logging.format", c.Logging.Format, "must be console or json")
	}

	if _, err := engine.ParseDistributionPolicy(c.Engine.DistributionPolicy); err != nil {
		bad("engine.distribution_policy", c.Engine.DistributionPolicy, "must be warn, reject or normalize")
	}
	if c.Engine.DistributionTolerance < 0 || c.Engine.DistributionTolerance > 100 {
		bad("engine.distribution_tolerance", c.Engine.DistributionTolerance, "must be between 0 and 100")
	}
	if c.Engine.InPersonShare < 0 || c.Engine.InPersonShare > 1 {
		bad("engine.in_person_share", c.Engine.InPersonShare, "must be between 0 and 1")
	}
	if _, ok := factors.PricingFor(factors.Region(c.Engine.Region)); !ok {
		bad("engine.region", c.Engine.Region, "is not a supported region")
	}
	if _, ok := factors.AdoptionMultiplier(factors.AdoptionTier(c.Engine.Adoption)); !ok {
		bad("engine.adoption", c.Engine.Adoption, "is not an adoption tier")
	}
	if c.Engine.Concurrency < 1 || c.Engine.Concurrency > 64 {
		bad("engine.concurrency", c.Engine.Concurrency, "must be between 1 and 64")
	}
	if c.Engine.ChunkSize < 1 || c.Engine.ChunkSize > 1000 {
		bad("engine.chunk_size", c.Engine.ChunkSize, "must be between 1 and 1000")
	}

	if c.Server.Addr == "" {
		bad("server.addr", c.Server.Addr, "must not be empty")
	}
	if c.Server.ReadTimeoutSeconds < 1 {
		bad("server.read_timeout_seconds", c.Server.ReadTimeoutSeconds, "must be positive")
	}
	if c.Server.WriteTimeoutSeconds < 1 {
		bad("server.write_timeout_seconds", c.Server.WriteTimeoutSeconds, "must be positive")
	}
	if c.Server.MaxBodyBytes < 1 {
		bad("server.max_body_bytes", c.Server.MaxBodyBytes, "must be positive")
	}
	return errors.Join(errs...)
}

// TravelOptions returns the engine travel options configured here.
func (c *Config) TravelOptions() engine.TravelOptions {
	return engine.TravelOptions{
		Policy:    engine.DistributionPolicy(c.Engine.DistributionPolicy),
		Tolerance: c.Engine.DistributionTolerance,
	}
}

// Get returns the value of a dotted key such as "output.default_format".
func (c *Config) Get(key string) (any, error) {
	flat, err := c.flatten()
	if err != nil {
		return nil, err
	}
	v, ok := flat[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return v, nil
}

// Keys lists every dotted key in sorted order.
func (c *Config) Keys() []string {
	flat, err := c.flatten()
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Config) flatten() (map[string]any, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, err
	}
	var sections map[string]map[string]any
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, err
	}
	flat := make(map[string]any)
	for section, fields := range sections {
		for k, v := range fields {
			flat[section+"."+k] = v
		}
	}
	return flat, nil
}
