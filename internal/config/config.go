package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the geodetic demo configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Geodesy GeodesyConfig `yaml:"geodesy"`
	Metrics MetricsConfig `yaml:"metrics"`
	Demo    DemoConfig    `yaml:"demo"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// GeodesyConfig controls input validation.
type GeodesyConfig struct {
	// StrictLatitude rejects latitudes outside [-90, 90] instead of projecting them.
	StrictLatitude bool `yaml:"strict_latitude"`
}

// MetricsConfig holds metrics settings.
type MetricsConfig struct {
	Dump bool `yaml:"dump"` // print the text exposition when the demo finishes
}

// DemoConfig lists the sample points and pairs the demo computes.
type DemoConfig struct {
	Points []PointConfig `yaml:"points"`
	Pairs  []PairConfig  `yaml:"pairs"`
}

// PointConfig is a named geodetic point.
type PointConfig struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
	Alt  float64 `yaml:"alt"`
}

// PairConfig references two points by name.
type PairConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes, substituting ${VAR} references, and applies defaults
// and validation.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if len(c.Demo.Points) == 0 {
		c.Demo.Points = []PointConfig{
			{Name: "mid-latitude", Lat: 45, Lon: 45},
			{Name: "tokyo", Lat: 35.6895, Lon: 139.6917, Alt: 10},
		}
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Demo.Points))
	for i, p := range c.Demo.Points {
		if p.Name == "" {
			return fmt.Errorf("demo.points[%d].name is required", i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("demo.points[%d].name %q is duplicated", i, p.Name)
		}
		seen[p.Name] = struct{}{}

		if c.Geodesy.StrictLatitude && (math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90) {
			return fmt.Errorf("demo.points.%s.lat must be within [-90, 90], got %g", p.Name, p.Lat)
		}
	}
	for i, pair := range c.Demo.Pairs {
		for _, name := range []string{pair.From, pair.To} {
			if _, ok := seen[name]; !ok {
				return fmt.Errorf("demo.pairs[%d] references unknown point %q", i, name)
			}
		}
	}
	return nil
}

// Point returns the configured point with the given name.
func (c *Config) Point(name string) (PointConfig, bool) {
	for _, p := range c.Demo.Points {
		if p.Name == name {
			return p, true
		}
	}
	return PointConfig{}, false
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
