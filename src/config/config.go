package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the viewer settings. Every field has a default, so running
// without a config file works out of the box.
type Config struct {
	// DataDir is the directory holding the three reference CSVs. Empty
	// means resolve it from the project root at startup.
	DataDir string        `json:"data_dir"`
	Logging LoggingConfig `json:"logging"`
	Viewer  ViewerConfig  `json:"viewer"`
}

// LoggingConfig selects the minimum log level.
type LoggingConfig struct {
	Level string `json:"level"`
}

// ViewerConfig holds the initial window geometry.
type ViewerConfig struct {
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Viewer.WindowWidth == 0 {
		c.Viewer.WindowWidth = 1000
	}
	if c.Viewer.WindowHeight == 0 {
		c.Viewer.WindowHeight = 850
	}
}

// Validate checks field sanity.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	if c.Viewer.WindowWidth < 400 || c.Viewer.WindowHeight < 300 {
		return fmt.Errorf("window size %dx%d too small", c.Viewer.WindowWidth, c.Viewer.WindowHeight)
	}
	return nil
}

// Load reads the configuration from path (yaml or json by extension), then
// applies TRV_ environment overrides, defaults and validation. An empty path
// or a missing file yields the defaults plus environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			var parser koanf.Parser
			switch strings.ToLower(filepath.Ext(path)) {
			case ".yaml", ".yml":
				parser = yaml.Parser()
			case ".json":
				parser = json.Parser()
			default:
				return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return nil, err
			}
		}
	}
	// Optional environment overrides, e.g. TRV_LOGGING__LEVEL=debug.
	if err := k.Load(env.Provider("TRV_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "trv_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
