// Package config loads settings from defaults, an optional YAML file, a
// .env file and WORKSHEET_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. WORKSHEET_RENDER_ENGINE.
const EnvPrefix = "WORKSHEET"

type Config struct {
	DB           string        `mapstructure:"db"`
	Pool         string        `mapstructure:"pool"`
	TemplatesDir string        `mapstructure:"templates_dir"`
	Log          LogConfig     `mapstructure:"log"`
	Server       ServerConfig  `mapstructure:"server"`
	Render       RenderConfig  `mapstructure:"render"`
	Measure      MeasureConfig `mapstructure:"measure"`
	Export       ExportConfig  `mapstructure:"export"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type RenderConfig struct {
	// Engine overrides the layout-based backend choice when set.
	Engine       string        `mapstructure:"engine"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Retries      uint          `mapstructure:"retries"`
	ChromiumPath string        `mapstructure:"chromium_path"`
	LatexPath    string        `mapstructure:"latex_path"`
}

type MeasureConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Timeout  time.Duration `mapstructure:"timeout"`
	RedisURL string        `mapstructure:"redis_url"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type ExportConfig struct {
	// Dir is a local directory or an s3://bucket/prefix URL. Empty
	// disables export.
	Dir      string `mapstructure:"dir"`
	S3Region string `mapstructure:"s3_region"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Pool:         "tasks.yaml",
		TemplatesDir: "templates",
		Log:          LogConfig{Mode: "dev"},
		Server:       ServerConfig{Addr: ":8080"},
		Render: RenderConfig{
			Timeout:   60 * time.Second,
			Retries:   2,
			LatexPath: "pdflatex",
		},
		Measure: MeasureConfig{
			Timeout:  20 * time.Second,
			CacheTTL: 7 * 24 * time.Hour,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("db", d.DB)
	v.SetDefault("pool", d.Pool)
	v.SetDefault("templates_dir", d.TemplatesDir)
	v.SetDefault("log.mode", d.Log.Mode)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("render.engine", d.Render.Engine)
	v.SetDefault("render.timeout", d.Render.Timeout)
	v.SetDefault("render.retries", d.Render.Retries)
	v.SetDefault("render.chromium_path", d.Render.ChromiumPath)
	v.SetDefault("render.latex_path", d.Render.LatexPath)
	v.SetDefault("measure.enabled", d.Measure.Enabled)
	v.SetDefault("measure.timeout", d.Measure.Timeout)
	v.SetDefault("measure.redis_url", d.Measure.RedisURL)
	v.SetDefault("measure.cache_ttl", d.Measure.CacheTTL)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("export.s3_region", d.Export.S3Region)
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	v         *viper.Viper
	config    *Config
	callbacks []func(*Config)
}

// NewManager loads configuration. An empty cfgFile looks for
// worksheet.yaml in the working directory and $HOME/.worksheet; a missing
// file is not an error.
func NewManager(cfgFile string) (*Manager, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("worksheet")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.worksheet")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	m := &Manager{v: v}
	cfg, err := m.load()
	if err != nil {
		return nil, err
	}
	m.config = cfg
	return m, nil
}

// loadDotEnv loads path if it exists. Variables already set win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (m *Manager) load() (*Config, error) {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Viper exposes the underlying instance so commands can bind flags.
func (m *Manager) Viper() *viper.Viper { return m.v }

// Reload re-reads the current state, e.g. after flags were bound.
func (m *Manager) Reload() error {
	cfg, err := m.load()
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers a callback for config changes.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// WatchConfig enables hot-reloading of the config file.
func (m *Manager) WatchConfig() {
	m.v.OnConfigChange(func(fsnotify.Event) {
		cfg, err := m.load()
		if err != nil {
			return
		}

		m.mu.Lock()
		m.config = cfg
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	m.v.WatchConfig()
}
