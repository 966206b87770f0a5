package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppName               = "mintodo"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "todo.db"
	DefaultLogName        = "todo.log"
	DefaultStorageKey     = "minimal_tasks"
	DefaultLogLevel       = "info"
	DefaultTickInterval   = "1s"
)

type Keymap struct {
	Quit      string `toml:"quit"`
	Add       string `toml:"add"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Toggle    string `toml:"toggle"`
	Delete    string `toml:"delete"`
	Edit      string `toml:"edit"`
	Grab      string `toml:"grab"`
	Confirm   string `toml:"confirm"`
	Cancel    string `toml:"cancel"`
	NextField string `toml:"next_field"`
	Help      string `toml:"help"`
}

type Config struct {
	DBPath       string `toml:"db_path"`
	StorageKey   string `toml:"storage_key"`
	LogPath      string `toml:"log_path"`
	LogLevel     string `toml:"log_level"`
	TickInterval string `toml:"tick_interval"`
	Keys         Keymap `toml:"keys"`
}

// ResolveConfigPath returns the per-user config file location, or a file in
// the working directory when no user config dir is known.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// the file does not exist. Relative db and log paths resolve against the
// config file's directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg.resolve(filepath.Dir(path)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.fillDefaults()
	return cfg.resolve(filepath.Dir(path)), nil
}

// Interval parses TickInterval, falling back to one second.
func (c Config) Interval() time.Duration {
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.StorageKey == "" {
		c.StorageKey = def.StorageKey
	}
	if c.LogPath == "" {
		c.LogPath = def.LogPath
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.TickInterval == "" {
		c.TickInterval = def.TickInterval
	}
	k, d := &c.Keys, def.Keys
	for _, pair := range []struct {
		v   *string
		def string
	}{
		{&k.Quit, d.Quit}, {&k.Add, d.Add}, {&k.Up, d.Up}, {&k.Down, d.Down},
		{&k.Toggle, d.Toggle}, {&k.Delete, d.Delete}, {&k.Edit, d.Edit},
		{&k.Grab, d.Grab}, {&k.Confirm, d.Confirm}, {&k.Cancel, d.Cancel},
		{&k.NextField, d.NextField}, {&k.Help, d.Help},
	} {
		if *pair.v == "" {
			*pair.v = pair.def
		}
	}
}

func (c Config) resolve(base string) Config {
	if !filepath.IsAbs(c.DBPath) {
		c.DBPath = filepath.Join(base, c.DBPath)
	}
	if !filepath.IsAbs(c.LogPath) {
		c.LogPath = filepath.Join(base, c.LogPath)
	}
	return c
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the configuration written on first launch.
func Default() Config {
	return Config{
		DBPath:       DefaultDBName,
		StorageKey:   DefaultStorageKey,
		LogPath:      DefaultLogName,
		LogLevel:     DefaultLogLevel,
		TickInterval: DefaultTickInterval,
		Keys: Keymap{
			Quit:      "q",
			Add:       "a",
			Up:        "k",
			Down:      "j",
			Toggle:    " ",
			Delete:    "d",
			Edit:      "e",
			Grab:      "m",
			Confirm:   "enter",
			Cancel:    "esc",
			NextField: "tab",
			Help:      "?",
		},
	}
}
