package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppName               = "focustoday"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "focustoday.db"
	DefaultDriver         = "sqlite"
	DefaultGoalSlots      = 3
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Delete  string `toml:"delete"`
	Edit    string `toml:"edit"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
	Home    string `toml:"home"`
	About   string `toml:"about"`
}

type Config struct {
	DBDriver     string `toml:"db_driver"`
	DBPath       string `toml:"db_path"`
	DBDSN        string `toml:"db_dsn"`
	DefaultGoals int    `toml:"default_goals"`
	LogFile      string `toml:"log_file"`
	Keys         Keymap `toml:"keys"`
}

// ResolveConfigPath picks the config file location. FOCUSTODAY_CONFIG wins,
// then XDG_CONFIG_HOME, then ~/.config.
func ResolveConfigPath() string {
	if p := os.Getenv("FOCUSTODAY_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(defaultConfigDir(), DefaultConfigFileName)
}

func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = DefaultDriver
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(filepath.Dir(path), DefaultDBName)
	}
	if cfg.DefaultGoals <= 0 {
		cfg.DefaultGoals = DefaultGoalSlots
	}
	return cfg, nil
}

// DSN returns the data source for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == "postgres" {
		return c.DBDSN
	}
	return c.DBPath
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(dir string) Config {
	return Config{
		DBDriver:     DefaultDriver,
		DBPath:       filepath.Join(dir, DefaultDBName),
		DefaultGoals: DefaultGoalSlots,
		Keys: Keymap{
			Quit:    "q",
			Add:     "a",
			Up:      "k",
			Down:    "j",
			Toggle:  " ",
			Delete:  "d",
			Edit:    "e",
			Confirm: "enter",
			Cancel:  "esc",
			Home:    "1",
			About:   "2",
		},
	}
}
