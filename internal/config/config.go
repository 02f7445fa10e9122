// Package config loads termfolio settings from an optional YAML file and the environment.
package config

import (
	"cmp"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort     = "8080"
	defaultDatabase = "portfolio"
	defaultAPIURL   = "http://localhost:8080"
)

// Config is the full set of server and client settings.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Auth     AuthConfig     `yaml:"auth"`
	Terminal TerminalConfig `yaml:"terminal"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port               string   `yaml:"port"`
	AllowedOrigins     []string `yaml:"allowed_origins"`
	LoginRatePerMinute int      `yaml:"login_rate_per_minute"`
	LoginBurst         int      `yaml:"login_burst"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type AuthConfig struct {
	// EditorPassword is the shared secret for the blog editor. Login fails with a
	// server configuration error while it is empty.
	EditorPassword string        `yaml:"editor_password"`
	JWTSecret      string        `yaml:"jwt_secret"`
	TokenTTL       time.Duration `yaml:"token_ttl"`
	FailureDelay   time.Duration `yaml:"failure_delay"`
}

type TerminalConfig struct {
	APIURL         string        `yaml:"api_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	SessionFile    string        `yaml:"session_file"`
	LogFile        string        `yaml:"log_file"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() Config {
	home := userHomeDir()
	return Config{
		Server: ServerConfig{
			Port:               defaultPort,
			AllowedOrigins:     []string{"http://localhost:3000"},
			LoginRatePerMinute: 30,
			LoginBurst:         10,
		},
		Mongo: MongoConfig{
			Database: defaultDatabase,
		},
		Auth: AuthConfig{
			TokenTTL:     24 * time.Hour,
			FailureDelay: time.Second,
		},
		Terminal: TerminalConfig{
			APIURL:         defaultAPIURL,
			RequestTimeout: 10 * time.Second,
			SessionFile:    filepath.Join(home, ".termfolio", "session.json"),
			LogFile:        filepath.Join(home, ".termfolio", "terminal.log"),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path (or $TERMFOLIO_CONFIG when path is empty) on top of the defaults and
// then applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	path = cmp.Or(path, os.Getenv("TERMFOLIO_CONFIG"))
	if path != "" {
		data, err := os.ReadFile(expandPath(path))
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		}
	}

	applyEnv(&cfg)
	return hydrateDefaults(cfg), nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = cmp.Or(os.Getenv("PORTFOLIO_PORT"), cfg.Server.Port)
	if origins := os.Getenv("PORTFOLIO_ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = splitList(origins)
	}
	cfg.Mongo.URI = cmp.Or(os.Getenv("MONGODB_URI"), cfg.Mongo.URI)
	cfg.Mongo.Database = cmp.Or(os.Getenv("MONGODB_DATABASE"), cfg.Mongo.Database)
	cfg.Auth.EditorPassword = cmp.Or(os.Getenv("BLOG_EDITOR_PASSWORD"), cfg.Auth.EditorPassword)
	cfg.Auth.JWTSecret = cmp.Or(os.Getenv("JWT_SECRET"), cfg.Auth.JWTSecret)
	if delay, err := strconv.Atoi(os.Getenv("LOGIN_FAILURE_DELAY_MS")); err == nil && delay >= 0 {
		cfg.Auth.FailureDelay = time.Duration(delay) * time.Millisecond
	}
	cfg.Terminal.APIURL = cmp.Or(os.Getenv("TERMFOLIO_API_URL"), cfg.Terminal.APIURL)
	cfg.Log.Level = cmp.Or(os.Getenv("TERMFOLIO_LOG_LEVEL"), cfg.Log.Level)
}

func hydrateDefaults(cfg Config) Config {
	def := Default()
	cfg.Server.Port = cmp.Or(cfg.Server.Port, def.Server.Port)
	cfg.Mongo.Database = cmp.Or(cfg.Mongo.Database, def.Mongo.Database)
	cfg.Auth.TokenTTL = cmp.Or(cfg.Auth.TokenTTL, def.Auth.TokenTTL)
	cfg.Terminal.APIURL = strings.TrimRight(cmp.Or(cfg.Terminal.APIURL, def.Terminal.APIURL), "/")
	cfg.Terminal.RequestTimeout = cmp.Or(cfg.Terminal.RequestTimeout, def.Terminal.RequestTimeout)
	cfg.Terminal.SessionFile = expandPath(cmp.Or(cfg.Terminal.SessionFile, def.Terminal.SessionFile))
	cfg.Terminal.LogFile = expandPath(cmp.Or(cfg.Terminal.LogFile, def.Terminal.LogFile))
	cfg.Log.Level = cmp.Or(cfg.Log.Level, def.Log.Level)
	return cfg
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return path
}

func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return home
}
