package dcslist

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return &cfg, nil
}

type Config struct {
	Log    LogConfig    `toml:"log"`
	Server ServerConfig `toml:"server"`
	DB     DBConfig     `toml:"db"`
	Auth   AuthConfig   `toml:"auth"`
	Spaces SpacesConfig `toml:"spaces"`
	Dcs    DcsConfig    `toml:"dcs"`
	Sweep  SweepConfig  `toml:"sweep"`
	Mongo  MongoConfig  `toml:"mongo"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type ServerConfig struct {
	Port           string `toml:"port"`
	AllowedOrigins string `toml:"allowed_origins"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type SpacesConfig struct {
	Key        string `toml:"key"`
	Secret     string `toml:"secret"`
	Region     string `toml:"region"`
	Bucket     string `toml:"bucket"`
	AvatarRoot string `toml:"avatarroot"`
}

type DcsConfig struct {
	BaseURL string `toml:"base_url"`
}

type SweepConfig struct {
	IntervalMinutes int `toml:"interval_minutes"`
}

type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// applyEnv lets deployment environments override secrets without
// touching the config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("DCS_DB_PASSWORD"); v != "" {
		c.DB.Password = v
	}
	if v := os.Getenv("DCS_JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("DCS_SPACES_KEY"); v != "" {
		c.Spaces.Key = v
	}
	if v := os.Getenv("DCS_SPACES_SECRET"); v != "" {
		c.Spaces.Secret = v
	}
	if v := os.Getenv("DCS_MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
}
