package config

import "time"

// Config is the top-level configuration, corresponding to alumni.yml.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Dataset      DatasetConfig      `koanf:"dataset"`
	Assets       AssetsConfig       `koanf:"assets"`
	PageSize     int                `koanf:"page_size"`
	Log          LogConfig          `koanf:"log"`
	Mongo        MongoConfig        `koanf:"mongo"`
	Registration RegistrationConfig `koanf:"registration"`
	Site         SiteConfig         `koanf:"site"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	AllowAllOrigins bool          `koanf:"allow_all_origins"`
}

// DatasetConfig locates the alumni dataset. Path is a file path or an
// http(s) URL.
type DatasetConfig struct {
	Path         string        `koanf:"path"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
}

// AssetsConfig locates alumni photos on disk and in URLs.
type AssetsConfig struct {
	Dir          string `koanf:"dir"`
	ImagePrefix  string `koanf:"image_prefix"`
	DefaultImage string `koanf:"default_image"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// MongoConfig enables durable registration storage when URI is set.
type MongoConfig struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

// RegistrationConfig tunes submissions. The CSV export and registration
// lookup are served only when AdminPassword is set.
type RegistrationConfig struct {
	RatePerMinute int    `koanf:"rate_per_minute"`
	AdminUser     string `koanf:"admin_user"`
	AdminPassword string `koanf:"admin_password"`
}

// SiteConfig holds the informational pages. AboutPath names a markdown
// file for /about; empty uses the built-in text.
type SiteConfig struct {
	AboutPath string `koanf:"about_path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         7521,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Dataset: DatasetConfig{
			Path:         "alumni.csv",
			CacheTTL:     5 * time.Minute,
			FetchTimeout: 10 * time.Second,
		},
		Assets: AssetsConfig{
			Dir:          "assets",
			ImagePrefix:  "/assets/images",
			DefaultImage: "boy",
		},
		PageSize: 10,
		Log:      LogConfig{Level: "info"},
		Mongo:    MongoConfig{Database: "alumni"},
		Registration: RegistrationConfig{
			RatePerMinute: 30,
			AdminUser:     "admin",
		},
	}
}
