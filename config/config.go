// config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the settings shared by SYRUP's link helpers and the demo
// server. Precedence: explicit flags > environment (SYRUP_*) > config file
// > defaults.
type Config struct {
	// runtime
	Env      string `mapstructure:"env"`       // "dev" | "prod"
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error …

	// URL generation
	Scheme string `mapstructure:"scheme"` // "http" | "https", for full URLs
	Host   string `mapstructure:"host"`   // host for full URLs (OnlyPath=false)

	// image helpers
	ImageDir        string `mapstructure:"image_dir"`         // prefix for bare image names
	DefaultImageExt string `mapstructure:"default_image_ext"` // appended when src has no extension
	AssetHost       string `mapstructure:"asset_host"`        // optional static asset host

	// demo server
	HTTPPort int `mapstructure:"http_port"`
}

// Load reads configuration in the standard order: .env file, flags, env
// vars, optional config.{yaml,yml,json,toml}, then defaults. Only flags the
// user actually set override other sources.
func Load(logger *zap.Logger) (*Config, error) {
	// 0) .env convenience for local dev; absence is not an error.
	if err := godotenv.Load(); err == nil && logger != nil {
		logger.Info("Loaded .env file")
	}

	// 1) Define flags (only *explicitly set* flags will override)
	pflag.String("env", "dev", `Runtime environment "dev"|"prod"`)
	pflag.String("log_level", "debug", "Log level")
	pflag.String("scheme", "http", `URL scheme for full URLs: "http"|"https"`)
	pflag.String("host", "", "Host for full URLs (e.g., example.com)")
	pflag.String("image_dir", "/images", "Directory prefixed onto bare image names")
	pflag.String("default_image_ext", ".png", "Extension appended to extension-less image sources")
	pflag.String("asset_host", "", "Static asset host prefixed onto root-relative image srcs")
	pflag.Int("http_port", 8080, "HTTP port (demo server)")
	pflag.Parse()

	// 2) Viper + env
	v := viper.New()
	v.SetEnvPrefix("SYRUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Bind env for all keys so Unmarshal sees them.
	for _, k := range allKeys() {
		_ = v.BindEnv(k)
	}

	// 3) Optional config.* files (yaml|yml|json|toml)
	for _, ext := range [...]string{"yaml", "yml", "json", "toml"} {
		file := "config." + ext
		if _, err := os.Stat(file); err != nil {
			continue
		}
		b, err := os.ReadFile(file)
		if err != nil {
			if logger != nil {
				logger.Warn("cannot read config file", zap.String("file", file), zap.Error(err))
			}
			continue
		}
		v.SetConfigType(ext)
		if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
			if logger != nil {
				logger.Warn("cannot decode config file", zap.String("file", file), zap.Error(err))
			}
			continue
		}
		if logger != nil {
			logger.Info("Loaded config file", zap.String("file", file))
		}
	}

	// 4) Defaults (lowest precedence)
	setDefaults(v)

	// 5) Apply *explicit* flags (highest precedence)
	pflag.CommandLine.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = v.BindPFlag(f.Name, f)
		}
	})

	// 6) Build struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 7) Validate
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func allKeys() []string {
	return []string{
		"env", "log_level",
		"scheme", "host",
		"image_dir", "default_image_ext", "asset_host",
		"http_port",
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "debug")

	v.SetDefault("scheme", "http")
	v.SetDefault("host", "")

	v.SetDefault("image_dir", "/images")
	v.SetDefault("default_image_ext", ".png")
	v.SetDefault("asset_host", "")

	v.SetDefault("http_port", 8080)
}

// Validate checks field consistency and returns a single aggregated error.
func Validate(cfg Config) error {
	var invalid []string

	if cfg.Env != "dev" && cfg.Env != "prod" {
		invalid = append(invalid, fmt.Sprintf("env must be \"dev\" or \"prod\", got %q", cfg.Env))
	}
	if cfg.Scheme != "http" && cfg.Scheme != "https" {
		invalid = append(invalid, fmt.Sprintf("scheme must be \"http\" or \"https\", got %q", cfg.Scheme))
	}
	if !strings.HasPrefix(cfg.ImageDir, "/") {
		invalid = append(invalid, fmt.Sprintf("image_dir must be root-relative, got %q", cfg.ImageDir))
	}
	if cfg.DefaultImageExt != "" && !strings.HasPrefix(cfg.DefaultImageExt, ".") {
		invalid = append(invalid, fmt.Sprintf("default_image_ext must start with \".\", got %q", cfg.DefaultImageExt))
	}
	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		invalid = append(invalid, fmt.Sprintf("http_port out of range: %d", cfg.HTTPPort))
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(invalid, "; "))
	}
	return nil
}
