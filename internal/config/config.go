package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// placeholderAdminToken is the value shipped in example configs. Refusing to
// boot with it keeps a forgotten default from guarding the admin surface.
const placeholderAdminToken = "changeme"

var (
	ErrAdminTokenMissing     = errors.New("admin token is not configured")
	ErrAdminTokenPlaceholder = errors.New("admin token is still the placeholder value")
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	AdminToken         string   `mapstructure:"admin_token"`
	PublicBackendURL   string   `mapstructure:"public_backend_url"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

func Load(configFile string) (*AppConfig, error) {
	viper.SetConfigFile(configFile)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	if token := viper.GetString("ADMIN_TOKEN"); token != "" {
		conf.API.AdminToken = token
	}

	if err := validateAdminToken(conf.API.AdminToken); err != nil {
		return nil, err
	}

	return &conf, nil
}

func validateAdminToken(token string) error {
	switch token {
	case "":
		return ErrAdminTokenMissing
	case placeholderAdminToken:
		return ErrAdminTokenPlaceholder
	}

	return nil
}
