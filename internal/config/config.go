package config

import (
	"fmt"

	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/daraja"
	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API      API           `mapstructure:"api"`
	Database mysql.Config  `mapstructure:"database"`
	Daraja   daraja.Config `mapstructure:"daraja"`
}

type API struct {
	Port string `mapstructure:"port"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg *Config
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, fmt.Errorf("config file is empty")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects a config missing any value the gateway integration cannot
// run without. Startup fails here rather than on the first request.
func (c *Config) Validate() error {
	required := map[string]string{
		"daraja.consumer_key":    c.Daraja.ConsumerKey,
		"daraja.consumer_secret": c.Daraja.ConsumerSecret,
		"daraja.short_code":      c.Daraja.ShortCode,
		"daraja.passkey":         c.Daraja.Passkey,
		"daraja.callback_url":    c.Daraja.CallbackURL,
		"database.host":          c.Database.Host,
		"database.name":          c.Database.Name,
	}

	for key, value := range required {
		if value == "" {
			return fmt.Errorf("missing required config value %q", key)
		}
	}

	env := c.Daraja.Environment
	if env != daraja.EnvironmentSandbox && env != daraja.EnvironmentProduction {
		return fmt.Errorf("daraja.environment must be %q or %q, got %q",
			daraja.EnvironmentSandbox, daraja.EnvironmentProduction, env)
	}

	return nil
}
