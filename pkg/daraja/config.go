package daraja

import "time"

const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"

	sandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	productionBaseURL = "https://api.safaricom.co.ke"
)

type Config struct {
	Environment    string        `mapstructure:"environment"`
	ConsumerKey    string        `mapstructure:"consumer_key"`
	ConsumerSecret string        `mapstructure:"consumer_secret"`
	ShortCode      string        `mapstructure:"short_code"`
	Passkey        string        `mapstructure:"passkey"`
	CallbackURL    string        `mapstructure:"callback_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

func (c Config) BaseURL() string {
	if c.Environment == EnvironmentProduction {
		return productionBaseURL
	}
	return sandboxBaseURL
}
