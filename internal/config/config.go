package config

import "os"

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

type Config struct {
	Stripe      StripeConfig
	FrontendURL string
	Port        string
}

func Load() *Config {
	cfg := &Config{}

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.PublishableKey = os.Getenv("STRIPE_PUBLISHABLE_KEY")

	cfg.FrontendURL = os.Getenv("FRONTEND_URL")
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:5173"
	}

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "3001"
	}

	return cfg
}
