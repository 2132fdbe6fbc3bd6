package config

import (
	"fmt"
	"os"
	"strings"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port   string
	DB     PostgresConfig
	Auth   AuthConfig
	OpenAI OpenAIConfig
	Stripe StripeConfig
}

type PostgresConfig struct {
	URL      string
	Username string
	Password string
	Host     string
	Port     string
}

type AuthConfig struct {
	Issuer   string
	Audience string
	JWKSURL  string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type StripeConfig struct {
	SecretKey          string
	WebhookSecret      string
	PriceIDMemberMonth string
	FrontendURL        string
}

// LoadConfig reads configuration from the environment. Missing provider
// credentials are not an error here: the server starts without them and
// the affected feature degrades per request.
func LoadConfig() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	issuer := strings.TrimSpace(os.Getenv("AUTH_ISSUER"))
	if issuer == "" {
		if supabaseURL := strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"); supabaseURL != "" {
			issuer = supabaseURL + "/auth/v1"
		}
	}

	// Support both OPENAI_* and the legacy AI_INTEGRATIONS_* names.
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("AI_INTEGRATIONS_OPENAI_API_KEY")
	}
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = os.Getenv("AI_INTEGRATIONS_OPENAI_BASE_URL")
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-5.2"
	}

	cfg := &Config{
		Port: port,
		DB: PostgresConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Username: os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PWD"),
			Host:     os.Getenv("POSTGRES_URL"),
			Port:     os.Getenv("POSTGRES_PORT"),
		},
		Auth: AuthConfig{
			Issuer:   issuer,
			Audience: os.Getenv("AUTH_AUDIENCE"),
			JWKSURL:  os.Getenv("AUTH_JWKS_URL"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Model:   model,
		},
		Stripe: StripeConfig{
			SecretKey:          os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret:      os.Getenv("STRIPE_WEBHOOK_SECRET"),
			PriceIDMemberMonth: os.Getenv("STRIPE_PRICE_ID_MEMBER_MONTHLY"),
			FrontendURL:        os.Getenv("FRONTEND_URL"),
		},
	}

	return cfg, nil
}

// DSN returns the Postgres connection string, or "" when no database is
// configured.
func (p PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	if p.Host == "" {
		return ""
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s",
		p.Username,
		p.Password,
		p.Host,
		p.Port,
	)
}
