package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default model identifiers per provider.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultGroqModel   = "llama-3.1-8b-instant"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over file values. Returns a populated, validated Config or an
// error describing what is missing.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("providers.openai_model", DefaultOpenAIModel)
	v.SetDefault("providers.gemini_model", DefaultGeminiModel)
	v.SetDefault("providers.groq_model", DefaultGroqModel)
	v.SetDefault("providers.retry_delay_seconds", 2)

	// Optional config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables: CRAFTLY_SERVER_PORT, CRAFTLY_DATABASE_URL, ...
	v.SetEnvPrefix("CRAFTLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys through Unmarshal,
	// so bind the critical ones explicitly.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"server.port", "CRAFTLY_SERVER_PORT"},
		{"server.log_level", "CRAFTLY_SERVER_LOG_LEVEL"},
		{"database.url", "CRAFTLY_DATABASE_URL"},
		{"auth.jwt_secret", "CRAFTLY_AUTH_JWT_SECRET"},
		{"providers.openai_api_key", "CRAFTLY_PROVIDERS_OPENAI_API_KEY"},
		{"providers.openai_model", "CRAFTLY_PROVIDERS_OPENAI_MODEL"},
		{"providers.gemini_api_key", "CRAFTLY_PROVIDERS_GEMINI_API_KEY"},
		{"providers.gemini_model", "CRAFTLY_PROVIDERS_GEMINI_MODEL"},
		{"providers.groq_api_key", "CRAFTLY_PROVIDERS_GROQ_API_KEY"},
		{"providers.groq_model", "CRAFTLY_PROVIDERS_GROQ_MODEL"},
		{"providers.retry_delay_seconds", "CRAFTLY_PROVIDERS_RETRY_DELAY_SECONDS"},
	}
	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
