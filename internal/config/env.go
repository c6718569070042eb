package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/nguyentantai21042004/lecture-flow/internal/errs"
)

// Env holds the credentials and runtime switches read from the environment.
type Env struct {
	OpenAIAPIKey      string `envconfig:"OPENAI_API_KEY"`
	SiliconFlowAPIKey string `envconfig:"SILICON_FLOW_API_KEY"`
	DeepSeekAPIKey    string `envconfig:"DEEPSEEK_API_KEY"`
	GeminiAPIKey      string `envconfig:"GEMINI_API_KEY"`
	Debug             bool   `envconfig:"DEBUG" default:"false"`
	Environment       string `envconfig:"ENVIRONMENT" default:"development"`
}

// MissingEnvError names every required variable that was not set.
type MissingEnvError struct {
	Keys []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Keys, ", "))
}

func (e *MissingEnvError) Is(target error) bool {
	return target == errs.ErrConfiguration
}

// LoadEnv loads envFile into the process environment when it exists and then
// reads Env from the environment. Variables already set win over the file.
func LoadEnv(envFile string) (*Env, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: load %s: %w", errs.ErrConfiguration, envFile, err)
		}
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrConfiguration, err)
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate reports all missing required keys at once.
func (e *Env) Validate() error {
	var missing []string
	if e.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if e.SiliconFlowAPIKey == "" {
		missing = append(missing, "SILICON_FLOW_API_KEY")
	}
	if e.DeepSeekAPIKey == "" {
		missing = append(missing, "DEEPSEEK_API_KEY")
	}
	if len(missing) > 0 {
		return &MissingEnvError{Keys: missing}
	}
	return nil
}

// CompletionKey returns the API key for the configured enhancer provider.
func (e *Env) CompletionKey(provider string) (string, error) {
	switch provider {
	case ProviderOpenAI:
		return e.OpenAIAPIKey, nil
	case ProviderGemini:
		if e.GeminiAPIKey == "" {
			return "", &MissingEnvError{Keys: []string{"GEMINI_API_KEY"}}
		}
		return e.GeminiAPIKey, nil
	default:
		return e.DeepSeekAPIKey, nil
	}
}
