package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nguyentantai21042004/lecture-flow/internal/errs"
)

var envKeys = []string{
	"OPENAI_API_KEY",
	"SILICON_FLOW_API_KEY",
	"DEEPSEEK_API_KEY",
	"GEMINI_API_KEY",
	"DEBUG",
	"ENVIRONMENT",
}

// clearEnv unsets every variable Env reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadEnvMissingKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")

	_, err := LoadEnv("")
	if err == nil {
		t.Fatal("LoadEnv() should fail when keys are missing")
	}
	if !errors.Is(err, errs.ErrConfiguration) {
		t.Errorf("errors.Is(err, ErrConfiguration) = false, err = %v", err)
	}

	var missing *MissingEnvError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %T, want *MissingEnvError", err)
	}
	want := []string{"SILICON_FLOW_API_KEY", "DEEPSEEK_API_KEY"}
	if diff := cmp.Diff(want, missing.Keys); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "a")
	t.Setenv("SILICON_FLOW_API_KEY", "b")
	t.Setenv("DEEPSEEK_API_KEY", "c")

	env, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if env.Environment != "development" {
		t.Errorf("Environment = %v, want %v", env.Environment, "development")
	}
	if env.Debug {
		t.Error("Debug = true, want false")
	}
}

func TestLoadEnvFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "OPENAI_API_KEY=file-openai\nSILICON_FLOW_API_KEY=file-sf\nDEEPSEEK_API_KEY=file-ds\nDEBUG=true\nENVIRONMENT=production\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables that are already set
	t.Setenv("DEEPSEEK_API_KEY", "process-ds")

	env, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	want := Env{
		OpenAIAPIKey:      "file-openai",
		SiliconFlowAPIKey: "file-sf",
		DeepSeekAPIKey:    "process-ds",
		Debug:             true,
		Environment:       "production",
	}
	if diff := cmp.Diff(want, *env); diff != "" {
		t.Errorf("Env mismatch (-want +got):\n%s", diff)
	}
}

func TestCompletionKey(t *testing.T) {
	env := &Env{OpenAIAPIKey: "o", DeepSeekAPIKey: "d"}

	tests := []struct {
		provider string
		want     string
		wantErr  bool
	}{
		{ProviderDeepSeek, "d", false},
		{ProviderOpenAI, "o", false},
		{ProviderGemini, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			got, err := env.CompletionKey(tt.provider)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CompletionKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CompletionKey() = %v, want %v", got, tt.want)
			}
		})
	}
}
