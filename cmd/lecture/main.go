package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/lecture-flow/internal/assembler"
	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/enhancer"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/internal/pipeline"
	"github.com/nguyentantai21042004/lecture-flow/internal/segmenter"
	"github.com/nguyentantai21042004/lecture-flow/internal/transcriber"
	"github.com/nguyentantai21042004/lecture-flow/internal/watcher"
	"github.com/nguyentantai21042004/lecture-flow/pkg/executor"
)

const (
	configFile = "config.yaml"
	envFile    = ".env"
)

func main() {
	ctx := context.Background()

	env, err := config.LoadEnv(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if env.Debug {
		cfg.Logging.Level = "debug"
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Lecture Processing Pipeline (%s)", env.Environment)
	log.Info(ctx, "========================================")

	p, err := build(ctx, cfg, env, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	args := os.Args[1:]
	switch {
	case len(args) > 0 && args[0] == "watch":
		runWatch(ctx, cfg, p, log)
	case len(args) > 0 && args[0] == "polish":
		summary := ""
		if len(args) > 1 {
			summary = args[1]
		}
		if _, err := p.Polish(ctx, summary); err != nil {
			log.Error(ctx, "Error enhancing summary: %v", err)
		}
	default:
		input := cfg.Paths.InputFile
		if len(args) > 0 {
			input = args[0]
		}
		if input == "" {
			log.Error(ctx, "No input file given and paths.input_file is empty")
			return
		}
		// Failures are reported by the pipeline log; the exit code stays 0.
		_, _ = p.Process(ctx, input)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// build wires every stage component from cfg and the credentials in env.
func build(ctx context.Context, cfg *config.Config, env *config.Env, log logger.Logger) (pipeline.Pipeline, error) {
	completer, err := newCompleter(ctx, cfg.Enhancer, env)
	if err != nil {
		return nil, err
	}

	exec := executor.New()
	return pipeline.New(
		cfg,
		segmenter.New(cfg.Audio, exec, log),
		transcriber.New(cfg.Transcription, env.SiliconFlowAPIKey, log),
		assembler.New(log),
		enhancer.New(completer, log),
		log,
	), nil
}

func newCompleter(ctx context.Context, cfg config.EnhancerConfig, env *config.Env) (enhancer.Completer, error) {
	key, err := env.CompletionKey(cfg.Provider)
	if err != nil {
		return nil, err
	}
	if cfg.Provider == config.ProviderGemini {
		return enhancer.NewGemini(ctx, key, cfg.Model, cfg.BaseURL)
	}
	return enhancer.NewOpenAICompatible(cfg.BaseURL, key, cfg.Model), nil
}

func runWatch(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger) {
	if err := os.MkdirAll(cfg.Paths.Inbox, 0755); err != nil {
		log.Error(ctx, "Failed to create inbox: %v", err)
		return
	}

	w, err := watcher.New(cfg.Paths.Inbox, processHandler(p), log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "Lecture pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
	}
	log.Info(context.Background(), "Lecture pipeline stopped")
}

// processHandler runs the pipeline for one inbox file. The run ignores
// cancellation of ctx; a shutdown signal waits for the in-flight recording.
func processHandler(p pipeline.Pipeline) watcher.EventHandler {
	return func(ctx context.Context, path string) error {
		_, err := p.Process(context.WithoutCancel(ctx), path)
		return err
	}
}
