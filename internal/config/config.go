package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Audio         AudioConfig         `yaml:"audio"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Enhancer      EnhancerConfig      `yaml:"enhancer"`
	Paths         PathsConfig         `yaml:"paths"`
	Report        ReportConfig        `yaml:"report"`
	Logging       LoggingConfig       `yaml:"logging"`
}

type AudioConfig struct {
	ChunkSeconds  int    `yaml:"chunk_seconds"`
	TargetFormat  string `yaml:"target_format"`
	Bitrate       string `yaml:"bitrate"`
	FFmpegBinary  string `yaml:"ffmpeg_binary"`
	FFprobeBinary string `yaml:"ffprobe_binary"`
}

type TranscriptionConfig struct {
	URL   string `yaml:"url"`
	Model string `yaml:"model"`
}

type EnhancerConfig struct {
	// Provider is one of deepseek, openai, gemini.
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	Model    string `yaml:"model"`
}

type PathsConfig struct {
	InputFile      string `yaml:"input_file"`
	Inbox          string `yaml:"inbox"`
	Output         string `yaml:"output"`
	Temp           string `yaml:"temp"`
	Transcriptions string `yaml:"transcriptions"`
	Enhanced       string `yaml:"enhanced"`
}

type ReportConfig struct {
	SaveTranscripts bool `yaml:"save_transcripts"`
	Summary         bool `yaml:"summary"`
	Merge           bool `yaml:"merge"`
	Docx            bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	ProviderDeepSeek = "deepseek"
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"
)

func (c *Config) Validate() error {
	if c.Audio.ChunkSeconds < 0 {
		return fmt.Errorf("audio.chunk_seconds must be positive")
	}

	c.Enhancer.Provider = strings.ToLower(c.Enhancer.Provider)
	switch c.Enhancer.Provider {
	case "":
		c.Enhancer.Provider = ProviderDeepSeek
	case ProviderDeepSeek, ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("enhancer.provider %q is not supported", c.Enhancer.Provider)
	}

	if c.Audio.ChunkSeconds == 0 {
		c.Audio.ChunkSeconds = 600
	}
	if c.Audio.TargetFormat == "" {
		c.Audio.TargetFormat = "mp3"
	}
	if c.Audio.Bitrate == "" {
		c.Audio.Bitrate = "128k"
	}
	if c.Audio.FFmpegBinary == "" {
		c.Audio.FFmpegBinary = "ffmpeg"
	}
	if c.Audio.FFprobeBinary == "" {
		c.Audio.FFprobeBinary = "ffprobe"
	}
	if c.Transcription.URL == "" {
		c.Transcription.URL = "https://api.siliconflow.cn/v1/audio/transcriptions"
	}
	if c.Transcription.Model == "" {
		c.Transcription.Model = "FunAudioLLM/SenseVoiceSmall"
	}
	if c.Enhancer.BaseURL == "" {
		switch c.Enhancer.Provider {
		case ProviderDeepSeek:
			c.Enhancer.BaseURL = "https://api.deepseek.com/v1"
		case ProviderOpenAI:
			c.Enhancer.BaseURL = "https://api.openai.com/v1"
		}
	}
	if c.Enhancer.Model == "" {
		switch c.Enhancer.Provider {
		case ProviderDeepSeek:
			c.Enhancer.Model = "deepseek-chat"
		case ProviderOpenAI:
			c.Enhancer.Model = "gpt-4o-mini"
		case ProviderGemini:
			c.Enhancer.Model = "gemini-2.5-flash"
		}
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "output/temp"
	}
	if c.Paths.Transcriptions == "" {
		c.Paths.Transcriptions = "output/transcriptions"
	}
	if c.Paths.Enhanced == "" {
		c.Paths.Enhanced = "output/enhanced_summaries"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
