package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Reporting   ReportingConfig   `mapstructure:"reporting"`
	Speech      SpeechConfig      `mapstructure:"speech"`
	Translation TranslationConfig `mapstructure:"translation"`
	Synthesis   SynthesisConfig   `mapstructure:"synthesis"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains report history store settings
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	LogQueries bool   `mapstructure:"log_queries"`
}

// ReportingConfig selects the pipeline mode and report log location.
// Mode is one of "audio" (respond with synthesized speech) or "log"
// (append to the report log and confirm).
type ReportingConfig struct {
	Mode          string `mapstructure:"mode"`
	LogPath       string `mapstructure:"log_path"`
	MaxAudioBytes int64  `mapstructure:"max_audio_bytes"`
}

// SpeechConfig contains speech recognition settings. Language is the
// recognition language tag, fixed per deployment (uploads are expected
// to be 16 kHz linear PCM).
type SpeechConfig struct {
	Language        string `mapstructure:"language"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// TranslationConfig contains translation settings
type TranslationConfig struct {
	SupportedTargets []string `mapstructure:"supported_targets"`
	CredentialsFile  string   `mapstructure:"credentials_file"`
}

// SynthesisConfig contains speech synthesis settings
type SynthesisConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
}
