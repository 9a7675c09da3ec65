package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	if got := GetInt("server.port"); got != 8080 {
		t.Errorf("Expected default server.port to be 8080, got %d", got)
	}
	if got := GetString("reporting.mode"); got != "log" {
		t.Errorf("Expected default reporting.mode to be \"log\", got %q", got)
	}
	if got := GetString("speech.language"); got != "en-US" {
		t.Errorf("Expected default speech.language to be \"en-US\", got %q", got)
	}
	if got := viper.GetStringSlice("translation.supported_targets"); len(got) != 6 {
		t.Errorf("Expected 6 default target languages, got %d", len(got))
	}

	if err := validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			setup:   func() {},
			wantErr: false,
		},
		{
			name: "invalid port",
			setup: func() {
				viper.Set("server.port", -1)
			},
			wantErr: true,
		},
		{
			name: "unknown reporting mode",
			setup: func() {
				viper.Set("reporting.mode", "stream")
			},
			wantErr: true,
		},
		{
			name: "log mode without log path",
			setup: func() {
				viper.Set("reporting.mode", "log")
				viper.Set("reporting.log_path", "")
			},
			wantErr: true,
		},
		{
			name: "audio mode needs no log path",
			setup: func() {
				viper.Set("reporting.mode", "audio")
				viper.Set("reporting.log_path", "")
			},
			wantErr: false,
		},
		{
			name: "empty recognition language",
			setup: func() {
				viper.Set("speech.language", "")
			},
			wantErr: true,
		},
		{
			name: "no supported target languages",
			setup: func() {
				viper.Set("translation.supported_targets", []string{})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			setDefaults()
			tt.setup()

			err := validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigStructValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Reporting.Mode = "audio"
	cfg.Speech.Language = "en-US"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected config to validate, got %v", err)
	}

	cfg.Reporting.Mode = "both"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected invalid reporting mode to fail validation")
	}
}
