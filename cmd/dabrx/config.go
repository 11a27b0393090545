package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saxhorn/dabrx/internal/ingest"
)

// Config is the YAML configuration for the receiver binary. Every
// field has a working default; SERVER_ADDR and INPUT_PATH environment
// variables override the file for container deployments.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Server ServerConfig `yaml:"server"`
	Audio  AudioConfig  `yaml:"audio"`
	MQTT   MQTTConfig   `yaml:"mqtt"`
}

// InputConfig selects the soft-bit source.
type InputConfig struct {
	// Path to the soft-bit recording, "-" for stdin.
	Path string `yaml:"path"`
	// Mode is the transmission mode: "I", "II" or "IV".
	Mode string `yaml:"mode"`
	// Realtime paces reads at one frame per frame duration instead of
	// draining the file as fast as it decodes.
	Realtime bool `yaml:"realtime"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// AudioConfig selects which sub-channels to decode.
type AudioConfig struct {
	// Subchannels restricts decoding to the listed ids. Empty means
	// every signalled audio component is tuned.
	Subchannels []int      `yaml:"subchannels"`
	Opus        OpusConfig `yaml:"opus"`
}

// OpusConfig enables Opus re-encoding of streamed PCM. It only takes
// effect in builds with the opus tag.
type OpusConfig struct {
	Enabled    bool `yaml:"enabled"`
	Bitrate    int  `yaml:"bitrate"`
	Complexity int  `yaml:"complexity"`
}

// MQTTConfig points metadata publishing at a broker.
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TopicPrefix string `yaml:"topic_prefix"`
}

func defaultConfig() Config {
	return Config{
		Input:  InputConfig{Path: "-", Mode: "I"},
		Server: ServerConfig{Addr: ":8090"},
		Audio: AudioConfig{
			Opus: OpusConfig{Bitrate: 96_000, Complexity: 5},
		},
		MQTT: MQTTConfig{TopicPrefix: "dabrx"},
	}
}

// loadConfig reads path when it is non-empty, then applies environment
// overrides.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}
	cfg.Server.Addr = envOr("SERVER_ADDR", cfg.Server.Addr)
	cfg.Input.Path = envOr("INPUT_PATH", cfg.Input.Path)
	return cfg, nil
}

func parseMode(s string) (ingest.Mode, error) {
	switch s {
	case "I", "1", "":
		return ingest.ModeI, nil
	case "II", "2":
		return ingest.ModeII, nil
	case "III", "3":
		return ingest.ModeIII, nil
	case "IV", "4":
		return ingest.ModeIV, nil
	}
	return 0, fmt.Errorf("unknown transmission mode %q", s)
}

// allowsSubchannel reports whether the config tunes the given id.
func (c AudioConfig) allowsSubchannel(id uint8) bool {
	if len(c.Subchannels) == 0 {
		return true
	}
	for _, want := range c.Subchannels {
		if want == int(id) {
			return true
		}
	}
	return false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
