package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saxhorn/dabrx/internal/ingest"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input.Path != "-" || cfg.Input.Mode != "I" {
		t.Errorf("input defaults = %+v", cfg.Input)
	}
	if cfg.Server.Addr != ":8090" {
		t.Errorf("server addr = %q", cfg.Server.Addr)
	}
	if cfg.Audio.Opus.Bitrate != 96_000 {
		t.Errorf("opus bitrate = %d", cfg.Audio.Opus.Bitrate)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
input:
  path: /tmp/ensemble.bin
  mode: IV
  realtime: true
audio:
  subchannels: [5, 9]
mqtt:
  enabled: true
  broker: tcp://broker:1883
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SERVER_ADDR", ":9999")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input.Path != "/tmp/ensemble.bin" || !cfg.Input.Realtime {
		t.Errorf("input = %+v", cfg.Input)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("env override lost, addr = %q", cfg.Server.Addr)
	}
	if !cfg.MQTT.Enabled || cfg.MQTT.Broker != "tcp://broker:1883" {
		t.Errorf("mqtt = %+v", cfg.MQTT)
	}
	if cfg.MQTT.TopicPrefix != "dabrx" {
		t.Errorf("default topic prefix lost: %q", cfg.MQTT.TopicPrefix)
	}

	if !cfg.Audio.allowsSubchannel(5) || cfg.Audio.allowsSubchannel(6) {
		t.Error("subchannel filter not applied")
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    ingest.Mode
		wantErr bool
	}{
		{in: "I", want: ingest.ModeI},
		{in: "", want: ingest.ModeI},
		{in: "2", want: ingest.ModeII},
		{in: "IV", want: ingest.ModeIV},
		{in: "V", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMode(%q) accepted", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseMode(%q) = %v, %v", tt.in, got, err)
		}
	}
}
