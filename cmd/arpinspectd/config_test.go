package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/arpscope/internal/config"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadServiceConfigDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")
	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ID != "arpinspectd" || cfg.Addr != "127.0.0.1:9200" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DecoderConfig != "" || len(cfg.CorsOrigins) != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadServiceConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
id = "inspect.local"
addr = ":9300"
cors_origins = [" http://a.test ", ""]
decoder_config = "decoder.toml"
`)
	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ID != "inspect.local" || cfg.Addr != ":9300" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if len(cfg.CorsOrigins) != 1 || cfg.CorsOrigins[0] != "http://a.test" {
		t.Fatalf("unexpected origins: %+v", cfg.CorsOrigins)
	}
	if cfg.DecoderConfig != filepath.Join(dir, "decoder.toml") {
		t.Fatalf("decoder config not resolved relative to config file: %q", cfg.DecoderConfig)
	}
}

func TestLoadServiceConfigRejectsUnknownAndEmpty(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadServiceConfig(writeConfig(t, dir, `listen = ":1"`)); err == nil || !strings.Contains(err.Error(), "listen") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
	if _, err := loadServiceConfig(writeConfig(t, dir, `addr = " "`)); err == nil {
		t.Fatalf("expected empty addr error")
	}
	if _, err := loadServiceConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatalf("expected missing file error")
	}
}

func TestShippedConfigLoads(t *testing.T) {
	cfg, err := loadServiceConfig("config.toml")
	if err != nil {
		t.Fatalf("load shipped config: %v", err)
	}
	if cfg.DecoderConfig != "decoder.toml" {
		t.Fatalf("unexpected decoder config path: %q", cfg.DecoderConfig)
	}
	dec, err := config.LoadDecoderConfig(cfg.DecoderConfig)
	if err != nil {
		t.Fatalf("load shipped decoder config: %v", err)
	}
	if len(dec.HardwareTypes) != 1 || dec.HardwareTypes[0].Name != "InfiniBand" {
		t.Fatalf("unexpected shipped hardware types: %+v", dec.HardwareTypes)
	}
}
