package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/arpscope/internal/arp"
	"github.com/danmuck/arpscope/internal/logging"
	"github.com/pelletier/go-toml/v2"
)

// DecoderConfig controls address rendering and catalog extensions.
type DecoderConfig struct {
	MACSeparator  string              `toml:"mac_separator"`
	ByteSeparator string              `toml:"byte_separator"`
	LogLevel      string              `toml:"log_level"`
	HardwareTypes []HardwareTypeEntry `toml:"hardware_types"`
}

// HardwareTypeEntry names a hardware code missing from the built-in table.
type HardwareTypeEntry struct {
	Code uint16 `toml:"code"`
	Name string `toml:"name"`
}

func DefaultDecoderConfig() DecoderConfig {
	return DecoderConfig{
		MACSeparator:  ":",
		ByteSeparator: ":",
		LogLevel:      "info",
	}
}

// LoadDecoderConfig reads path over the defaults. An empty path yields defaults.
func LoadDecoderConfig(path string) (DecoderConfig, error) {
	cfg := DefaultDecoderConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	if err := loadToml(path, &cfg); err != nil {
		return DecoderConfig{}, err
	}
	if err := ValidateDecoderConfig(cfg); err != nil {
		return DecoderConfig{}, err
	}
	return cfg, nil
}

// ParseDecoderConfig decodes TOML text over the defaults.
func ParseDecoderConfig(data []byte) (DecoderConfig, error) {
	cfg := DefaultDecoderConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DecoderConfig{}, fmt.Errorf("config parse failed: %w", err)
	}
	if err := ValidateDecoderConfig(cfg); err != nil {
		return DecoderConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// ValidateDecoderConfig rejects separators the renderer cannot use, unknown log
// levels, and hardware entries that would be ignored.
func ValidateDecoderConfig(cfg DecoderConfig) error {
	switch cfg.MACSeparator {
	case ":", "-":
	default:
		return fmt.Errorf("decoder config mac_separator must be \":\" or \"-\", got %q", cfg.MACSeparator)
	}
	if len(cfg.ByteSeparator) > 1 {
		return fmt.Errorf("decoder config byte_separator longer than one character: %q", cfg.ByteSeparator)
	}
	if strings.TrimSpace(cfg.LogLevel) != "" {
		if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("decoder config log_level unknown: %q", cfg.LogLevel)
		}
	}
	builtin := arp.DefaultCatalog()
	seen := make(map[uint16]struct{}, len(cfg.HardwareTypes))
	for i, entry := range cfg.HardwareTypes {
		if strings.TrimSpace(entry.Name) == "" {
			return fmt.Errorf("hardware_types[%d] missing name", i)
		}
		if name, ok := builtin.HardwareName(entry.Code); ok {
			return fmt.Errorf("hardware_types[%d] code %d is built in (%s)", i, entry.Code, name)
		}
		if _, ok := seen[entry.Code]; ok {
			return fmt.Errorf("hardware_types[%d] duplicate code %d", i, entry.Code)
		}
		seen[entry.Code] = struct{}{}
	}
	return nil
}
