package config

import (
	"strings"

	"github.com/danmuck/arpscope/internal/arp"
)

// DecoderOptions converts cfg into decoder options, building a dedicated
// catalog when extensions are configured.
func DecoderOptions(cfg DecoderConfig) []arp.Option {
	opts := []arp.Option{
		arp.WithRenderer(arp.Renderer{
			MACSeparator:  cfg.MACSeparator,
			ByteSeparator: cfg.ByteSeparator,
		}),
	}
	if len(cfg.HardwareTypes) > 0 {
		names := make(map[uint16]string, len(cfg.HardwareTypes))
		for _, entry := range cfg.HardwareTypes {
			names[entry.Code] = strings.TrimSpace(entry.Name)
		}
		opts = append(opts, arp.WithCatalog(arp.NewCatalog(arp.WithHardwareNames(names))))
	}
	return opts
}
