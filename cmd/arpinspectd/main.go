package main

import (
	"os"

	"github.com/danmuck/arpscope/internal/arp"
	"github.com/danmuck/arpscope/internal/config"
	"github.com/danmuck/arpscope/internal/inspect"
	"github.com/danmuck/arpscope/internal/logging"
	"github.com/danmuck/arpscope/internal/observability"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const envConfigPath = "ARPSCOPE_CONFIG"

func main() {
	observability.InitLogger("arpinspectd", logging.RuntimeConfig(zerolog.InfoLevel))

	configPath := os.Getenv(envConfigPath)
	if configPath == "" {
		configPath = "cmd/arpinspectd/config.toml"
	}
	cfg, err := loadServiceConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load arpinspectd config")
	}
	log.Info().Str("path", configPath).Msg("loaded arpinspectd config")

	decCfg, err := config.LoadDecoderConfig(cfg.DecoderConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load decoder config")
	}
	level, ok := logging.ParseLevel(decCfg.LogLevel)
	if !ok {
		level = zerolog.InfoLevel
	}
	logger := observability.InitLogger("arpinspectd", logging.RuntimeConfig(level))

	decoder := arp.NewDecoder(append(config.DecoderOptions(decCfg), arp.WithLogger(logger))...)
	server := inspect.Appear(cfg.ID, cfg.Addr, cfg.CorsOrigins, decoder)
	server.LogEntries(logger.With().Str("component", "entries").Logger())

	log.Info().
		Str("id", server.ID).
		Str("addr", server.Addr).
		Int("hardware_types", len(decoder.Catalog().HardwareTypes())).
		Msg("arpinspectd started")
	if err := server.Serve(); err != nil {
		log.Fatal().Err(err).Msg("arpinspectd stopped")
	}
}
