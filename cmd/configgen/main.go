package main

import (
	"flag"

	"github.com/danmuck/arpscope/internal/config"
	"github.com/danmuck/arpscope/internal/logging"
	"github.com/danmuck/arpscope/internal/observability"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultDecoderPath = "cmd/arpinspectd/decoder.toml"

func main() {
	observability.InitLogger("configgen", logging.RuntimeConfig(zerolog.InfoLevel))

	output := flag.String("output", defaultDecoderPath, "output path for decoder config template")
	validate := flag.Bool("validate", false, "validate an existing decoder config file")
	input := flag.String("input", defaultDecoderPath, "decoder config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		cfg, err := config.LoadDecoderConfig(*input)
		if err != nil {
			log.Fatal().Err(err).Str("path", *input).Msg("invalid decoder config")
		}
		log.Info().
			Str("path", *input).
			Int("hardware_types", len(cfg.HardwareTypes)).
			Msg("validated decoder config")
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal().Err(err).Msg("write decoder config template")
	}
	log.Info().Str("path", *output).Msg("wrote decoder config template")
}
