package observability

import (
	"os"

	"github.com/danmuck/arpscope/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a console logger tagged with app as the global logger.
func InitLogger(app string, cfg logging.Config) zerolog.Logger {
	logger := logging.New(os.Stdout, cfg).With().Str("app", app).Logger()
	log.Logger = logger
	zerolog.SetGlobalLevel(cfg.Level)
	return logger
}
