package observability

import (
	"testing"

	"github.com/danmuck/arpscope/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitLoggerAppliesConfigLevel(t *testing.T) {
	prevGlobal, prevLogger := zerolog.GlobalLevel(), log.Logger
	defer func() {
		zerolog.SetGlobalLevel(prevGlobal)
		log.Logger = prevLogger
	}()

	l := InitLogger("arpinspectd", logging.Config{Level: zerolog.WarnLevel, NoColor: true})
	if l.GetLevel() != zerolog.WarnLevel || log.Logger.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %v", l.GetLevel())
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("global level not applied: %v", zerolog.GlobalLevel())
	}
}
