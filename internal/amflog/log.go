// Package amflog is a minimal global-logger facade around zerolog,
// consumed only by cmd/amfdemo. The core packages (curve, sigma, amf)
// stay side-effect-free and never import this package.
package amflog

import (
	"cmp"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	log   zerolog.Logger
	logMu sync.RWMutex
)

func init() {
	Init(cmp.Or(os.Getenv("AMF_LOG_LEVEL"), "info"))
}

// Init (re)configures the global logger at the given zerolog level name.
// An unrecognized level falls back to info.
func Init(levelName string) {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	setLogger(logger)
}

// Logger returns the current global logger.
func Logger() *zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return &log
}

func setLogger(logger zerolog.Logger) {
	logMu.Lock()
	log = logger
	logMu.Unlock()
}
