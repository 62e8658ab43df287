package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Fantom-foundation/Carmen-logs/go/evmlog"
	"github.com/Fantom-foundation/Carmen-logs/go/logstore"
	"github.com/Fantom-foundation/Carmen-logs/go/logstore/ldb"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	dbDirectoryFlag = cli.StringFlag{
		Name:     "dir",
		Usage:    "the directory of the log store",
		EnvVars:  []string{"LOGS_DIR"},
		Required: true,
	}
	logFileFlag = cli.StringFlag{
		Name:     "log",
		Usage:    "a file containing a single log in JSON format",
		Required: true,
	}
	logLevelFlag = cli.StringFlag{
		Name:    "log-level",
		Usage:   "the level of emitted messages (debug, info, warn, error)",
		EnvVars: []string{"LOGS_LOG_LEVEL"},
		Value:   "info",
	}
)

// open opens the LevelDB based log store in the given directory.
func open(dir string) (logstore.Store, error) {
	return ldb.NewStore(ldb.Parameters{Directory: dir})
}

// closeStore closes the store and merges a failure into the given error.
func closeStore(store logstore.Store, err error) error {
	if closeErr := store.Close(); closeErr != nil {
		return errors.Join(err, fmt.Errorf("failed to close store: %w", closeErr))
	}
	return err
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func getLogger(ctx *cli.Context) (*zap.Logger, error) {
	return newLogger(ctx.String(logLevelFlag.Name))
}

// readLog parses the JSON log contained in the given file.
func readLog(path string) (evmlog.Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return evmlog.Log{}, err
	}
	return evmlog.FromJson(data)
}
