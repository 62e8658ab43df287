package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Fantom-foundation/Carmen-logs/go/evmlog"
	"github.com/Fantom-foundation/Carmen-logs/go/logstore"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	inputFileFlag = cli.StringFlag{
		Name:     "input",
		Usage:    "a file listing one block per line as {\"block\": <n>, \"logs\": [...]}",
		Required: true,
	}
)

var importCommand = cli.Command{
	Action: importBlocks,
	Name:   "import",
	Usage:  "adds the logs of blocks listed in a JSON lines file to a log store",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
		&inputFileFlag,
	},
}

// maxLineSize bounds the size of a single block entry in the input.
const maxLineSize = 64 * 1024 * 1024

type blockEntry struct {
	Block *uint64       `json:"block"`
	Logs  *[]evmlog.Log `json:"logs"`
}

func importBlocks(ctx *cli.Context) (err error) {
	logger, err := getLogger(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()

	input, err := os.Open(ctx.String(inputFileFlag.Name))
	if err != nil {
		return err
	}
	defer input.Close()

	dir := ctx.String(dbDirectoryFlag.Name)
	logger.Info("opening log store", zap.String("dir", dir))
	store, err := open(dir)
	if err != nil {
		return err
	}
	defer func() {
		logger.Info("closing log store", zap.String("dir", dir))
		err = closeStore(store, err)
	}()

	blocks, logs, err := importLogs(input, store, logger)
	if err != nil {
		return err
	}
	logger.Info("import complete", zap.Int("blocks", blocks), zap.Int("logs", logs))
	return nil
}

// importLogs adds the blocks listed in the given JSON lines input to the
// store. Empty lines are skipped. Ingestion stops at the first invalid entry.
func importLogs(input io.Reader, store logstore.Store, logger *zap.Logger) (blocks, logs int, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var entry blockEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return blocks, logs, fmt.Errorf("line %d: %w", line, err)
		}
		if entry.Block == nil || entry.Logs == nil {
			return blocks, logs, fmt.Errorf("line %d: entry needs fields \"block\" and \"logs\"", line)
		}
		if err := store.AddLogs(*entry.Block, *entry.Logs); err != nil {
			return blocks, logs, fmt.Errorf("line %d: %w", line, err)
		}
		logger.Debug("block imported", zap.Uint64("block", *entry.Block), zap.Int("logs", len(*entry.Logs)))
		blocks++
		logs += len(*entry.Logs)
	}
	if err := scanner.Err(); err != nil {
		return blocks, logs, err
	}
	return blocks, logs, store.Flush()
}
