package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
	"github.com/Fantom-foundation/Carmen-logs/go/evmlog"
	"github.com/Fantom-foundation/Carmen-logs/go/logstore"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	fromBlockFlag = cli.Uint64Flag{
		Name:  "from",
		Usage: "the first block to be searched",
		Value: 0,
	}
	toBlockFlag = cli.Uint64Flag{
		Name:  "to",
		Usage: "the last block to be searched",
		Value: math.MaxUint64,
	}
	addressFlag = cli.StringSliceFlag{
		Name:  "address",
		Usage: "accepted emitting contract, may be repeated",
	}
	topicFlag = cli.StringSliceFlag{
		Name:  "topic",
		Usage: "accepted topics of the next position, alternatives separated by '|', '*' for any",
	}
)

var queryCommand = cli.Command{
	Action: query,
	Name:   "query",
	Usage:  "prints the logs of a log store matching the given criteria",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
		&fromBlockFlag,
		&toBlockFlag,
		&addressFlag,
		&topicFlag,
	},
}

type matchJson struct {
	Block uint64     `json:"block"`
	Index int        `json:"index"`
	Log   evmlog.Log `json:"log"`
}

func query(ctx *cli.Context) (err error) {
	logger, err := getLogger(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()

	q, err := parseQuery(
		ctx.Uint64(fromBlockFlag.Name),
		ctx.Uint64(toBlockFlag.Name),
		ctx.StringSlice(addressFlag.Name),
		ctx.StringSlice(topicFlag.Name),
	)
	if err != nil {
		return err
	}

	dir := ctx.String(dbDirectoryFlag.Name)
	logger.Info("opening log store", zap.String("dir", dir))
	store, err := open(dir)
	if err != nil {
		return err
	}
	defer func() {
		err = closeStore(store, err)
	}()

	matches, err := store.Filter(q)
	if err != nil {
		return err
	}
	logger.Info("query complete", zap.Uint64("from", q.From), zap.Uint64("to", q.To), zap.Int("matches", len(matches)))
	return writeMatches(ctx.App.Writer, matches)
}

// parseQuery builds a query from command line arguments. Each topic argument
// describes one position; '*' or an empty value accepts any topic.
func parseQuery(from, to uint64, addresses, topics []string) (logstore.Query, error) {
	res := logstore.Query{From: from, To: to}
	for _, str := range addresses {
		address, err := common.AddressFromString(strings.TrimSpace(str))
		if err != nil {
			return logstore.Query{}, fmt.Errorf("invalid address %q: %w", str, err)
		}
		res.Addresses = append(res.Addresses, address)
	}
	for i, str := range topics {
		alternatives := []common.Hash{}
		str = strings.TrimSpace(str)
		if str != "*" && str != "" {
			for _, cur := range strings.Split(str, "|") {
				topic, err := common.HashFromString(strings.TrimSpace(cur))
				if err != nil {
					return logstore.Query{}, fmt.Errorf("invalid topic %q at position %d: %w", cur, i, err)
				}
				alternatives = append(alternatives, topic)
			}
		}
		res.Topics = append(res.Topics, alternatives)
	}
	return res, nil
}

// writeMatches prints one JSON object per match and line.
func writeMatches(out io.Writer, matches []logstore.Match) error {
	encoder := json.NewEncoder(out)
	for _, match := range matches {
		if err := encoder.Encode(matchJson{Block: match.Block, Index: match.Index, Log: match.Log}); err != nil {
			return err
		}
	}
	return nil
}
