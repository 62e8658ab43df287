package main

import (
	"fmt"
	"io"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
	"github.com/Fantom-foundation/Carmen-logs/go/evmlog"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

var encodeCommand = cli.Command{
	Action: encode,
	Name:   "encode",
	Usage:  "prints the canonical RLP encoding of a JSON log and its hash",
	Flags: []cli.Flag{
		&logFileFlag,
	},
}

var bloomCommand = cli.Command{
	Action: bloom,
	Name:   "bloom",
	Usage:  "prints the bloom digest of a JSON log",
	Flags: []cli.Flag{
		&logFileFlag,
	},
}

func encode(ctx *cli.Context) error {
	log, err := readLog(ctx.String(logFileFlag.Name))
	if err != nil {
		return err
	}
	return printEncoding(ctx.App.Writer, log)
}

func bloom(ctx *cli.Context) error {
	log, err := readLog(ctx.String(logFileFlag.Name))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(ctx.App.Writer, "Bloom: %v\n", log.Bloom())
	return err
}

func printEncoding(out io.Writer, log evmlog.Log) error {
	encoded := log.Encode()
	if _, err := fmt.Fprintf(out, "RLP:  %s\n", hexutil.Encode(encoded)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "Hash: %v\n", common.Keccak256(encoded))
	return err
}
