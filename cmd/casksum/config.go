package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type configFlags struct {
	Short     bool   `short:"s" long:"short" description:"Print the abbreviated display form of each hash"`
	VerifyHex string `short:"v" long:"verify" description:"Verify that the input's hash equals the given hex string (accepts an optional 0x prefix)"`
	Files     []string
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	parser.Usage = "casksum [OPTIONS] [FILE]...\n\nWith no FILE, read standard input."
	remainingArgs, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	cfg.Files = remainingArgs

	if cfg.VerifyHex != "" && len(cfg.Files) > 1 {
		return nil, errors.New("--verify accepts at most one input")
	}
	if cfg.VerifyHex != "" && cfg.Short {
		return nil, errors.New("--verify and --short cannot be used together")
	}

	return cfg, nil
}
