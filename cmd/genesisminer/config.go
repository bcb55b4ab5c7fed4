package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/meowcoin-foundation/mewcd/version"
)

type configFlags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	Threads     int    `short:"t" long:"threads" description:"Number of worker threads. Defaults to the number of CPUs."`
	LogLevel    string `short:"d" long:"loglevel" default:"info" description:"Logging level {trace, debug, info, warn, error, critical}"`

	Positional struct {
		Chains []string `positional-arg-name:"chain" description:"Chain variants to mine (main, testnet, testnet4, signet, regtest). Empty mines all of them."`
	} `positional-args:"true"`
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	for _, name := range cfg.Positional.Chains {
		if genesisSpecForName(name) == nil {
			return nil, errors.Errorf("unknown chain %q", name)
		}
	}

	return cfg, nil
}
