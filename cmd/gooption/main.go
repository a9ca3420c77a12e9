// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/blinklabs-io/gooption/ledger/common"
	"github.com/blinklabs-io/gooption/ledger/state"
	"github.com/blinklabs-io/gooption/runtime"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	config, cmdArgs, err := ParseConfig(args)
	if err != nil {
		fmt.Fprintf(stderr, "failed to parse config: %s\n", err)
		return 1
	}
	if config.Conf.Dump {
		data, err := DumpConfig(config)
		if err != nil {
			fmt.Fprintf(stderr, "failed to dump config: %s\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
		return 0
	}
	logger, logCloser, err := NewLogger(config.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "failed to create logger: %s\n", err)
		return 1
	}
	defer logCloser.Close()
	store, storeCloser, err := openStore(config.Store, logger)
	if err != nil {
		logger.Error("failed to open state store", "error", err)
		return 1
	}
	defer storeCloser.Close()
	rt, err := runtime.New(store, runtimeOptions(config, logger)...)
	if err != nil {
		logger.Error("failed to create runtime", "error", err)
		return 1
	}
	cmdCtx := &commandContext{
		rt:      rt,
		chainId: config.Chain.Id,
		out:     stdout,
	}
	if err := runCommand(cmdCtx, cmdArgs); err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}
	return 0
}

func runtimeOptions(config *Config, logger *slog.Logger) []runtime.RuntimeOptionFunc {
	opts := []runtime.RuntimeOptionFunc{
		runtime.WithLogger(logger),
	}
	if config.Chain.Bech32Prefix != "" {
		opts = append(opts, runtime.WithBech32Prefix(config.Chain.Bech32Prefix))
	}
	if config.Chain.ContractAddress != "" {
		opts = append(
			opts,
			runtime.WithContractAddress(common.Address(config.Chain.ContractAddress)),
		)
	}
	return opts
}

func openStore(config StoreConfig, logger *slog.Logger) (state.KVStore, io.Closer, error) {
	switch config.Backend {
	case StoreBackendMemory:
		return state.NewMemoryStore(), nopCloser{}, nil
	case StoreBackendPebble:
		store, err := state.OpenPebbleStore(config.Dir, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("invalid store backend: %s", config.Backend)
	}
}
