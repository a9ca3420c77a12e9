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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/blinklabs-io/gooption/cbor"
	"github.com/blinklabs-io/gooption/contract/option"
	"github.com/blinklabs-io/gooption/contract/version"
	"github.com/blinklabs-io/gooption/ledger/common"
	"github.com/blinklabs-io/gooption/runtime"
)

type txFlags struct {
	flagset *flag.FlagSet
	height  uint64
	sender  string
	funds   string
}

func newTxFlags(name string) *txFlags {
	f := &txFlags{
		flagset: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	f.flagset.Uint64Var(&f.height, "height", 1, "block height the transaction is executed at")
	f.flagset.StringVar(&f.sender, "sender", "", "address of the transaction sender")
	f.flagset.StringVar(&f.funds, "funds", "", "funds attached to the transaction, e.g. 1BTC,5ETH")
	return f
}

func (f *txFlags) env(chainId string) common.Env {
	return common.Env{
		Block: common.BlockInfo{
			Height:  f.height,
			Time:    time.Now().UTC(),
			ChainId: chainId,
		},
	}
}

func (f *txFlags) info() (common.MessageInfo, error) {
	funds, err := common.ParseCoins(f.funds)
	if err != nil {
		return common.MessageInfo{}, fmt.Errorf("invalid --funds: %w", err)
	}
	return common.MessageInfo{
		Sender: common.Address(f.sender),
		Funds:  funds,
	}, nil
}

type commandContext struct {
	rt      *runtime.Runtime
	chainId string
	out     io.Writer
}

func (c *commandContext) printJson(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, string(data))
	return err
}

// runCommand dispatches a subcommand. args[0] is the subcommand name
func runCommand(c *commandContext, args []string) error {
	if len(args) < 1 {
		return errors.New("you must specify a subcommand (instantiate, transfer, exercise, burn, query, balance, mint, version or inspect)")
	}
	switch args[0] {
	case "instantiate":
		return cmdInstantiate(c, args[1:])
	case "transfer":
		return cmdTransfer(c, args[1:])
	case "exercise":
		return cmdExecute(c, args[0], args[1:], option.ExecuteMsg{Exercise: &option.ExerciseMsg{}})
	case "burn":
		return cmdExecute(c, args[0], args[1:], option.ExecuteMsg{Burn: &option.BurnMsg{}})
	case "query":
		return cmdQuery(c, args[1:])
	case "balance":
		return cmdBalance(c, args[1:])
	case "mint":
		return cmdMint(c, args[1:])
	case "version":
		return cmdVersion(c)
	case "inspect":
		return cmdInspect(c, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func cmdInstantiate(c *commandContext, args []string) error {
	f := newTxFlags("instantiate")
	counterOffer := f.flagset.String("counter-offer", "", "coins the owner must pay to exercise, e.g. 40ETH")
	expires := f.flagset.Uint64("expires", 0, "block height at which the option expires")
	if err := f.flagset.Parse(args); err != nil {
		return err
	}
	info, err := f.info()
	if err != nil {
		return err
	}
	coins, err := common.ParseCoins(*counterOffer)
	if err != nil {
		return fmt.Errorf("invalid --counter-offer: %w", err)
	}
	result, err := c.rt.Instantiate(
		f.env(c.chainId),
		info,
		option.InstantiateMsg{
			CounterOffer: coins,
			Expires:      *expires,
		},
	)
	if err != nil {
		return err
	}
	return c.printJson(result)
}

func cmdTransfer(c *commandContext, args []string) error {
	f := newTxFlags("transfer")
	recipient := f.flagset.String("recipient", "", "address of the new owner")
	if err := f.flagset.Parse(args); err != nil {
		return err
	}
	info, err := f.info()
	if err != nil {
		return err
	}
	result, err := c.rt.Execute(
		f.env(c.chainId),
		info,
		option.ExecuteMsg{
			Transfer: &option.TransferMsg{Recipient: common.Address(*recipient)},
		},
	)
	if err != nil {
		return err
	}
	return c.printJson(result)
}

func cmdExecute(c *commandContext, name string, args []string, msg option.ExecuteMsg) error {
	f := newTxFlags(name)
	if err := f.flagset.Parse(args); err != nil {
		return err
	}
	info, err := f.info()
	if err != nil {
		return err
	}
	result, err := c.rt.Execute(f.env(c.chainId), info, msg)
	if err != nil {
		return err
	}
	return c.printJson(result)
}

func cmdQuery(c *commandContext, args []string) error {
	f := flag.NewFlagSet("query", flag.ContinueOnError)
	if err := f.Parse(args); err != nil {
		return err
	}
	data, err := c.rt.Query(
		common.Env{Block: common.BlockInfo{ChainId: c.chainId}},
		option.QueryMsg{Config: &option.ConfigQuery{}},
	)
	if err != nil {
		return err
	}
	return c.printJson(json.RawMessage(data))
}

func cmdBalance(c *commandContext, args []string) error {
	f := flag.NewFlagSet("balance", flag.ContinueOnError)
	address := f.String("address", "", "address to show the balance of")
	denoms := f.StringSlice("denoms", nil, "denominations to show")
	if err := f.Parse(args); err != nil {
		return err
	}
	if *address == "" {
		return errors.New("you must specify --address")
	}
	coins, err := c.rt.Balance(common.Address(*address), *denoms...)
	if err != nil {
		return err
	}
	return c.printJson(coins)
}

func cmdMint(c *commandContext, args []string) error {
	f := flag.NewFlagSet("mint", flag.ContinueOnError)
	address := f.String("address", "", "address to credit")
	amount := f.String("amount", "", "coins to credit, e.g. 1BTC,5ETH")
	if err := f.Parse(args); err != nil {
		return err
	}
	coins, err := common.ParseCoins(*amount)
	if err != nil {
		return fmt.Errorf("invalid --amount: %w", err)
	}
	if coins.IsEmpty() {
		return errors.New("you must specify --amount")
	}
	if err := c.rt.Mint(common.Address(*address), coins); err != nil {
		return err
	}
	return c.printJson(coins)
}

func cmdVersion(c *commandContext) error {
	info, err := version.Get(c.rt.Store())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, info.String())
	return err
}

func cmdInspect(c *commandContext, args []string) error {
	f := flag.NewFlagSet("inspect", flag.ContinueOnError)
	key := f.String("key", option.StateKey, "store key to dump")
	if err := f.Parse(args); err != nil {
		return err
	}
	data, err := c.rt.Store().Get([]byte(*key))
	if err != nil {
		return err
	}
	dump, err := cbor.DumpStructure(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.out, dump)
	return err
}
