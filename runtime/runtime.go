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

package runtime

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/blinklabs-io/gooption/cbor"
	"github.com/blinklabs-io/gooption/contract/option"
	"github.com/blinklabs-io/gooption/contract/version"
	"github.com/blinklabs-io/gooption/ledger/common"
	"github.com/blinklabs-io/gooption/ledger/state"
)

const DefaultContractAddress common.Address = "contract"

// Runtime hosts a single option contract instance on top of a KV store. It escrows the
// funds attached to each call, runs the contract and executes the resulting bank
// messages. All writes of a call are committed together or not at all
type Runtime struct {
	mutex            sync.Mutex
	store            state.KVStore
	contract         *option.Contract
	bank             *Bank
	logger           *slog.Logger
	contractAddress  common.Address
	bech32Prefix     string
	addressValidator func(common.Address) error
}

// Result is the outcome of a committed call
type Result struct {
	TxHash   common.Blake2b256 `json:"tx_hash"`
	Response *common.Response  `json:"response"`
}

// New returns a Runtime backed by the given store
func New(store state.KVStore, opts ...RuntimeOptionFunc) (*Runtime, error) {
	if store == nil {
		return nil, errors.New("a store must be provided")
	}
	r := &Runtime{
		store: store,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.bank == nil {
		r.bank = NewBank()
	}
	if r.addressValidator == nil {
		r.addressValidator = common.Address.Validate
	}
	if r.contractAddress == "" {
		if r.bech32Prefix != "" {
			hash := common.Blake2b256Hash([]byte(option.ContractName))
			addr, err := common.NewAddressFromBytes(
				r.bech32Prefix,
				hash.Bytes()[:common.AddressHashSize],
			)
			if err != nil {
				return nil, err
			}
			r.contractAddress = addr
		} else {
			r.contractAddress = DefaultContractAddress
		}
	}
	if err := r.validateAddress(r.contractAddress); err != nil {
		return nil, err
	}
	if err := version.Assert(r.store, option.ContractName); err != nil {
		return nil, err
	}
	r.contract = option.New(r.logger)
	return r, nil
}

// ContractAddress returns the address holding escrowed funds
func (r *Runtime) ContractAddress() common.Address {
	return r.contractAddress
}

// Bank returns the bank used for escrow and settlement
func (r *Runtime) Bank() *Bank {
	return r.bank
}

// Store returns the underlying store
func (r *Runtime) Store() state.KVStore {
	return r.store
}

// Instantiate creates the option, locking the attached funds as collateral
func (r *Runtime) Instantiate(
	env common.Env,
	info common.MessageInfo,
	msg option.InstantiateMsg,
) (*Result, error) {
	if err := msg.CounterOffer.Validate(); err != nil {
		return nil, InvalidFundsError{Err: err}
	}
	return r.run(
		env,
		info,
		option.MethodCreate,
		msg,
		func(store state.KVStore, env common.Env) (*common.Response, error) {
			return r.contract.Instantiate(store, env, info, msg)
		},
	)
}

// Execute runs a transfer, exercise or burn
func (r *Runtime) Execute(
	env common.Env,
	info common.MessageInfo,
	msg option.ExecuteMsg,
) (*Result, error) {
	if msg.Transfer != nil {
		if err := r.validateAddress(msg.Transfer.Recipient); err != nil {
			return nil, err
		}
	}
	return r.run(
		env,
		info,
		msg.Name(),
		msg,
		func(store state.KVStore, env common.Env) (*common.Response, error) {
			return r.contract.Execute(store, env, info, msg)
		},
	)
}

// Query runs a read-only query and returns its JSON encoded result
func (r *Runtime) Query(env common.Env, msg option.QueryMsg) ([]byte, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	env.Contract.Address = r.contractAddress
	return r.contract.Query(r.store, env, msg)
}

// Balance returns the bank balance of an address in the given denominations
func (r *Runtime) Balance(address common.Address, denoms ...string) (common.Coins, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.bank.Balances(r.store, address, denoms)
}

// Mint credits coins to an address outside of any contract call
func (r *Runtime) Mint(address common.Address, coins common.Coins) error {
	if err := r.validateAddress(address); err != nil {
		return err
	}
	if err := coins.Validate(); err != nil {
		return InvalidFundsError{Err: err}
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	cache := state.NewCacheStore(r.store)
	if err := r.bank.Mint(cache, address, coins); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return err
	}
	r.logger.Info(
		"minted coins",
		"component", "runtime",
		"address", address,
		"amount", coins.String(),
	)
	return nil
}

type callFunc func(state.KVStore, common.Env) (*common.Response, error)

func (r *Runtime) run(
	env common.Env,
	info common.MessageInfo,
	method string,
	msg any,
	fn callFunc,
) (*Result, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	env.Contract.Address = r.contractAddress
	txHash, err := TxHash(env, info, method, msg)
	if err != nil {
		return nil, err
	}
	logger := r.logger.With(
		"component", "runtime",
		"method", method,
		"sender", info.Sender,
		"height", env.Block.Height,
		"tx_hash", txHash.String(),
	)
	if err := r.validateAddress(info.Sender); err != nil {
		logger.Warn("transaction rejected", "error", err)
		return nil, err
	}
	if err := info.Funds.Validate(); err != nil {
		err = InvalidFundsError{Err: err}
		logger.Warn("transaction rejected", "error", err)
		return nil, err
	}
	cache := state.NewCacheStore(r.store)
	resp, err := r.execute(cache, env, info, fn)
	if err != nil {
		cache.Discard()
		logger.Warn("transaction failed", "error", err)
		return nil, err
	}
	if err := cache.Write(); err != nil {
		logger.Error("failed to commit transaction", "error", err)
		return nil, err
	}
	attrs := make([]any, 0, len(resp.Attributes))
	for _, attr := range resp.Attributes {
		attrs = append(attrs, slog.String(attr.Key, attr.Value))
	}
	logger.Info(
		"transaction committed",
		"funds", info.Funds.String(),
		"messages", len(resp.Messages),
		slog.Group("attributes", attrs...),
	)
	return &Result{TxHash: txHash, Response: resp}, nil
}

func (r *Runtime) execute(
	store state.KVStore,
	env common.Env,
	info common.MessageInfo,
	fn callFunc,
) (*common.Response, error) {
	// Escrow attached funds before the contract sees them
	if err := r.bank.Send(store, info.Sender, r.contractAddress, info.Funds); err != nil {
		return nil, err
	}
	resp, err := fn(store, env)
	if err != nil {
		return nil, err
	}
	for idx, msg := range resp.Messages {
		if err := r.bank.Send(store, r.contractAddress, msg.ToAddress, msg.Amount); err != nil {
			return nil, SettlementError{Index: idx, Msg: msg, Err: err}
		}
	}
	return resp, nil
}

func (r *Runtime) validateAddress(address common.Address) error {
	if err := r.addressValidator(address); err != nil {
		return InvalidAddressError{Address: address, Err: err}
	}
	return nil
}

type txEnvelope struct {
	cbor.StructAsArray
	ChainId  string
	Height   uint64
	Contract common.Address
	Sender   common.Address
	Funds    common.Coins
	Method   string
	Msg      any
}

// TxHash identifies a call by the Blake2b-256 hash of the CBOR encoding of its block,
// sender, funds and message
func TxHash(
	env common.Env,
	info common.MessageInfo,
	method string,
	msg any,
) (common.Blake2b256, error) {
	data, err := cbor.Encode(
		&txEnvelope{
			ChainId:  env.Block.ChainId,
			Height:   env.Block.Height,
			Contract: env.Contract.Address,
			Sender:   info.Sender,
			Funds:    info.Funds,
			Method:   method,
			Msg:      msg,
		},
	)
	if err != nil {
		return common.Blake2b256{}, fmt.Errorf("encode transaction: %w", err)
	}
	return common.Blake2b256Hash(data), nil
}
