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
	"math/big"

	"github.com/holiman/uint256"

	"github.com/blinklabs-io/gooption/cbor"
	"github.com/blinklabs-io/gooption/ledger/common"
	"github.com/blinklabs-io/gooption/ledger/state"
)

const bankKeyPrefix = "bank"

// Bank keeps account balances in the same store as the contract state, so balance
// changes commit or roll back together with the contract's own writes
type Bank struct{}

func NewBank() *Bank {
	return &Bank{}
}

func balanceKey(address common.Address, denom string) []byte {
	// NUL cannot appear in a denom and keeps "a"+"b/c" apart from "a/b"+"c"
	return []byte(bankKeyPrefix + "\x00" + address.String() + "\x00" + denom)
}

// Balance returns the balance of a single denomination
func (b *Bank) Balance(
	store state.KVStore,
	address common.Address,
	denom string,
) (uint256.Int, error) {
	key := balanceKey(address, denom)
	data, err := store.Get(key)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			return uint256.Int{}, nil
		}
		return uint256.Int{}, state.StorageError{Op: "get", Key: string(key), Err: err}
	}
	var tmpAmount big.Int
	if _, err := cbor.Decode(data, &tmpAmount); err != nil {
		return uint256.Int{}, state.StorageError{Op: "decode", Key: string(key), Err: err}
	}
	amount, overflow := uint256.FromBig(&tmpAmount)
	if overflow || tmpAmount.Sign() < 0 {
		return uint256.Int{}, state.StorageError{
			Op:  "decode",
			Key: string(key),
			Err: errors.New("stored balance out of range"),
		}
	}
	return *amount, nil
}

// Balances returns the non-zero balances of the given denominations
func (b *Bank) Balances(
	store state.KVStore,
	address common.Address,
	denoms []string,
) (common.Coins, error) {
	ret := common.Coins{}
	for _, denom := range denoms {
		amount, err := b.Balance(store, address, denom)
		if err != nil {
			return nil, err
		}
		if amount.IsZero() {
			continue
		}
		ret = append(ret, common.Coin{Denom: denom, Amount: amount})
	}
	return ret, nil
}

func (b *Bank) setBalance(
	store state.KVStore,
	address common.Address,
	denom string,
	amount *uint256.Int,
) error {
	key := balanceKey(address, denom)
	if amount.IsZero() {
		if err := store.Delete(key); err != nil {
			return state.StorageError{Op: "delete", Key: string(key), Err: err}
		}
		return nil
	}
	data, err := cbor.Encode(amount.ToBig())
	if err != nil {
		return state.StorageError{Op: "encode", Key: string(key), Err: err}
	}
	if err := store.Set(key, data); err != nil {
		return state.StorageError{Op: "set", Key: string(key), Err: err}
	}
	return nil
}

func (b *Bank) credit(
	store state.KVStore,
	address common.Address,
	coin common.Coin,
) error {
	balance, err := b.Balance(store, address, coin.Denom)
	if err != nil {
		return err
	}
	newBalance, overflow := new(uint256.Int).AddOverflow(&balance, &coin.Amount)
	if overflow {
		return BalanceOverflowError{Address: address, Denom: coin.Denom}
	}
	return b.setBalance(store, address, coin.Denom, newBalance)
}

func (b *Bank) debit(
	store state.KVStore,
	address common.Address,
	coin common.Coin,
) error {
	balance, err := b.Balance(store, address, coin.Denom)
	if err != nil {
		return err
	}
	newBalance, underflow := new(uint256.Int).SubOverflow(&balance, &coin.Amount)
	if underflow {
		return InsufficientFundsError{
			Address:   address,
			Required:  coin,
			Available: common.Coin{Denom: coin.Denom, Amount: balance},
		}
	}
	return b.setBalance(store, address, coin.Denom, newBalance)
}

// Mint credits new coins to an address. The simulator uses this to fund accounts
func (b *Bank) Mint(
	store state.KVStore,
	address common.Address,
	coins common.Coins,
) error {
	for _, coin := range coins {
		if err := b.credit(store, address, coin); err != nil {
			return err
		}
	}
	return nil
}

// Send moves coins between two addresses. A failure part way through leaves earlier
// coins moved, so callers run it inside a CacheStore they can discard
func (b *Bank) Send(
	store state.KVStore,
	from common.Address,
	to common.Address,
	coins common.Coins,
) error {
	for _, coin := range coins {
		if err := b.debit(store, from, coin); err != nil {
			return err
		}
		if err := b.credit(store, to, coin); err != nil {
			return err
		}
	}
	return nil
}
