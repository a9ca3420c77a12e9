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

package runtime_test

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gooption/ledger/common"
	"github.com/blinklabs-io/gooption/ledger/state"
	"github.com/blinklabs-io/gooption/runtime"
)

func TestBankMintAndSend(t *testing.T) {
	store := state.NewMemoryStore()
	bank := runtime.NewBank()
	require.NoError(t, bank.Mint(store, "alice", common.NewCoins(100, "ETH")))
	require.NoError(t, bank.Send(store, "alice", "bob", common.NewCoins(40, "ETH")))
	alice, err := bank.Balances(store, "alice", []string{"ETH", "BTC"})
	require.NoError(t, err)
	assert.Equal(t, common.NewCoins(60, "ETH"), alice)
	bob, err := bank.Balance(store, "bob", "ETH")
	require.NoError(t, err)
	assert.Equal(t, uint64(40), bob.Uint64())
	unknown, err := bank.Balance(store, "carol", "ETH")
	require.NoError(t, err)
	assert.True(t, unknown.IsZero())
}

func TestBankSendInsufficientFunds(t *testing.T) {
	store := state.NewMemoryStore()
	bank := runtime.NewBank()
	require.NoError(t, bank.Mint(store, "alice", common.NewCoins(10, "ETH")))
	err := bank.Send(store, "alice", "bob", common.NewCoins(11, "ETH"))
	require.Error(t, err)
	assert.ErrorIs(t, err, runtime.ErrInsufficientFunds)
	var fundsErr runtime.InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))
	assert.Equal(t, common.Address("alice"), fundsErr.Address)
	assert.Equal(t, "10ETH", fundsErr.Available.String())
	assert.Equal(t, "11ETH", fundsErr.Required.String())
	assert.Equal(
		t,
		"insufficient funds: alice has 10ETH, needs 11ETH",
		err.Error(),
	)
}

func TestBankEmptyBalanceIsRemoved(t *testing.T) {
	store := state.NewMemoryStore()
	bank := runtime.NewBank()
	require.NoError(t, bank.Mint(store, "alice", common.NewCoins(5, "ETH")))
	assert.Equal(t, 1, store.Len())
	require.NoError(t, bank.Send(store, "alice", "bob", common.NewCoins(5, "ETH")))
	// only bob's balance remains
	assert.Equal(t, 1, store.Len())
	balances, err := bank.Balances(store, "alice", []string{"ETH"})
	require.NoError(t, err)
	assert.Empty(t, balances)
}

func TestBankOverflow(t *testing.T) {
	store := state.NewMemoryStore()
	bank := runtime.NewBank()
	maxCoin := common.Coin{
		Denom:  "ETH",
		Amount: *new(uint256.Int).Not(uint256.NewInt(0)),
	}
	require.NoError(t, bank.Mint(store, "alice", common.Coins{maxCoin}))
	err := bank.Mint(store, "alice", common.NewCoins(1, "ETH"))
	assert.ErrorIs(t, err, runtime.ErrBalanceOverflow)
	balance, err := bank.Balance(store, "alice", "ETH")
	require.NoError(t, err)
	assert.Equal(t, maxCoin.Amount, balance)
}

func TestBankCorruptBalance(t *testing.T) {
	store := state.NewMemoryStore()
	bank := runtime.NewBank()
	require.NoError(t, bank.Mint(store, "alice", common.NewCoins(5, "ETH")))
	require.NoError(t, store.Set([]byte("bank\x00alice\x00ETH"), []byte{0xff}))
	_, err := bank.Balance(store, "alice", "ETH")
	assert.ErrorIs(t, err, state.ErrStorage)
}
