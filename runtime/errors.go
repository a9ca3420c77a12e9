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

	"github.com/blinklabs-io/gooption/ledger/common"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBalanceOverflow   = errors.New("balance overflow")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidFunds      = errors.New("invalid funds")
	ErrSettlement        = errors.New("settlement failed")
)

// InsufficientFundsError indicates an account that cannot cover a debit
type InsufficientFundsError struct {
	Address   common.Address
	Required  common.Coin
	Available common.Coin
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"insufficient funds: %s has %s, needs %s",
		e.Address,
		e.Available.String(),
		e.Required.String(),
	)
}

func (InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// BalanceOverflowError indicates a credit that would overflow 256 bits
type BalanceOverflowError struct {
	Address common.Address
	Denom   string
}

func (e BalanceOverflowError) Error() string {
	return fmt.Sprintf("balance overflow for %s in %s", e.Address, e.Denom)
}

func (BalanceOverflowError) Is(target error) bool {
	return target == ErrBalanceOverflow
}

// InvalidAddressError indicates an address rejected by the address validator
type InvalidAddressError struct {
	Address common.Address
	Err     error
}

func (e InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address %q: %v", e.Address, e.Err)
}

func (e InvalidAddressError) Unwrap() error { return e.Err }

func (InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

// InvalidFundsError indicates malformed funds attached to a call
type InvalidFundsError struct {
	Err error
}

func (e InvalidFundsError) Error() string {
	return fmt.Sprintf("invalid funds: %v", e.Err)
}

func (e InvalidFundsError) Unwrap() error { return e.Err }

func (InvalidFundsError) Is(target error) bool {
	return target == ErrInvalidFunds
}

// SettlementError indicates a BankMsg returned by the contract that could not be
// executed
type SettlementError struct {
	Index int
	Msg   common.BankMsg
	Err   error
}

func (e SettlementError) Error() string {
	return fmt.Sprintf("settlement message %d (%s) failed: %v", e.Index, e.Msg.String(), e.Err)
}

func (e SettlementError) Unwrap() error { return e.Err }

func (SettlementError) Is(target error) bool {
	return target == ErrSettlement
}
