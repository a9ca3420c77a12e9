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
	"log/slog"

	"github.com/blinklabs-io/gooption/ledger/common"
)

// RuntimeOptionFunc is a type that represents functions that modify the Runtime config
type RuntimeOptionFunc func(*Runtime)

// WithLogger specifies the logger to use. Defaults to slog.Default()
func WithLogger(logger *slog.Logger) RuntimeOptionFunc {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithContractAddress specifies the address holding escrowed funds
func WithContractAddress(address common.Address) RuntimeOptionFunc {
	return func(r *Runtime) {
		r.contractAddress = address
	}
}

// WithAddressValidator specifies a function used to check sender and recipient addresses
func WithAddressValidator(validator func(common.Address) error) RuntimeOptionFunc {
	return func(r *Runtime) {
		r.addressValidator = validator
	}
}

// WithBech32Prefix requires all addresses to be bech32 with the given human readable
// prefix. Unless an explicit contract address is given, one is derived from the
// contract name
func WithBech32Prefix(prefix string) RuntimeOptionFunc {
	return func(r *Runtime) {
		r.bech32Prefix = prefix
		r.addressValidator = func(address common.Address) error {
			return address.ValidateBech32(prefix)
		}
	}
}

// WithBank specifies the bank used for escrow and settlement
func WithBank(bank *Bank) RuntimeOptionFunc {
	return func(r *Runtime) {
		r.bank = bank
	}
}
