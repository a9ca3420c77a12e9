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

package option

import (
	"github.com/blinklabs-io/gooption/ledger/common"
)

// GuardFunc checks one precondition of an operation against the active record
type GuardFunc func(
	record *OptionRecord,
	env common.Env,
	info common.MessageInfo,
) error

// Guards run in order and the first failure wins
var (
	TransferGuards = []GuardFunc{
		GuardSenderIsOwner,
	}
	ExerciseGuards = []GuardFunc{
		GuardSenderIsOwner,
		GuardNotExpired,
		GuardFundsMatchCounterOffer,
	}
	// Burn is a cleanup anyone may trigger, so there is no ownership guard
	BurnGuards = []GuardFunc{
		GuardExpired,
		GuardNoFunds,
	}
)

// CheckGuards runs the provided guards in order and returns the first error
func CheckGuards(
	record *OptionRecord,
	env common.Env,
	info common.MessageInfo,
	guards []GuardFunc,
) error {
	for _, guard := range guards {
		if err := guard(record, env, info); err != nil {
			return err
		}
	}
	return nil
}

func GuardSenderIsOwner(
	record *OptionRecord,
	_ common.Env,
	info common.MessageInfo,
) error {
	if info.Sender != record.Owner {
		return UnauthorizedError{Sender: info.Sender}
	}
	return nil
}

func GuardNotExpired(
	record *OptionRecord,
	env common.Env,
	_ common.MessageInfo,
) error {
	if record.IsExpired(env.Block.Height) {
		return ExpiredError{Expires: record.Expires, Height: env.Block.Height}
	}
	return nil
}

func GuardFundsMatchCounterOffer(
	record *OptionRecord,
	_ common.Env,
	info common.MessageInfo,
) error {
	if !info.Funds.Equal(record.CounterOffer) {
		return DiffCounterOfferError{
			Required: record.CounterOffer,
			Sent:     info.Funds,
		}
	}
	return nil
}

func GuardExpired(
	record *OptionRecord,
	env common.Env,
	_ common.MessageInfo,
) error {
	if !record.IsExpired(env.Block.Height) {
		return NotYetExpiredError{Expires: record.Expires, Height: env.Block.Height}
	}
	return nil
}

func GuardNoFunds(
	_ *OptionRecord,
	_ common.Env,
	info common.MessageInfo,
) error {
	if !info.Funds.IsEmpty() {
		return FundsNotAllowedError{Sent: info.Funds}
	}
	return nil
}
