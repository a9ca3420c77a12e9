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
	"encoding/json"
	"log/slog"

	"github.com/blinklabs-io/gooption/contract/version"
	"github.com/blinklabs-io/gooption/ledger/common"
	"github.com/blinklabs-io/gooption/ledger/state"
)

const (
	ContractName    = "gooption:simple-option"
	ContractVersion = "1.0.0"
)

// Method names reported in the "method" response attribute
const (
	MethodCreate   = "create"
	MethodTransfer = "transfer"
	MethodExercise = "exercise"
	MethodBurn     = "burn"

	AttributeMethod   = "method"
	AttributeNewOwner = "new_owner"
)

// Contract is the covered option state machine. It holds no state of its own; every
// operation reads and writes the store it is given
type Contract struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Contract {
	if logger == nil {
		logger = slog.Default()
	}
	return &Contract{
		logger: logger.With("contract", ContractName),
	}
}

// Instantiate creates the option from an InstantiateMsg and records the contract version
func (c *Contract) Instantiate(
	store state.KVStore,
	env common.Env,
	info common.MessageInfo,
	msg InstantiateMsg,
) (*common.Response, error) {
	if _, err := c.Create(store, env, info, msg.CounterOffer, msg.Expires); err != nil {
		return nil, err
	}
	if err := version.Set(store, ContractName, ContractVersion); err != nil {
		return nil, err
	}
	return common.NewResponse().AddAttribute(AttributeMethod, MethodCreate), nil
}

// Execute dispatches an ExecuteMsg to the selected command
func (c *Contract) Execute(
	store state.KVStore,
	env common.Env,
	info common.MessageInfo,
	msg ExecuteMsg,
) (*common.Response, error) {
	switch msg.Name() {
	case MethodTransfer:
		_, resp, err := c.Transfer(store, info, msg.Transfer.Recipient)
		return resp, err
	case MethodExercise:
		return c.Exercise(store, env, info)
	case MethodBurn:
		return c.Burn(store, env, info)
	default:
		return nil, InvalidMessageError{
			Reason: "exactly one of transfer, exercise or burn must be set",
		}
	}
}

// Query dispatches a QueryMsg and returns the JSON encoded result
func (c *Contract) Query(
	store state.KVStore,
	_ common.Env,
	msg QueryMsg,
) ([]byte, error) {
	if msg.Config == nil {
		return nil, InvalidMessageError{Reason: "config must be set"}
	}
	config, err := c.QueryConfig(store)
	if err != nil {
		return nil, err
	}
	return json.Marshal(config)
}

// Create locks the attached funds as collateral and stores a new option owned by the
// sender. No funds move and no settlement instructions are produced
func (c *Contract) Create(
	store state.KVStore,
	env common.Env,
	info common.MessageInfo,
	counterOffer common.Coins,
	expires uint64,
) (*OptionRecord, error) {
	if expires <= env.Block.Height {
		return nil, ExpiredError{Expires: expires, Height: env.Block.Height}
	}
	// A counter offer that can never be paid would lock the collateral until expiry
	if err := counterOffer.Validate(); err != nil {
		return nil, InvalidMessageError{Reason: "invalid counter offer: " + err.Error()}
	}
	exists, err := optionState.Exists(store)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, AlreadyExistsError{}
	}
	record, err := (&OptionRecord{
		Creator:      info.Sender,
		Owner:        info.Sender,
		Collateral:   info.Funds,
		CounterOffer: counterOffer,
		Expires:      expires,
	}).Clone()
	if err != nil {
		return nil, err
	}
	if err := optionState.Save(store, record); err != nil {
		return nil, err
	}
	c.logger.Debug(
		"option created",
		"creator", record.Creator,
		"collateral", record.Collateral.String(),
		"counter_offer", record.CounterOffer.String(),
		"expires", record.Expires,
	)
	return record, nil
}

// Transfer hands the option to a new owner. Only the current owner may do this
func (c *Contract) Transfer(
	store state.KVStore,
	info common.MessageInfo,
	recipient common.Address,
) (*OptionRecord, *common.Response, error) {
	record, err := optionState.Update(
		store,
		func(record OptionRecord) (OptionRecord, error) {
			if err := CheckGuards(&record, common.Env{}, info, TransferGuards); err != nil {
				return record, err
			}
			record.Owner = recipient
			return record, nil
		},
	)
	if err != nil {
		return nil, nil, err
	}
	c.logger.Debug(
		"option transferred",
		"from", info.Sender,
		"to", recipient,
	)
	resp := common.NewResponse().
		AddAttribute(AttributeMethod, MethodTransfer).
		AddAttribute(AttributeNewOwner, recipient.String())
	return &record, resp, nil
}

// Exercise pays the counter offer to the creator and releases the collateral to the
// owner, destroying the option
func (c *Contract) Exercise(
	store state.KVStore,
	env common.Env,
	info common.MessageInfo,
) (*common.Response, error) {
	record, err := optionState.Load(store)
	if err != nil {
		return nil, err
	}
	if err := CheckGuards(&record, env, info, ExerciseGuards); err != nil {
		return nil, err
	}
	if err := optionState.Remove(store); err != nil {
		return nil, err
	}
	c.logger.Debug(
		"option exercised",
		"owner", record.Owner,
		"height", env.Block.Height,
	)
	// Counter offer first, then collateral
	return common.NewResponse().
		AddMessage(common.NewBankSend(record.Creator, record.CounterOffer)).
		AddMessage(common.NewBankSend(record.Owner, record.Collateral)).
		AddAttribute(AttributeMethod, MethodExercise), nil
}

// Burn returns the collateral of an expired option to its creator, destroying the
// option. Any sender may burn
func (c *Contract) Burn(
	store state.KVStore,
	env common.Env,
	info common.MessageInfo,
) (*common.Response, error) {
	record, err := optionState.Load(store)
	if err != nil {
		return nil, err
	}
	if err := CheckGuards(&record, env, info, BurnGuards); err != nil {
		return nil, err
	}
	if err := optionState.Remove(store); err != nil {
		return nil, err
	}
	c.logger.Debug(
		"option burned",
		"sender", info.Sender,
		"height", env.Block.Height,
	)
	return common.NewResponse().
		AddMessage(common.NewBankSend(record.Creator, record.Collateral)).
		AddAttribute(AttributeMethod, MethodBurn), nil
}

// QueryConfig returns the active option record
func (c *Contract) QueryConfig(store state.KVStore) (*ConfigResponse, error) {
	record, err := optionState.Load(store)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
