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

package common

import (
	"time"
)

// BlockInfo describes the block the current transaction is executed in
type BlockInfo struct {
	Height  uint64    `json:"height"`
	Time    time.Time `json:"time"`
	ChainId string    `json:"chain_id"`
}

// ContractInfo identifies the contract instance being executed
type ContractInfo struct {
	Address Address `json:"address"`
}

// Env is the execution environment supplied by the host for every call
type Env struct {
	Block    BlockInfo    `json:"block"`
	Contract ContractInfo `json:"contract"`
}

// MessageInfo carries the caller identity and the funds attached to the call. The
// funds are already escrowed to the contract by the time the contract sees them
type MessageInfo struct {
	Sender Address `json:"sender"`
	Funds  Coins   `json:"funds"`
}
