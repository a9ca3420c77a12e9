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

// InstantiateMsg creates the option. The collateral is whatever funds are attached to
// the call
type InstantiateMsg struct {
	CounterOffer common.Coins `json:"counter_offer"`
	Expires      uint64       `json:"expires"`
}

// ExecuteMsg selects exactly one command
type ExecuteMsg struct {
	Transfer *TransferMsg `json:"transfer,omitempty"`
	Exercise *ExerciseMsg `json:"exercise,omitempty"`
	Burn     *BurnMsg     `json:"burn,omitempty"`
}

type TransferMsg struct {
	Recipient common.Address `json:"recipient"`
}

type ExerciseMsg struct{}

type BurnMsg struct{}

// Name returns the name of the selected command, or an empty string unless exactly
// one command is set
func (m ExecuteMsg) Name() string {
	var names []string
	if m.Transfer != nil {
		names = append(names, MethodTransfer)
	}
	if m.Exercise != nil {
		names = append(names, MethodExercise)
	}
	if m.Burn != nil {
		names = append(names, MethodBurn)
	}
	if len(names) != 1 {
		return ""
	}
	return names[0]
}

// QueryMsg selects exactly one query
type QueryMsg struct {
	Config *ConfigQuery `json:"config,omitempty"`
}

type ConfigQuery struct{}
