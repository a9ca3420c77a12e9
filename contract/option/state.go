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
	"github.com/jinzhu/copier"

	"github.com/blinklabs-io/gooption/cbor"
	"github.com/blinklabs-io/gooption/ledger/common"
	"github.com/blinklabs-io/gooption/ledger/state"
)

const StateKey = "state"

// OptionRecord is the single persisted record of an active option
type OptionRecord struct {
	cbor.StructAsArray
	Creator      common.Address `json:"creator"`
	Owner        common.Address `json:"owner"`
	Collateral   common.Coins   `json:"collateral"`
	CounterOffer common.Coins   `json:"counter_offer"`
	Expires      uint64         `json:"expires"`
}

// ConfigResponse is the read model returned by the config query
type ConfigResponse = OptionRecord

// Clone returns a deep copy of the record that shares no slices with the original
func (r *OptionRecord) Clone() (*OptionRecord, error) {
	ret := &OptionRecord{}
	if err := copier.CopyWithOption(ret, r, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return ret, nil
}

// IsExpired reports whether the option can no longer be exercised at height
func (r *OptionRecord) IsExpired(height uint64) bool {
	return height >= r.Expires
}

var optionState = state.NewItem[OptionRecord](StateKey)
