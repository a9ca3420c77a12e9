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

// Package version records which contract, and which version of it, owns a store.
package version

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gooption/cbor"
	"github.com/blinklabs-io/gooption/ledger/state"
)

const StorageKey = "contract_info"

var ErrContractMismatch = errors.New("contract mismatch")

// ContractVersion identifies the contract code that last wrote to a store
type ContractVersion struct {
	cbor.StructAsArray
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

func (v ContractVersion) String() string {
	return v.Contract + "@" + v.Version
}

// ContractMismatchError indicates that a store belongs to another contract
type ContractMismatchError struct {
	Expected string
	Found    string
}

func (e ContractMismatchError) Error() string {
	return fmt.Sprintf(
		"store belongs to contract %q, expected %q",
		e.Found,
		e.Expected,
	)
}

func (ContractMismatchError) Is(target error) bool {
	return target == ErrContractMismatch
}

var contractInfo = state.NewItem[ContractVersion](StorageKey)

// Set records the contract name and version
func Set(store state.KVStore, contract string, version string) error {
	return contractInfo.Save(
		store,
		&ContractVersion{
			Contract: contract,
			Version:  version,
		},
	)
}

// Get returns the recorded contract version
func Get(store state.KVStore) (ContractVersion, error) {
	return contractInfo.Load(store)
}

// Assert fails with a ContractMismatchError when the store was written by another
// contract. A store without version info passes
func Assert(store state.KVStore, expected string) error {
	info, err := contractInfo.MayLoad(store)
	if err != nil {
		return err
	}
	if info != nil && info.Contract != expected {
		return ContractMismatchError{Expected: expected, Found: info.Contract}
	}
	return nil
}
