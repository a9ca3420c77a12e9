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
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Address is an opaque account identity. Two addresses refer to the same party
// exactly when their string forms are equal.
type Address string

func (a Address) String() string {
	return string(a)
}

// Validate performs the minimal check every address must pass
func (a Address) Validate() error {
	if a == "" {
		return errors.New("empty address")
	}
	return nil
}

// ValidateBech32 checks that the address is a well-formed bech32 string with the given
// human-readable prefix
func (a Address) ValidateBech32(prefix string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	hrp, _, err := bech32.Decode(string(a))
	if err != nil {
		return fmt.Errorf("invalid bech32 address %q: %w", string(a), err)
	}
	if hrp != prefix {
		return fmt.Errorf(
			"invalid address prefix: got %q, expected %q",
			hrp,
			prefix,
		)
	}
	return nil
}

// NewAddressFromBytes encodes raw address bytes as bech32 with the given prefix
func NewAddressFromBytes(prefix string, data []byte) (Address, error) {
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert address bytes: %w", err)
	}
	encoded, err := bech32.Encode(prefix, convData)
	if err != nil {
		return "", fmt.Errorf("failed to encode address as bech32: %w", err)
	}
	return Address(encoded), nil
}
