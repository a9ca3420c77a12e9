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
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"slices"
	"strings"

	"github.com/blinklabs-io/gooption/cbor"
	"github.com/holiman/uint256"
)

const denomPattern = `[a-zA-Z][a-zA-Z0-9/:._-]{2,127}`

var (
	denomRegex = regexp.MustCompile(`^` + denomPattern + `$`)
	coinRegex  = regexp.MustCompile(`^([0-9]+)\s*(` + denomPattern + `)$`)
)

// Coin is an amount of a single denomination
type Coin struct {
	Denom  string
	Amount uint256.Int
}

// NewCoin creates a Coin from a uint64 amount
func NewCoin(amount uint64, denom string) Coin {
	return Coin{
		Denom:  denom,
		Amount: *uint256.NewInt(amount),
	}
}

// ParseCoin parses a coin in the "<amount><denom>" form, e.g. "40ETH"
func ParseCoin(coinStr string) (Coin, error) {
	matches := coinRegex.FindStringSubmatch(strings.TrimSpace(coinStr))
	if matches == nil {
		return Coin{}, fmt.Errorf("invalid coin expression: %q", coinStr)
	}
	amount, err := parseAmount(matches[1])
	if err != nil {
		return Coin{}, err
	}
	return Coin{Denom: matches[2], Amount: *amount}, nil
}

func (c Coin) String() string {
	return c.Amount.ToBig().String() + c.Denom
}

// Validate checks the denomination syntax and rejects zero amounts
func (c Coin) Validate() error {
	if !denomRegex.MatchString(c.Denom) {
		return fmt.Errorf("invalid denom: %q", c.Denom)
	}
	if c.Amount.IsZero() {
		return fmt.Errorf("zero amount for denom %s", c.Denom)
	}
	return nil
}

func (c Coin) compare(other Coin) int {
	if ret := cmp.Compare(c.Denom, other.Denom); ret != 0 {
		return ret
	}
	return c.Amount.Cmp(&other.Amount)
}

// coinCbor is the wire form of a Coin: [denom, amount]
type coinCbor struct {
	cbor.StructAsArray
	Denom  string
	Amount *big.Int
}

func (c Coin) MarshalCBOR() ([]byte, error) {
	tmp := coinCbor{
		Denom:  c.Denom,
		Amount: c.Amount.ToBig(),
	}
	return cbor.Encode(&tmp)
}

func (c *Coin) UnmarshalCBOR(data []byte) error {
	var tmp coinCbor
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	if tmp.Amount == nil || tmp.Amount.Sign() < 0 {
		return fmt.Errorf("invalid amount for denom %s", tmp.Denom)
	}
	amount, overflow := uint256.FromBig(tmp.Amount)
	if overflow {
		return fmt.Errorf("amount for denom %s exceeds 256 bits", tmp.Denom)
	}
	c.Denom = tmp.Denom
	c.Amount = *amount
	return nil
}

// coinJson is the JSON form of a Coin. Amounts are decimal strings so that values
// above 2^53 survive JSON tooling
type coinJson struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func (c Coin) MarshalJSON() ([]byte, error) {
	return json.Marshal(
		coinJson{
			Denom:  c.Denom,
			Amount: c.Amount.ToBig().String(),
		},
	)
}

func (c *Coin) UnmarshalJSON(data []byte) error {
	var tmp coinJson
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	amount, err := parseAmount(tmp.Amount)
	if err != nil {
		return err
	}
	c.Denom = tmp.Denom
	c.Amount = *amount
	return nil
}

func parseAmount(amountStr string) (*uint256.Int, error) {
	tmpAmount, ok := new(big.Int).SetString(amountStr, 10)
	if !ok || tmpAmount.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount: %q", amountStr)
	}
	amount, overflow := uint256.FromBig(tmpAmount)
	if overflow {
		return nil, fmt.Errorf("amount exceeds 256 bits: %s", amountStr)
	}
	return amount, nil
}

// Coins is an ordered list of coins. Equality between two lists ignores order
type Coins []Coin

// NewCoins returns a list containing a single coin, mirroring the common
// "coins(amount, denom)" shorthand
func NewCoins(amount uint64, denom string) Coins {
	return Coins{NewCoin(amount, denom)}
}

// ParseCoins parses a comma separated list of coins, e.g. "40ETH,1BTC". An empty string
// yields an empty list
func ParseCoins(coinsStr string) (Coins, error) {
	coinsStr = strings.TrimSpace(coinsStr)
	if coinsStr == "" {
		return Coins{}, nil
	}
	parts := strings.Split(coinsStr, ",")
	ret := make(Coins, 0, len(parts))
	for _, part := range parts {
		coin, err := ParseCoin(part)
		if err != nil {
			return nil, err
		}
		ret = append(ret, coin)
	}
	return ret, nil
}

func (c Coins) IsEmpty() bool {
	return len(c) == 0
}

// String returns the coins joined by commas in their original order
func (c Coins) String() string {
	if len(c) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(c))
	for _, coin := range c {
		parts = append(parts, coin.String())
	}
	return strings.Join(parts, ",")
}

// Validate checks every coin in the list
func (c Coins) Validate() error {
	var errs []error
	for _, coin := range c {
		if err := coin.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Sorted returns a copy of the list ordered by denom, then amount
func (c Coins) Sorted() Coins {
	ret := slices.Clone(c)
	slices.SortFunc(ret, Coin.compare)
	return ret
}

// Equal reports whether both lists hold exactly the same (denom, amount) pairs with
// the same multiplicity, in any order. Nothing is merged or netted
func (c Coins) Equal(other Coins) bool {
	if len(c) != len(other) {
		return false
	}
	return slices.EqualFunc(
		c.Sorted(),
		other.Sorted(),
		func(a, b Coin) bool { return a.compare(b) == 0 },
	)
}
