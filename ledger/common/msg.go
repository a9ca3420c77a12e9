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
	"fmt"

	"github.com/blinklabs-io/gooption/cbor"
)

// BankMsg is a settlement instruction: pay Amount to ToAddress. Contracts only declare
// these; the host moves the funds
type BankMsg struct {
	cbor.StructAsArray
	ToAddress Address `json:"to_address"`
	Amount    Coins   `json:"amount"`
}

// NewBankSend creates a BankMsg paying amount to the given address
func NewBankSend(toAddress Address, amount Coins) BankMsg {
	return BankMsg{
		ToAddress: toAddress,
		Amount:    amount,
	}
}

func (m BankMsg) String() string {
	return fmt.Sprintf("send %s to %s", m.Amount.String(), m.ToAddress)
}

// Attribute is a string-keyed log entry attached to a Response
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func NewAttribute(key string, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Response is the successful result of a contract operation
type Response struct {
	Messages   []BankMsg   `json:"messages"`
	Attributes []Attribute `json:"attributes"`
}

func NewResponse() *Response {
	return &Response{}
}

// AddMessage appends a settlement instruction. Messages are executed in the order
// they were added
func (r *Response) AddMessage(msg BankMsg) *Response {
	r.Messages = append(r.Messages, msg)
	return r
}

func (r *Response) AddAttribute(key string, value string) *Response {
	r.Attributes = append(r.Attributes, NewAttribute(key, value))
	return r
}

// Attribute returns the value of the first attribute with the given key
func (r *Response) Attribute(key string) (string, bool) {
	for _, attr := range r.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}
