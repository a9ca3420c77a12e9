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
	"errors"
	"fmt"

	"github.com/blinklabs-io/gooption/ledger/common"
	"github.com/blinklabs-io/gooption/ledger/state"
)

// Sentinel errors so callers can use errors.Is against the typed errors below
var (
	ErrExpired          = errors.New("option expired")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrDiffCounterOffer = errors.New("funds do not match counter offer")
	ErrNotYetExpired    = errors.New("option not yet expired")
	ErrFundsNotAllowed  = errors.New("funds not allowed")
	ErrAlreadyExists    = errors.New("option already exists")
	ErrInvalidMessage   = errors.New("invalid message")
	// ErrNotFound matches a missing option record
	ErrNotFound = state.ErrNotFound
)

// ExpiredError indicates an expiration height that is not in the future
type ExpiredError struct {
	Expires uint64
	Height  uint64
}

func (e ExpiredError) Error() string {
	return fmt.Sprintf(
		"option expired (expires at %d, current height %d)",
		e.Expires,
		e.Height,
	)
}

func (ExpiredError) Is(target error) bool {
	return target == ErrExpired
}

// UnauthorizedError indicates that the sender is not the option owner
type UnauthorizedError struct {
	Sender common.Address
}

func (e UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s is not the option owner", e.Sender)
}

func (UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}

// DiffCounterOfferError indicates that the funds sent to exercise do not exactly match
// the counter offer
type DiffCounterOfferError struct {
	Required common.Coins
	Sent     common.Coins
}

func (e DiffCounterOfferError) Error() string {
	return "must send exact counter offer: " + e.Required.String()
}

func (DiffCounterOfferError) Is(target error) bool {
	return target == ErrDiffCounterOffer
}

// NotYetExpiredError indicates a burn before the expiration height
type NotYetExpiredError struct {
	Expires uint64
	Height  uint64
}

func (NotYetExpiredError) Error() string {
	return "Option not yet expired"
}

func (NotYetExpiredError) Is(target error) bool {
	return target == ErrNotYetExpired
}

// FundsNotAllowedError indicates funds attached to a burn
type FundsNotAllowedError struct {
	Sent common.Coins
}

func (FundsNotAllowedError) Error() string {
	return "dont send funds with burn"
}

func (FundsNotAllowedError) Is(target error) bool {
	return target == ErrFundsNotAllowed
}

// AlreadyExistsError indicates a create while an option is still active
type AlreadyExistsError struct{}

func (AlreadyExistsError) Error() string {
	return "option already exists"
}

func (AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// InvalidMessageError indicates a message that does not select exactly one operation
type InvalidMessageError struct {
	Reason string
}

func (e InvalidMessageError) Error() string {
	return "invalid message: " + e.Reason
}

func (InvalidMessageError) Is(target error) bool {
	return target == ErrInvalidMessage
}
