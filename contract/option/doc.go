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

// Package option implements a covered option as a deterministic state machine.
//
// A creator locks collateral and names a counter offer and an expiration height. The
// owner (initially the creator) may transfer the option or exercise it by paying the
// counter offer before it expires. Once expired, anyone may burn it, returning the
// collateral to the creator.
//
// States are Absent and Active:
//
//	Absent --create--> Active
//	Active --transfer--> Active   (owner changes)
//	Active --exercise--> Absent   (counter offer to creator, collateral to owner)
//	Active --burn--> Absent       (collateral to creator)
//
// Operations never move funds themselves. They return common.BankMsg instructions that
// the host executes together with the state change, and every failure leaves the store
// untouched as far as the operation is concerned.
package option
