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

package test

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/blinklabs-io/gooption/ledger/common"
)

const (
	// MockHeight is the block height used by MockEnv
	MockHeight uint64 = 12_345
	// MockChainId is the chain ID used by MockEnv
	MockChainId = "gooption-testnet"
	// MockContractAddress is the contract address used by MockEnv
	MockContractAddress common.Address = "contract"
)

// MockEnv returns an execution environment at MockHeight
func MockEnv() common.Env {
	return MockEnvAtHeight(MockHeight)
}

// MockEnvAtHeight returns an execution environment at the given height
func MockEnvAtHeight(height uint64) common.Env {
	return common.Env{
		Block: common.BlockInfo{
			Height: height,
			// 5 second blocks from the Unix epoch keep the time deterministic
			Time:    time.Unix(int64(height)*5, 0).UTC(), //nolint:gosec
			ChainId: MockChainId,
		},
		Contract: common.ContractInfo{
			Address: MockContractAddress,
		},
	}
}

// MockInfo returns message info for sender with the given funds attached
func MockInfo(sender string, funds common.Coins) common.MessageInfo {
	return common.MessageInfo{
		Sender: common.Address(sender),
		Funds:  funds,
	}
}

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}
