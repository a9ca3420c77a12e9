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

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gooption/contract/option"
	"github.com/blinklabs-io/gooption/ledger/common"
)

type cliHarness struct {
	t        *testing.T
	storeDir string
}

func (h *cliHarness) run(args ...string) (int, string, string) {
	h.t.Helper()
	var stdout, stderr bytes.Buffer
	fullArgs := append([]string{"--store.dir", h.storeDir, "--log.level", "error"}, args...)
	ret := run(fullArgs, &stdout, &stderr)
	return ret, stdout.String(), stderr.String()
}

func (h *cliHarness) mustRun(args ...string) string {
	h.t.Helper()
	ret, stdout, stderr := h.run(args...)
	require.Equal(h.t, 0, ret, "command %v failed: %s", args, stderr)
	return stdout
}

func (h *cliHarness) balance(address string) common.Coins {
	h.t.Helper()
	stdout := h.mustRun("balance", "--address", address, "--denoms", "BTC,ETH")
	var coins common.Coins
	require.NoError(h.t, json.Unmarshal([]byte(stdout), &coins))
	return coins
}

func TestCliOptionLifecycle(t *testing.T) {
	h := &cliHarness{t: t, storeDir: t.TempDir()}
	h.mustRun("mint", "--address", "creator", "--amount", "1BTC")
	h.mustRun("mint", "--address", "owner", "--amount", "40ETH")
	stdout := h.mustRun(
		"instantiate",
		"--sender", "creator",
		"--funds", "1BTC",
		"--counter-offer", "40ETH",
		"--expires", "100",
		"--height", "10",
	)
	var result struct {
		TxHash   string          `json:"tx_hash"`
		Response common.Response `json:"response"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Len(t, result.TxHash, 64)
	assert.Equal(t, option.ContractName+"@"+option.ContractVersion, strings.TrimSpace(h.mustRun("version")))
	h.mustRun("transfer", "--sender", "creator", "--recipient", "owner", "--height", "20")
	dump := h.mustRun("inspect")
	assert.Contains(t, dump, `"owner"`)
	assert.Contains(t, dump, `"ETH"`)
	stdout = h.mustRun("query")
	var config option.ConfigResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &config))
	assert.Equal(t, common.Address("owner"), config.Owner)
	assert.Equal(t, uint64(100), config.Expires)
	// Wrong counter offer fails and changes nothing
	ret, _, stderr := h.run("exercise", "--sender", "owner", "--funds", "39ETH", "--height", "50")
	assert.Equal(t, 1, ret)
	assert.Contains(t, stderr, "must send exact counter offer: 40ETH")
	assert.True(t, common.NewCoins(40, "ETH").Equal(h.balance("owner")))
	h.mustRun("exercise", "--sender", "owner", "--funds", "40ETH", "--height", "50")
	assert.True(t, common.NewCoins(40, "ETH").Equal(h.balance("creator")))
	assert.True(t, common.NewCoins(1, "BTC").Equal(h.balance("owner")))
	assert.True(t, common.Coins{}.Equal(h.balance("contract")))
	ret, _, stderr = h.run("query")
	assert.Equal(t, 1, ret)
	assert.Contains(t, stderr, "not found")
}

func TestCliBurn(t *testing.T) {
	h := &cliHarness{t: t, storeDir: t.TempDir()}
	h.mustRun("mint", "--address", "creator", "--amount", "1BTC")
	h.mustRun(
		"instantiate",
		"--sender", "creator",
		"--funds", "1BTC",
		"--counter-offer", "40ETH",
		"--expires", "100",
	)
	ret, _, stderr := h.run("burn", "--sender", "anyone", "--height", "99")
	assert.Equal(t, 1, ret)
	assert.Contains(t, stderr, "Option not yet expired")
	h.mustRun("burn", "--sender", "anyone", "--height", "100")
	assert.True(t, common.NewCoins(1, "BTC").Equal(h.balance("creator")))
}

func TestCliErrors(t *testing.T) {
	h := &cliHarness{t: t, storeDir: t.TempDir()}
	testDefs := []struct {
		name string
		args []string
	}{
		{name: "no subcommand", args: nil},
		{name: "unknown subcommand", args: []string{"frobnicate"}},
		{name: "bad funds", args: []string{"exercise", "--sender", "owner", "--funds", "lots"}},
		{name: "missing amount", args: []string{"mint", "--address", "owner"}},
		{name: "missing balance address", args: []string{"balance"}},
		{name: "unfunded instantiate", args: []string{"instantiate", "--sender", "creator", "--funds", "1BTC", "--counter-offer", "40ETH", "--expires", "100"}},
		{name: "zero counter offer", args: []string{"instantiate", "--sender", "creator", "--counter-offer", "0ETH", "--expires", "100"}},
		{name: "no version", args: []string{"version"}},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			ret, _, stderr := h.run(testDef.args...)
			assert.Equal(t, 1, ret)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestCliMemoryBackendAndDump(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ret := run(
		[]string{"--store.backend", "memory", "mint", "--address", "alice", "--amount", "5ETH"},
		&stdout,
		&stderr,
	)
	require.Equal(t, 0, ret, stderr.String())
	stdout.Reset()
	ret = run([]string{"--store.backend", "memory", "--conf.dump"}, &stdout, &stderr)
	require.Equal(t, 0, ret)
	assert.Contains(t, stdout.String(), `"backend":"memory"`)
}
