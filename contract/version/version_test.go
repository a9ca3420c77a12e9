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

package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gooption/contract/version"
	"github.com/blinklabs-io/gooption/ledger/state"
)

func TestVersion(t *testing.T) {
	store := state.NewMemoryStore()

	_, err := version.Get(store)
	assert.ErrorIs(t, err, state.ErrNotFound)
	// No version info yet
	require.NoError(t, version.Assert(store, "gooption:simple-option"))

	require.NoError(t, version.Set(store, "gooption:simple-option", "1.0.0"))
	info, err := version.Get(store)
	require.NoError(t, err)
	assert.Equal(t, "gooption:simple-option", info.Contract)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "gooption:simple-option@1.0.0", info.String())

	require.NoError(t, version.Assert(store, "gooption:simple-option"))
	err = version.Assert(store, "gooption:other")
	assert.ErrorIs(t, err, version.ErrContractMismatch)
	var mismatch version.ContractMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "gooption:simple-option", mismatch.Found)
}
