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

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gooption/cbor"
)

func TestDumpStructure(t *testing.T) {
	testDefs := []struct {
		cborHex  string
		expected string
	}{
		{
			cborHex:  "83010203",
			expected: "[\n  1\n  2\n  3\n]\n",
		},
		{
			cborHex:  "a2616101616202",
			expected: "{\n  \"a\" =>\n    1\n  \"b\" =>\n    2\n}\n",
		},
		{
			cborHex:  "4401020304",
			expected: "h'01020304'\n",
		},
		{
			cborHex:  "c249010000000000000000",
			expected: "18446744073709551616\n",
		},
		{
			// Stored option record
			cborHex:  "856763726561746f726763726561746f728182634254430181826345544818281a000186a0",
			expected: "[\n  \"creator\"\n  \"creator\"\n  [\n    [\n      \"BTC\"\n      1\n    ]\n  ]\n  [\n    [\n      \"ETH\"\n      40\n    ]\n  ]\n  100000\n]\n",
		},
	}
	for _, testDef := range testDefs {
		cborData, err := hex.DecodeString(testDef.cborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		dump, err := cbor.DumpStructure(cborData)
		if err != nil {
			t.Fatalf("failed to dump CBOR structure: %s", err)
		}
		if dump != testDef.expected {
			t.Fatalf(
				"CBOR dump did not match expected value\n  got:\n%s\n  wanted:\n%s",
				dump,
				testDef.expected,
			)
		}
	}
}

func TestDumpStructureInvalid(t *testing.T) {
	if _, err := cbor.DumpStructure([]byte{0xff}); err == nil {
		t.Fatalf("did not get expected error")
	}
}
