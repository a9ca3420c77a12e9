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

package cbor

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// DumpStructure decodes CBOR data generically and renders it as an indented tree.
// Useful for inspecting stored state without knowing its Go type
func DumpStructure(data []byte) (string, error) {
	var tmp any
	if _, err := Decode(data, &tmp); err != nil {
		return "", err
	}
	var sb strings.Builder
	dumpValue(&sb, tmp, "")
	return sb.String(), nil
}

func dumpValue(sb *strings.Builder, v any, indent string) {
	switch val := v.(type) {
	case []any:
		fmt.Fprintf(sb, "%s[\n", indent)
		for _, item := range val {
			dumpValue(sb, item, indent+"  ")
		}
		fmt.Fprintf(sb, "%s]\n", indent)
	case map[any]any:
		// Map iteration order is random
		keys := make([]any, 0, len(val))
		for key := range val {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
		})
		fmt.Fprintf(sb, "%s{\n", indent)
		for _, key := range keys {
			fmt.Fprintf(sb, "%s  %#v =>\n", indent, key)
			dumpValue(sb, val[key], indent+"    ")
		}
		fmt.Fprintf(sb, "%s}\n", indent)
	case []byte:
		fmt.Fprintf(sb, "%sh'%x'\n", indent, val)
	case string:
		fmt.Fprintf(sb, "%s%q\n", indent, val)
	case big.Int:
		fmt.Fprintf(sb, "%s%s\n", indent, val.String())
	case *big.Int:
		fmt.Fprintf(sb, "%s%s\n", indent, val.String())
	default:
		fmt.Fprintf(sb, "%s%v\n", indent, val)
	}
}
