// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"strings"
)

func codeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, " ")
}

func stringToBool(s string) (bool, error) {
	s = strings.ToLower(s)
	switch s {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		return false, fmt.Errorf("invalid bool value '%s'", s)
	}
}

var hexString = "0123456789ABCDEF"

func addrToBuf(addr uint32, b []byte) {
	b[0] = hexString[(addr>>20)&0xf]
	b[1] = hexString[(addr>>16)&0xf]
	b[2] = hexString[(addr>>12)&0xf]
	b[3] = hexString[(addr>>8)&0xf]
	b[4] = hexString[(addr>>4)&0xf]
	b[5] = hexString[addr&0xf]
}

func byteToBuf(v byte, b []byte) {
	b[0] = hexString[(v>>4)&0xf]
	b[1] = hexString[v&0xf]
}

func toPrintableChar(v byte) byte {
	switch {
	case v >= 32 && v < 127:
		return v
	case v >= 160 && v < 255:
		return v - 128
	default:
		return '.'
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// indentWrap word-wraps s to 76 columns and indents every line by n spaces.
func indentWrap(n int, s string) string {
	indent := strings.Repeat(" ", n)
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(indent)
	col := n
	for i, w := range words {
		if i > 0 {
			if col+1+len(w) > 76 {
				b.WriteString("\n")
				b.WriteString(indent)
				col = n
			} else {
				b.WriteString(" ")
				col++
			}
		}
		b.WriteString(w)
		col += len(w)
	}
	return b.String()
}
