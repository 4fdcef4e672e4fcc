package osmocore

import (
	"fmt"
	"strings"
)

// HexDump renders p in the classic offset / hex / ASCII layout, one
// line per 16 bytes, with a trailing newline.
func HexDump(p []byte) string {
	var sb strings.Builder
	var offset = 0
	var length = len(p)

	for length > 0 {
		var n = min(length, 16)

		fmt.Fprintf(&sb, "  %03x: ", offset)

		for i := 0; i < n; i++ {
			fmt.Fprintf(&sb, " %02x", p[i])
		}

		for i := n; i < 16; i++ {
			sb.WriteString("   ")
		}

		sb.WriteString("  ")

		for i := 0; i < n; i++ {
			if p[i] >= 0x20 && p[i] <= 0x7E {
				sb.WriteByte(p[i])
			} else {
				sb.WriteByte('.')
			}
		}

		sb.WriteString("\n")

		p = p[n:]
		offset += n
		length -= n
	}

	return sb.String()
}
