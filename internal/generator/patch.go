package generator

import "strings"

// InsertBefore inserts line into content ahead of marker lines.
//
// Lines are compared after trimming leading and trailing whitespace. The
// first line starting with sentinel arms the scan; from then on, every line
// starting with before gets one copy of line inserted directly above it.
// The scan intentionally never disarms, matching the historical behavior
// this tool replaces: a file with multiple marker lines after the sentinel
// receives multiple insertions.
//
// CRLF input is normalized to LF. All other bytes are preserved in order.
// Returns the patched content and the number of insertions made; zero means
// the sentinel or marker was never found and content is returned unchanged
// (modulo line-ending normalization).
func InsertBefore(content, sentinel, before, line string) (string, int) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(normalized) + len(line) + 1)

	armed := false
	inserted := 0

	rest := normalized
	for len(rest) > 0 {
		var cur string
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			cur, rest = rest[:i+1], rest[i+1:]
		} else {
			cur, rest = rest, ""
		}

		s := strings.TrimSpace(cur)
		if strings.HasPrefix(s, sentinel) {
			armed = true
		}
		if armed && strings.HasPrefix(s, before) {
			b.WriteString(line)
			b.WriteByte('\n')
			inserted++
		}
		b.WriteString(cur)
	}

	return b.String(), inserted
}
