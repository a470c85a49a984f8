package shared

import (
	"strings"
)

const ellipsis = "..."

// ApplyTokens substitutes {token} placeholders in a broadcast format
// template. Unknown placeholders are left as-is. Each placeholder is
// resolved against the original template in a single pass, so substituted
// values are never scanned again: a token literal inside a post's title or
// content stays verbatim in the output.
func ApplyTokens(format string, vals map[string]string) string {
	var sb strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '{' {
			if end := strings.IndexByte(format[i:], '}'); end >= 0 {
				if val, ok := vals[format[i:i+end+1]]; ok {
					sb.WriteString(val)
					i += end + 1
					continue
				}
			}
		}
		sb.WriteByte(format[i])
		i++
	}
	return sb.String()
}

// BuildBroadcastText renders the final outbound message: the formatted text
// (with the {url} token stripped), truncated so that text plus permalink
// fits maxLen, with the permalink always appended last.
//
// The arithmetic is fixed for compatibility with previously recorded
// broadcasts: the permalink claims len(permalink)+1 characters (separating
// space included); when the total would exceed maxLen, the text keeps
// maxLen - urlLength - 3 characters and gets a three-dot ellipsis.
// Counting is in runes, right-truncation only, no word-boundary awareness.
func BuildBroadcastText(text, permalink string, maxLen int) string {

	text = strings.TrimRight(strings.ReplaceAll(text, "{url}", ""), " ")

	urlLength := len([]rune(permalink)) + 1
	runes := []rune(text)
	if len(runes)+urlLength > maxLen {
		keep := maxLen - urlLength - len(ellipsis)
		if keep < 0 {
			keep = 0
		}
		if keep > len(runes) {
			keep = len(runes)
		}
		text = string(runes[:keep]) + ellipsis
	}
	return text + " " + permalink
}
