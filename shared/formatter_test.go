package shared

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func applyDefaultTokens(format, title, content string) string {
	return ApplyTokens(format, map[string]string{
		"{title}":   title,
		"{content}": content,
	})
}

func TestBuildBroadcastText_NoTruncation(t *testing.T) {
	permalink := "https://ex.com/p/12345" // 22 chars
	permalink = permalink[:20]
	text := applyDefaultTokens("{title}: {content} {url}", "Hello", "World")
	out := BuildBroadcastText(text, permalink, 140)
	assert.Equal(t, "Hello: World "+permalink, out)
	assert.LessOrEqual(t, len([]rune(out)), 140)
	assert.Equal(t, 1, strings.Count(out, permalink))
}

func TestBuildBroadcastText_Truncation(t *testing.T) {
	permalink := "https://example.com/p/1" // 23 chars
	assert.Equal(t, 23, len(permalink))
	content := strings.Repeat("x", 200)
	text := applyDefaultTokens("{title}: {content} {url}", "Hello", content)
	out := BuildBroadcastText(text, permalink, 140)
	assert.Equal(t, 140, len([]rune(out)))
	assert.True(t, strings.HasSuffix(out, permalink))
	assert.True(t, strings.HasSuffix(strings.TrimSuffix(out, " "+permalink), "..."))
	assert.Equal(t, 1, strings.Count(out, "..."))
}

func TestBuildBroadcastText_NeverExceedsMax(t *testing.T) {
	permalink := "https://example.com/p/99"
	for contentLen := 0; contentLen < 300; contentLen += 7 {
		text := applyDefaultTokens("{title}: {content} {url}", "T", strings.Repeat("a", contentLen))
		out := BuildBroadcastText(text, permalink, 140)
		assert.LessOrEqual(t, len([]rune(out)), 140)
		assert.True(t, strings.HasSuffix(out, permalink))
	}
}

func TestBuildBroadcastText_RuneCounting(t *testing.T) {
	permalink := "https://example.com/p/1"
	text := applyDefaultTokens("{title}: {content} {url}", "Héllo", strings.Repeat("é", 200))
	out := BuildBroadcastText(text, permalink, 140)
	assert.Equal(t, 140, len([]rune(out)))
	assert.True(t, strings.HasSuffix(out, permalink))
}

func TestApplyTokens_UnknownTokensKept(t *testing.T) {
	out := ApplyTokens("{title} {nope}", map[string]string{"{title}": "Hi"})
	assert.Equal(t, "Hi {nope}", out)
}

func TestApplyTokens_TokenLiteralInValueStaysVerbatim(t *testing.T) {
	vals := map[string]string{
		"{title}":   "Hello",
		"{content}": "see {title} above",
		"{author}":  "jane",
	}
	want := "Hello: see {title} above (jane)"
	for i := 0; i < 50; i++ {
		out := ApplyTokens("{title}: {content} ({author})", vals)
		assert.Equal(t, want, out)
	}
}

func TestApplyTokens_AdjacentAndBracedText(t *testing.T) {
	out := ApplyTokens("{title}{title} {unclosed and {content}", map[string]string{
		"{title}":   "A",
		"{content}": "B",
	})
	assert.Equal(t, "AA {unclosed and B", out)
}
