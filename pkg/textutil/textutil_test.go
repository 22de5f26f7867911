package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text passthrough", "no markup here", "no markup here"},
		{"simple tags", "<p>hello</p>", "hello"},
		{"nested tags", "<div><a href=\"x\"><b>link</b></a> tail</div>", "link tail"},
		{"script body dropped", "<p>ok</p><script>alert(1)</script>", "ok"},
		{"style body dropped", "<style>.x{}</style>text", "text"},
		{"unclosed tag", "<p>open", "open"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.input))
		})
	}
}

func TestStripTags_EntityOnlyInputKeptVerbatim(t *testing.T) {
	// Inputs without any tag skip parsing entirely, so entities survive
	// for the escaping step downstream.
	assert.Equal(t, "5 &gt; 3", StripTags("5 &gt; 3"))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \n\t b   c  "))
	assert.Equal(t, "", CollapseWhitespace("   \n "))
	assert.Equal(t, "untouched", CollapseWhitespace("untouched"))
}

func TestTruncateRunes_UnderLimitUnchanged(t *testing.T) {
	assert.Equal(t, "short", TruncateRunes("short", 300, "…"))
}

func TestTruncateRunes_AtLimitUnchanged(t *testing.T) {
	s := strings.Repeat("x", 300)
	assert.Equal(t, s, TruncateRunes(s, 300, "…"))
}

func TestTruncateRunes_OverLimitGetsMarker(t *testing.T) {
	s := strings.Repeat("x", 301)
	got := TruncateRunes(s, 300, "…")

	assert.Len(t, []rune(got), 301)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestTruncateRunes_CountsRunesNotBytes(t *testing.T) {
	s := strings.Repeat("あ", 310)
	got := TruncateRunes(s, 300, "…")

	assert.Len(t, []rune(got), 301)
	assert.Equal(t, strings.Repeat("あ", 300)+"…", got)
}

func TestTruncateRunes_NegativeLimit(t *testing.T) {
	assert.Equal(t, "…", TruncateRunes("anything", -1, "…"))
}
