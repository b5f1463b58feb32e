package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantBlock string
		wantOK    bool
	}{
		{
			name:      "simple block",
			content:   "---\ndescription: Deploys the app\n---\n# Deploy\n",
			wantBlock: "description: Deploys the app",
			wantOK:    true,
		},
		{
			name:      "multi-line block",
			content:   "---\nname: unit-test\ndescription: Runs unit tests\n---\nbody",
			wantBlock: "name: unit-test\ndescription: Runs unit tests",
			wantOK:    true,
		},
		{
			name:      "block at end of file",
			content:   "---\ndescription: x\n---",
			wantBlock: "description: x",
			wantOK:    true,
		},
		{
			name:      "empty block",
			content:   "---\n---\nbody",
			wantBlock: "",
			wantOK:    true,
		},
		{
			name:      "trailing spaces on delimiters",
			content:   "---  \ndescription: x\n--- \nbody",
			wantBlock: "description: x",
			wantOK:    true,
		},
		{
			name:      "crlf line endings",
			content:   "---\r\ndescription: x\r\n---\r\nbody",
			wantBlock: "description: x",
			wantOK:    true,
		},
		{
			name:      "byte order mark",
			content:   "\ufeff---\ndescription: x\n---\n",
			wantBlock: "description: x",
			wantOK:    true,
		},
		{
			name:    "no block",
			content: "# Deploy\n\ndescription: not metadata\n",
			wantOK:  false,
		},
		{
			name:    "block not at start",
			content: "\n---\ndescription: x\n---\n",
			wantOK:  false,
		},
		{
			name:    "unterminated block",
			content: "---\ndescription: x\nbody without closing delimiter\n",
			wantOK:  false,
		},
		{
			name:    "four dashes do not close",
			content: "---\ndescription: x\n----\n",
			wantOK:  false,
		},
		{
			name:    "empty content",
			content: "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, ok := Extract(tt.content)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantBlock, block)
			}
		})
	}
}

func TestExtractStopsAtFirstClosingDelimiter(t *testing.T) {
	content := "---\ndescription: first\n---\n---\ndescription: second\n---\n"

	block, ok := Extract(content)
	assert.True(t, ok)
	assert.Equal(t, "description: first", block)
}

func TestField(t *testing.T) {
	block := "name: unit-test\ndescription:   Runs unit tests  \nmodel: sonnet\ndisplay_name: Unit"

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"name", "unit-test", true},
		{"description", "Runs unit tests", true},
		{"model", "sonnet", true},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := Field(block, tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldFirstMatchWins(t *testing.T) {
	got, ok := Field("description: one\ndescription: two", "description")
	assert.True(t, ok)
	assert.Equal(t, "one", got)
}

func TestFieldIgnoresIndentedAndPrefixedKeys(t *testing.T) {
	block := "metadata:\n  name: nested\nskill_name: other"

	_, ok := Field(block, "name")
	assert.False(t, ok)
}

func TestFieldEmptyValueIsAbsent(t *testing.T) {
	_, ok := Field("description:   \nname: x", "description")
	assert.False(t, ok)
}

func TestFieldKeepsQuotesVerbatim(t *testing.T) {
	got, ok := Field(`description: "Quoted: with colon"`, "description")
	assert.True(t, ok)
	assert.Equal(t, `"Quoted: with colon"`, got)
}

func TestFieldTrimsCarriageReturn(t *testing.T) {
	got, ok := Field("description: x\r\nname: y\r", "name")
	assert.True(t, ok)
	assert.Equal(t, "y", got)
}

func TestLookup(t *testing.T) {
	got, ok := Lookup("---\ndescription: Opens an issue\n---\n", "description")
	assert.True(t, ok)
	assert.Equal(t, "Opens an issue", got)

	_, ok = Lookup("description: outside any block\n", "description")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	f := Parse("---\nname: unit-test\ndescription: Runs unit tests\n---\n")
	assert.Equal(t, Fields{Name: "unit-test", Description: "Runs unit tests", HasBlock: true}, f)

	assert.Equal(t, Fields{}, Parse("# no metadata"))
	assert.Equal(t, Fields{HasBlock: true}, Parse("---\nauthor: me\n---\n"))
}

func TestOr(t *testing.T) {
	assert.Equal(t, "value", Or("value", "fallback"))
	assert.Equal(t, "fallback", Or("", "fallback"))
}
