// Package frontmatter extracts the leading metadata block of a descriptor
// file and looks up single-line fields inside it.
//
// A metadata block is delimited by lines consisting only of "---". Fields are
// matched line by line ("key: value") without parsing the block as YAML, so
// values are returned verbatim apart from surrounding whitespace.
package frontmatter

import (
	"regexp"
	"strings"
)

const bom = "\ufeff"

var blockPattern = regexp.MustCompile(`\A---[ \t]*\r?\n(?:([\s\S]*?)\r?\n)?---[ \t]*(?:\r?\n|\z)`)

// Extract returns the body of the metadata block that content begins with.
// ok is false when content does not start with a complete block.
func Extract(content string) (block string, ok bool) {
	content = strings.TrimPrefix(content, bom)

	m := blockPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Field returns the value of the first line in block that begins with
// "key:". An empty value is reported as absent.
func Field(block, key string) (string, bool) {
	for _, line := range strings.Split(block, "\n") {
		rest, found := strings.CutPrefix(line, key+":")
		if !found {
			continue
		}
		value := strings.TrimSpace(rest)
		if value == "" {
			return "", false
		}
		return value, true
	}
	return "", false
}

// Lookup extracts the metadata block from content and returns the named field.
func Lookup(content, key string) (string, bool) {
	block, ok := Extract(content)
	if !ok {
		return "", false
	}
	return Field(block, key)
}

// Fields holds the descriptor fields the generator consumes.
type Fields struct {
	Name        string
	Description string
	HasBlock    bool
}

// Parse extracts the name and description fields from content in one pass.
// Missing fields are left empty.
func Parse(content string) Fields {
	block, ok := Extract(content)
	if !ok {
		return Fields{}
	}

	f := Fields{HasBlock: true}
	f.Name, _ = Field(block, "name")
	f.Description, _ = Field(block, "description")
	return f
}

// Or returns value when it is non-empty and fallback otherwise.
func Or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
