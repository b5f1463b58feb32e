package discovery

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// SkillFile marks its containing directory as a leaf skill.
	SkillFile = "SKILL.md"

	markdownExt = ".md"
)

// Tree describes where descriptors live inside a plugin.
type Tree struct {
	Root        string   // plugin root; output references are relative to it
	CommandsDir string   // commands directory, relative to Root
	SkillsDir   string   // skills directory, relative to Root
	Ignore      []string // doublestar patterns over slash paths relative to Root
}

// relPath returns path relative to the tree root, slash-separated and
// prefixed with "./".
func (t Tree) relPath(path string) string {
	rel, err := filepath.Rel(t.Root, path)
	if err != nil {
		rel = path
	}
	return "./" + filepath.ToSlash(rel)
}

// ignored reports whether path matches one of the ignore patterns.
func (t Tree) ignored(path string) bool {
	if len(t.Ignore) == 0 {
		return false
	}
	rel, err := filepath.Rel(t.Root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range t.Ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
