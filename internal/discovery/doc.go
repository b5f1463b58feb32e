// Package discovery finds command and skill descriptors inside a plugin tree.
//
// Commands live under commands/ as markdown files, optionally grouped one
// directory deep. Skills live anywhere under skills/ in a directory holding a
// SKILL.md file; the walk does not descend into a skill directory once found.
// Both walks return freshly built maps, leaving merging to the caller.
package discovery
