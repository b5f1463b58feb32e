// Package manifest defines the plugin manifest written to .claude/plugin.json.
// It encodes the manifest as two-space indented JSON, writes it atomically,
// reads existing manifests back, and validates documents against the JSON
// Schema embedded from schema/plugin.schema.json.
package manifest
