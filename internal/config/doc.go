// Package config resolves generator settings. Values are layered, lowest to
// highest precedence: the identity embedded by the branding package, an
// optional plugingen.yaml at the plugin root, PLUGINGEN_* environment
// variables, and explicit overrides supplied by the CLI.
package config
