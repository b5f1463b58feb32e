// Package cli defines the Cobra command tree for the plugingen CLI. The root
// command generates the manifest; list, check and version are subcommands.
// Commands delegate to internal packages for the work and only handle flag
// parsing, settings resolution and output formatting.
package cli
