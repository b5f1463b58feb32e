// Package branding provides compile-time identity values for the generator
// and the default identity of the plugin it describes.
//
// Forkers of the marketplace edit branding.yaml in this package and rebuild.
// Go's //go:embed bakes the file into the binary, so a plain `plugingen` run
// reproduces the same static manifest fields on every machine.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName    string `yaml:"cli_name"`
	EnvPrefix  string `yaml:"env_prefix"`
	ConfigFile string `yaml:"config_file"`
	Plugin     Plugin `yaml:"plugin"`
}

// Plugin holds the default static fields of the generated manifest.
type Plugin struct {
	Name           string   `yaml:"name"`
	DisplayName    string   `yaml:"display_name"`
	Version        string   `yaml:"version"`
	Description    string   `yaml:"description"`
	AuthorName     string   `yaml:"author_name"`
	AuthorEmail    string   `yaml:"author_email"`
	Homepage       string   `yaml:"homepage"`
	RepositoryType string   `yaml:"repository_type"`
	RepositoryURL  string   `yaml:"repository_url"`
	License        string   `yaml:"license"`
	Keywords       []string `yaml:"keywords"`
	Main           string   `yaml:"main"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:    "plugingen",
			EnvPrefix:  "PLUGINGEN",
			ConfigFile: "plugingen.yaml",
			Plugin: Plugin{
				Name:           "softwayapp-marketplace",
				DisplayName:    "SoftwayApp Development Marketplace",
				Version:        "1.0.0",
				Description:    "Complete development toolkit with 32+ skills, 4 commands, and 3 agents for enterprise workflows",
				AuthorName:     "SoftwayApp",
				AuthorEmail:    "dev@softwayapp.com",
				Homepage:       "https://github.com/softwayapp/market-place",
				RepositoryType: "git",
				RepositoryURL:  "https://github.com/softwayapp/market-place",
				License:        "MIT",
				Keywords:       []string{"development", "automation", "skills", "enterprise", "marketplace"},
				Main:           "./",
			},
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "plugingen").
func CLIName() string { load(); return defaults.CLIName }

// EnvPrefix returns the environment variable prefix (e.g., "PLUGINGEN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigFile returns the name of the optional per-project config file.
func ConfigFile() string { load(); return defaults.ConfigFile }

// DefaultPlugin returns a copy of the embedded plugin identity.
func DefaultPlugin() Plugin {
	load()
	p := defaults.Plugin
	p.Keywords = append([]string(nil), defaults.Plugin.Keywords...)
	return p
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("version") → "PLUGINGEN_VERSION".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
