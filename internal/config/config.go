package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/softwayapp/plugingen/internal/branding"
	"github.com/softwayapp/plugingen/internal/manifest"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// namePattern restricts plugin names to the form the manifest schema accepts.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Config keys.
const (
	KeyName           = "name"
	KeyDisplayName    = "display_name"
	KeyVersion        = "version"
	KeyDescription    = "description"
	KeyAuthorName     = "author.name"
	KeyAuthorEmail    = "author.email"
	KeyHomepage       = "homepage"
	KeyRepositoryType = "repository.type"
	KeyRepositoryURL  = "repository.url"
	KeyLicense        = "license"
	KeyKeywords       = "keywords"
	KeyMain           = "main"
	KeyCommandsDir    = "commands_dir"
	KeySkillsDir      = "skills_dir"
	KeyOutputDir      = "output_dir"
	KeyIgnore         = "ignore"
)

// Layout defaults.
const (
	DefaultCommandsDir = "commands"
	DefaultSkillsDir   = "skills"
	DefaultOutputDir   = ".claude"
	OutputFile         = "plugin.json"
)

// Settings is the fully resolved configuration for one generator run.
type Settings struct {
	Root        string // absolute plugin root
	ConfigFile  string // config file that was read, empty if none
	Identity    manifest.Identity
	CommandsDir string   // relative to Root
	SkillsDir   string   // relative to Root
	OutputDir   string   // relative to Root
	Ignore      []string // doublestar patterns matched against slash paths relative to Root
}

// OutputPath returns the absolute path of the manifest file.
func (s *Settings) OutputPath() string {
	return filepath.Join(s.Root, s.OutputDir, OutputFile)
}

// Options controls how Load finds its inputs.
type Options struct {
	// Root is the plugin root directory. Defaults to the working directory.
	Root string
	// ConfigFile overrides the default <root>/plugingen.yaml lookup. An
	// explicitly named file must exist.
	ConfigFile string
	// Overrides are applied with the highest precedence (typically CLI flags).
	Overrides map[string]interface{}
}

// Load resolves Settings from defaults, config file, environment and overrides.
func Load(opts Options) (*Settings, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}

	v := newViper()

	configFile, err := readConfigFile(v, absRoot, opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	s := &Settings{
		Root:       absRoot,
		ConfigFile: configFile,
		Identity: manifest.Identity{
			Name:        v.GetString(KeyName),
			DisplayName: v.GetString(KeyDisplayName),
			Version:     v.GetString(KeyVersion),
			Description: v.GetString(KeyDescription),
			Author: manifest.Author{
				Name:  v.GetString(KeyAuthorName),
				Email: v.GetString(KeyAuthorEmail),
			},
			Homepage: v.GetString(KeyHomepage),
			Repository: manifest.Repository{
				Type: v.GetString(KeyRepositoryType),
				URL:  v.GetString(KeyRepositoryURL),
			},
			License:  v.GetString(KeyLicense),
			Keywords: stringList(v, KeyKeywords),
			Main:     v.GetString(KeyMain),
		},
		CommandsDir: filepath.Clean(v.GetString(KeyCommandsDir)),
		SkillsDir:   filepath.Clean(v.GetString(KeySkillsDir)),
		OutputDir:   filepath.Clean(v.GetString(KeyOutputDir)),
		Ignore:      v.GetStringSlice(KeyIgnore),
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// newViper returns a viper instance seeded with the embedded defaults and
// bound to the environment.
func newViper() *viper.Viper {
	v := viper.New()

	p := branding.DefaultPlugin()
	v.SetDefault(KeyName, p.Name)
	v.SetDefault(KeyDisplayName, p.DisplayName)
	v.SetDefault(KeyVersion, p.Version)
	v.SetDefault(KeyDescription, p.Description)
	v.SetDefault(KeyAuthorName, p.AuthorName)
	v.SetDefault(KeyAuthorEmail, p.AuthorEmail)
	v.SetDefault(KeyHomepage, p.Homepage)
	v.SetDefault(KeyRepositoryType, p.RepositoryType)
	v.SetDefault(KeyRepositoryURL, p.RepositoryURL)
	v.SetDefault(KeyLicense, p.License)
	v.SetDefault(KeyKeywords, p.Keywords)
	v.SetDefault(KeyMain, p.Main)
	v.SetDefault(KeyCommandsDir, DefaultCommandsDir)
	v.SetDefault(KeySkillsDir, DefaultSkillsDir)
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyIgnore, []string{})

	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// readConfigFile loads the explicit config file, or <root>/plugingen.yaml when
// it exists. It returns the path that was read.
func readConfigFile(v *viper.Viper, root, explicit string) (string, error) {
	path := explicit
	if path == "" {
		path = filepath.Join(root, branding.ConfigFile())
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("reading config file %s: %w", path, err)
	}
	return path, nil
}

// stringList reads a list value. A plain string, as set through the
// environment, is split on commas and each item is trimmed.
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}

	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (s *Settings) validate() error {
	if !namePattern.MatchString(s.Identity.Name) {
		return fmt.Errorf("invalid plugin name %q: must start with a lowercase letter or digit and contain only lowercase letters, digits, '.', '_' or '-'", s.Identity.Name)
	}

	if _, err := ParseVersion(s.Identity.Version); err != nil {
		return fmt.Errorf("invalid plugin version %q: %w", s.Identity.Version, err)
	}

	for key, dir := range map[string]string{
		KeyCommandsDir: s.CommandsDir,
		KeySkillsDir:   s.SkillsDir,
		KeyOutputDir:   s.OutputDir,
	} {
		if filepath.IsAbs(dir) || dir == ".." || strings.HasPrefix(dir, ".."+string(filepath.Separator)) {
			return fmt.Errorf("%s must be a path inside the plugin root, got %q", key, dir)
		}
	}

	for _, pattern := range s.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}
	return nil
}
