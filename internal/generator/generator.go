package generator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/softwayapp/plugingen/internal/config"
	"github.com/softwayapp/plugingen/internal/discovery"
	"github.com/softwayapp/plugingen/internal/logger"
	"github.com/softwayapp/plugingen/internal/manifest"
)

// Generator builds manifests for one plugin tree.
type Generator struct {
	settings *config.Settings
	tree     discovery.Tree
}

// New returns a Generator for the given settings.
func New(s *config.Settings) *Generator {
	return &Generator{
		settings: s,
		tree: discovery.Tree{
			Root:        s.Root,
			CommandsDir: s.CommandsDir,
			SkillsDir:   s.SkillsDir,
			Ignore:      s.Ignore,
		},
	}
}

// Result is the outcome of rendering a manifest.
type Result struct {
	Plugin     *manifest.Plugin
	Data       []byte // encoded document
	OutputPath string
}

// Summary returns the one-line report printed after a run.
func (r *Result) Summary() string {
	return fmt.Sprintf("Generated %s with %d commands and %d skills",
		filepath.Base(r.OutputPath), r.Plugin.Commands.Len(), r.Plugin.Skills.Len())
}

// Build discovers commands and skills and merges them with the configured
// identity into a new manifest.
func (g *Generator) Build(ctx context.Context) (*manifest.Plugin, error) {
	commands, err := g.tree.Commands(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovering commands: %w", err)
	}

	skills, err := g.tree.Skills(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovering skills: %w", err)
	}

	p := manifest.New(g.settings.Identity)
	p.Commands = commands
	p.Skills = skills
	return p, nil
}

// Render builds and encodes the manifest and validates the encoded document
// against the plugin schema. Nothing is written.
func (g *Generator) Render(ctx context.Context) (*Result, error) {
	p, err := g.Build(ctx)
	if err != nil {
		return nil, err
	}

	data, err := manifest.Marshal(p)
	if err != nil {
		return nil, err
	}

	result, err := manifest.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}
	if !result.Valid {
		return nil, issuesError("generated manifest is invalid", result.Issues)
	}

	return &Result{
		Plugin:     p,
		Data:       data,
		OutputPath: g.settings.OutputPath(),
	}, nil
}

// Generate renders the manifest and replaces the file at the output path.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	r, err := g.Render(ctx)
	if err != nil {
		return nil, err
	}

	if err := manifest.WriteBytes(r.OutputPath, r.Data); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}
	logger.G(ctx).WithField("path", r.OutputPath).Debug("manifest written")
	return r, nil
}
