package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/hashicorp/go-multierror"
	"github.com/softwayapp/plugingen/internal/manifest"
)

// CheckReport describes how the manifest on disk compares with a fresh render.
type CheckReport struct {
	OutputPath string
	Missing    bool                       // no manifest on disk
	Stale      bool                       // manifest differs from a fresh render
	Drift      []string                   // entries added, removed or changed since the file was written
	Issues     []manifest.ValidationIssue // schema violations of the file on disk
}

// OK reports whether the manifest on disk is present, current and valid.
func (r *CheckReport) OK() bool {
	return !r.Missing && !r.Stale && len(r.Issues) == 0
}

// Err returns every problem found as a single error, or nil.
func (r *CheckReport) Err() error {
	var result *multierror.Error
	if r.Missing {
		result = multierror.Append(result, fmt.Errorf("%s does not exist", r.OutputPath))
	}
	if r.Stale {
		result = multierror.Append(result, fmt.Errorf("%s is out of date", r.OutputPath))
	}
	for _, issue := range r.Issues {
		result = multierror.Append(result, fmt.Errorf("schema: %s", issue))
	}
	return result.ErrorOrNil()
}

// Check renders the manifest in memory and compares it byte for byte with the
// file at the output path. The file on disk is also validated against the
// plugin schema. Problems are reported in the CheckReport; the error return is
// reserved for failures that prevent the comparison.
func (g *Generator) Check(ctx context.Context) (*CheckReport, error) {
	r, err := g.Render(ctx)
	if err != nil {
		return nil, err
	}

	report := &CheckReport{OutputPath: r.OutputPath}

	existing, err := manifest.ReadBytes(r.OutputPath)
	if errors.Is(err, fs.ErrNotExist) {
		report.Missing = true
		return report, nil
	}
	if err != nil {
		return nil, err
	}

	report.Stale = !bytes.Equal(existing, r.Data)

	validation, err := manifest.Validate(existing)
	if err != nil {
		report.Issues = []manifest.ValidationIssue{{Message: err.Error()}}
		return report, nil
	}
	report.Issues = validation.Issues

	if report.Stale && validation.Valid {
		onDisk, err := manifest.Unmarshal(existing)
		if err != nil {
			return nil, err
		}
		report.Drift = append(
			diffEntries("command", onDisk.Commands, r.Plugin.Commands),
			diffEntries("skill", onDisk.Skills, r.Plugin.Skills)...,
		)
	}

	return report, nil
}

// diffEntries describes how fresh differs from onDisk, one line per id.
func diffEntries[T comparable](kind string, onDisk, fresh manifest.Entries[T]) []string {
	var drift []string
	for id, v := range fresh.All() {
		prev, ok := onDisk.Lookup(id)
		switch {
		case !ok:
			drift = append(drift, fmt.Sprintf("%s %s added", kind, id))
		case prev != v:
			drift = append(drift, fmt.Sprintf("%s %s changed", kind, id))
		}
	}
	for id := range onDisk.All() {
		if _, ok := fresh.Lookup(id); !ok {
			drift = append(drift, fmt.Sprintf("%s %s removed", kind, id))
		}
	}
	return drift
}

func issuesError(msg string, issues []manifest.ValidationIssue) error {
	var result *multierror.Error
	for _, issue := range issues {
		result = multierror.Append(result, errors.New(issue.String()))
	}
	return fmt.Errorf("%s: %w", msg, result.ErrorOrNil())
}
