package discovery

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/softwayapp/plugingen/internal/frontmatter"
	"github.com/softwayapp/plugingen/internal/logger"
	"github.com/softwayapp/plugingen/internal/manifest"
)

// Commands discovers command descriptors. Markdown files directly inside the
// commands directory are named after their base name; markdown files one
// directory deeper are named "<group>:<base>". Deeper files are not visited.
func (t Tree) Commands(ctx context.Context) (manifest.Entries[manifest.Command], error) {
	dir := filepath.Join(t.Root, t.CommandsDir)
	log := logger.G(ctx).WithField("dir", t.relPath(dir))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return manifest.Entries[manifest.Command]{}, fmt.Errorf("reading commands directory %s: %w", dir, err)
	}

	var commands manifest.Entries[manifest.Command]
	for _, entry := range entries {
		// Only markdown files and directories, or links that may point to
		// one, are ever inspected.
		if !isMarkdown(entry.Name()) && !mayBeDir(entry) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if t.ignored(path) {
			log.WithField("path", t.relPath(path)).Debug("ignoring command entry")
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return manifest.Entries[manifest.Command]{}, fmt.Errorf("inspecting %s: %w", path, err)
		}

		if info.IsDir() {
			if err := t.commandGroup(log, path, entry.Name(), &commands); err != nil {
				return manifest.Entries[manifest.Command]{}, err
			}
			continue
		}

		if !isMarkdown(entry.Name()) {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), markdownExt)
		if err := t.addCommand(log, &commands, id, path); err != nil {
			return manifest.Entries[manifest.Command]{}, err
		}
	}

	return commands, nil
}

// commandGroup adds the markdown files directly inside a group directory.
func (t Tree) commandGroup(log *logrus.Entry, dir, group string, commands *manifest.Entries[manifest.Command]) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading command group %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !isMarkdown(entry.Name()) {
			continue
		}
		if t.ignored(path) {
			log.WithField("path", t.relPath(path)).Debug("ignoring command entry")
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}

		id := group + ":" + strings.TrimSuffix(entry.Name(), markdownExt)
		if err := t.addCommand(log, commands, id, path); err != nil {
			return err
		}
	}
	return nil
}

// addCommand reads one descriptor and records it under id. A later command
// with the same id replaces the earlier one.
func (t Tree) addCommand(log *logrus.Entry, commands *manifest.Entries[manifest.Command], id, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading command %s: %w", path, err)
	}

	description, ok := frontmatter.Lookup(string(content), "description")
	if !ok {
		description = id + " command"
		log.WithField("command", id).Debug("no description in metadata block, using fallback")
	}

	cmd := manifest.Command{
		Description: description,
		File:        t.relPath(path),
	}
	if prev, replaced := commands.Set(id, cmd); replaced {
		log.WithFields(logrus.Fields{
			"command":  id,
			"previous": prev.File,
			"file":     cmd.File,
		}).Warn("duplicate command id, keeping the later file")
	}
	log.WithFields(logrus.Fields{"command": id, "file": cmd.File}).Debug("discovered command")
	return nil
}

func isMarkdown(name string) bool {
	return strings.HasSuffix(name, markdownExt)
}

// mayBeDir reports whether entry is a directory or a symlink, which may
// resolve to one.
func mayBeDir(entry fs.DirEntry) bool {
	return entry.IsDir() || entry.Type()&fs.ModeSymlink != 0
}
