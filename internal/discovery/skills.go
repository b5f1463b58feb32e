package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/softwayapp/plugingen/internal/frontmatter"
	"github.com/softwayapp/plugingen/internal/logger"
	"github.com/softwayapp/plugingen/internal/manifest"
)

// Skills discovers skill directories below the skills directory. A directory
// containing SKILL.md is a skill and is not descended into; any other
// directory is searched recursively. The skills directory itself is never a
// skill. Symlinked directories are followed, but a directory that is already
// on the current path is skipped so that link cycles terminate.
func (t Tree) Skills(ctx context.Context) (manifest.Entries[manifest.Skill], error) {
	dir := filepath.Join(t.Root, t.SkillsDir)
	log := logger.G(ctx).WithField("dir", t.relPath(dir))

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return manifest.Entries[manifest.Skill]{}, fmt.Errorf("reading skills directory %s: %w", dir, err)
	}

	w := &skillWalker{
		tree:      t,
		log:       log,
		ancestors: map[string]bool{resolved: true},
	}
	if err := w.walk(dir); err != nil {
		return manifest.Entries[manifest.Skill]{}, err
	}
	return w.skills, nil
}

type skillWalker struct {
	tree      Tree
	log       *logrus.Entry
	skills    manifest.Entries[manifest.Skill]
	ancestors map[string]bool // resolved paths of the directories being walked
}

func (w *skillWalker) walk(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if w.tree.ignored(path) {
			w.log.WithField("path", w.tree.relPath(path)).Debug("ignoring skill entry")
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", path, err)
		}
		if !info.IsDir() {
			continue
		}

		descriptor := filepath.Join(path, SkillFile)
		_, err = os.Stat(descriptor)
		switch {
		case err == nil:
			if err := w.addSkill(path, descriptor); err != nil {
				return err
			}
			continue
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("inspecting %s: %w", descriptor, err)
		}

		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}
		if w.ancestors[resolved] {
			w.log.WithField("path", w.tree.relPath(path)).Warn("symlink cycle detected, not descending")
			continue
		}

		w.ancestors[resolved] = true
		err = w.walk(path)
		delete(w.ancestors, resolved)
		if err != nil {
			return err
		}
	}
	return nil
}

// addSkill reads a SKILL.md and records the skill under its declared name,
// or under the directory name when no name is declared. A later skill with
// the same id replaces the earlier one.
func (w *skillWalker) addSkill(dir, descriptor string) error {
	content, err := os.ReadFile(descriptor)
	if err != nil {
		return fmt.Errorf("reading skill %s: %w", descriptor, err)
	}

	dirName := filepath.Base(dir)
	fields := frontmatter.Parse(string(content))
	if !fields.HasBlock {
		w.log.WithField("skill", dirName).Debug("no metadata block, using fallbacks")
	}

	id := frontmatter.Or(fields.Name, dirName)
	skill := manifest.Skill{
		Description: frontmatter.Or(fields.Description, dirName+" skill"),
		Path:        w.tree.relPath(dir),
	}

	if prev, replaced := w.skills.Set(id, skill); replaced {
		w.log.WithFields(logrus.Fields{
			"skill":    id,
			"previous": prev.Path,
			"path":     skill.Path,
		}).Warn("duplicate skill id, keeping the later directory")
	}
	w.log.WithFields(logrus.Fields{"skill": id, "path": skill.Path}).Debug("discovered skill")
	return nil
}
