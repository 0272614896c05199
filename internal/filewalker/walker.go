package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultExtensions lists file types treated as localization assets when no
// explicit set is configured.
var DefaultExtensions = []string{".json", ".yaml", ".yml", ".po", ".ini", ".properties"}

// Walker discovers localization asset files under a root directory.
type Walker struct {
	fs     afero.Fs
	logger zerolog.Logger
	exts   map[string]bool
}

// NewWalker creates a Walker over fs that recognizes the given extensions,
// compared lowercase. An empty set falls back to DefaultExtensions.
func NewWalker(fs afero.Fs, extensions []string, logger zerolog.Logger) *Walker {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}
	return &Walker{fs: fs, logger: logger, exts: exts}
}

// FileEntry represents a discovered asset file ready for routing.
type FileEntry struct {
	Path string
	Ext  string
}

// Walk discovers all asset files under the given root directory. Unreadable
// paths are logged and skipped rather than aborting the walk.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	info, err := w.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []FileEntry

	err = afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			w.logger.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !w.exts[ext] {
			return nil
		}

		entries = append(entries, FileEntry{Path: path, Ext: ext})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	w.logger.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered asset files")
	return entries, nil
}
