package pathgen

import (
	"fmt"
	"path/filepath"
	"strings"

	"locale-router/internal/structure"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultCollisionLimit bounds the numbered-suffix probe. Reaching it almost
// certainly means a broken existence check rather than a real need for that
// many numbered duplicates.
const DefaultCollisionLimit = 1000

// Generator computes collision-free destination paths for translated files.
type Generator struct {
	fs             afero.Fs
	logger         zerolog.Logger
	collisionLimit int
}

// NewGenerator creates a Generator over fs with the default collision limit.
func NewGenerator(fs afero.Fs, logger zerolog.Logger) *Generator {
	return &Generator{
		fs:             fs,
		logger:         logger,
		collisionLimit: DefaultCollisionLimit,
	}
}

// WithCollisionLimit overrides the maximum number of numbered-suffix probes.
// Non-positive limits are ignored.
func (g *Generator) WithCollisionLimit(limit int) *Generator {
	if limit > 0 {
		g.collisionLimit = limit
	}
	return g
}

// TargetPath computes the destination path for a translation of sourcePath
// into targetLanguage, following the layout convention detected around the
// source. Detection runs here rather than in the caller so the two cannot
// drift. For folder-based layouts the language directory is created if
// absent; targetLanguage is used exactly as supplied, so the caller controls
// the casing of that directory. The returned path did not exist at the time
// of the check; it is advisory under concurrent writers.
func (g *Generator) TargetPath(sourcePath, targetLanguage string) (string, error) {
	st := structure.Detect(sourcePath)
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)

	var candidate string
	switch st.Kind {
	case structure.FolderBased:
		dir := filepath.Join(st.BasePath, targetLanguage)
		if err := g.fs.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create language directory: %w", err)
		}
		candidate = filepath.Join(dir, base)
	case structure.FileBased:
		candidate = filepath.Join(st.BasePath, targetLanguage+ext)
	default:
		stem := strings.TrimSuffix(base, ext)
		candidate = filepath.Join(st.BasePath, stem+"."+targetLanguage+ext)
	}

	return g.resolveCollision(candidate)
}

// resolveCollision returns path unchanged if nothing exists there, otherwise
// the first free "name (N)" variant. The probe runs sequentially from 1 and
// checks existence at every step: numbered siblings may have been deleted
// out of order, so counting them would hand out taken paths.
func (g *Generator) resolveCollision(path string) (string, error) {
	exists, err := afero.Exists(g.fs, path)
	if err != nil {
		return "", fmt.Errorf("check target path: %w", err)
	}
	if !exists {
		return path, nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	for n := 1; n <= g.collisionLimit; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		exists, err := afero.Exists(g.fs, candidate)
		if err != nil {
			return "", fmt.Errorf("check target path: %w", err)
		}
		if !exists {
			g.logger.Debug().Str("path", candidate).Int("probes", n).Msg("Resolved path collision")
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no free path after %d probes for %s", g.collisionLimit, path)
}
