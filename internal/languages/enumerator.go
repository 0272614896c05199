package languages

import (
	"path/filepath"
	"sort"
	"strings"

	"locale-router/internal/langtag"
	"locale-router/internal/structure"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Enumerator lists the language variants present next to a source file.
type Enumerator struct {
	fs     afero.Fs
	logger zerolog.Logger
	coll   *collate.Collator
}

// NewEnumerator creates an Enumerator that sorts results with the collation
// rules of sortLocale. Warnings for unreadable directories go to logger.
func NewEnumerator(fs afero.Fs, sortLocale language.Tag, logger zerolog.Logger) *Enumerator {
	return &Enumerator{
		fs:     fs,
		logger: logger,
		coll:   collate.New(sortLocale, collate.IgnoreCase),
	}
}

// List returns the sibling language variants of sourcePath in the layout
// convention detected around it, excluding its own source language
// (case-insensitive) and sorted case-insensitively. Each entry keeps its
// original on-disk casing, since callers use it both as a display label and
// as a target language input. A scan failure degrades to an empty result:
// failing to suggest languages must not block the workflow.
func (e *Enumerator) List(sourcePath string) []string {
	st := structure.Detect(sourcePath)
	if st.Kind == structure.Unknown {
		return nil
	}

	entries, err := afero.ReadDir(e.fs, st.BasePath)
	if err != nil {
		e.logger.Warn().Err(err).Str("path", st.BasePath).Msg("Failed to scan for sibling languages")
		return nil
	}

	sourceExt := filepath.Ext(sourcePath)
	var candidates []string
	for _, entry := range entries {
		name := entry.Name()
		switch st.Kind {
		case structure.FolderBased:
			if entry.IsDir() && langtag.Validate(name) {
				candidates = append(candidates, name)
			}
		case structure.FileBased:
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), sourceExt) {
				continue
			}
			if stem := strings.TrimSuffix(name, filepath.Ext(name)); langtag.Validate(stem) {
				candidates = append(candidates, stem)
			}
		}
	}

	langs := candidates[:0]
	for _, l := range candidates {
		if !strings.EqualFold(l, st.SourceLanguage) {
			langs = append(langs, l)
		}
	}

	sort.SliceStable(langs, func(i, j int) bool {
		return e.coll.CompareString(langs[i], langs[j]) < 0
	})

	return langs
}
