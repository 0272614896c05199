package structure

import (
	"path/filepath"
	"strings"

	"locale-router/internal/langtag"
)

// Kind classifies the localization layout convention around a source file.
type Kind int

const (
	// Unknown means neither the parent directory nor the file stem names a
	// language.
	Unknown Kind = iota
	// FolderBased means the file sits inside a language-named directory,
	// e.g. locales/en/common.json.
	FolderBased
	// FileBased means the file itself is language-named, e.g. i18n/en.json.
	FileBased
)

func (k Kind) String() string {
	switch k {
	case FolderBased:
		return "folder-based"
	case FileBased:
		return "file-based"
	default:
		return "unknown"
	}
}

// Structure is the classification result for a single source file path.
type Structure struct {
	Kind Kind
	// BasePath is the directory sibling languages and target paths are
	// derived from.
	BasePath string
	// SourceLanguage is the tag inferred from the parent directory name or
	// the file stem, original casing preserved. Empty for Unknown.
	SourceLanguage string
}

// Detect classifies sourcePath by naming convention alone; it never touches
// the filesystem. The folder check runs first: a language-named file inside
// a language-named folder resolves to FolderBased, since the folder is the
// stronger structural signal.
func Detect(sourcePath string) Structure {
	dir := filepath.Dir(sourcePath)

	if parent := filepath.Base(dir); langtag.Validate(parent) {
		return Structure{
			Kind:           FolderBased,
			BasePath:       filepath.Dir(dir),
			SourceLanguage: parent,
		}
	}

	base := filepath.Base(sourcePath)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); langtag.Validate(stem) {
		return Structure{
			Kind:           FileBased,
			BasePath:       dir,
			SourceLanguage: stem,
		}
	}

	return Structure{Kind: Unknown, BasePath: dir}
}
