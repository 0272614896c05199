package pathgen

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

func newTestFs(t *testing.T, paths ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, p := range paths {
		if err := fs.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(fs, p, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

func newTestGenerator(fs afero.Fs) *Generator {
	return NewGenerator(fs, zerolog.Nop())
}

func TestTargetPathFolderBased(t *testing.T) {
	fs := newTestFs(t, "/app/locales/en/common.json")

	got, err := newTestGenerator(fs).TargetPath("/app/locales/en/common.json", "fr")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/app", "locales", "fr", "common.json"); got != want {
		t.Fatalf("target = %q, want %q", got, want)
	}

	// The language directory is created as a side effect.
	ok, err := afero.DirExists(fs, "/app/locales/fr")
	if err != nil || !ok {
		t.Fatalf("language directory not created (ok=%v, err=%v)", ok, err)
	}
}

func TestTargetPathFolderBasedKeepsLanguageCasing(t *testing.T) {
	fs := newTestFs(t, "/app/locales/en/common.json")

	got, err := newTestGenerator(fs).TargetPath("/app/locales/en/common.json", "JA-jp")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/app", "locales", "JA-jp", "common.json"); got != want {
		t.Fatalf("target = %q, want %q", got, want)
	}
	if ok, _ := afero.DirExists(fs, "/app/locales/JA-jp"); !ok {
		t.Fatal("expected directory literally named JA-jp")
	}
}

func TestTargetPathFileBased(t *testing.T) {
	fs := newTestFs(t, "/app/i18n/en.json")

	got, err := newTestGenerator(fs).TargetPath("/app/i18n/en.json", "fr")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/app", "i18n", "fr.json"); got != want {
		t.Fatalf("target = %q, want %q", got, want)
	}
}

func TestTargetPathUnknown(t *testing.T) {
	fs := newTestFs(t, "/app/translations/messages.json")

	got, err := newTestGenerator(fs).TargetPath("/app/translations/messages.json", "fr")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/app", "translations", "messages.fr.json"); got != want {
		t.Fatalf("target = %q, want %q", got, want)
	}
}

func TestTargetPathCollisionNumbering(t *testing.T) {
	fs := newTestFs(t,
		"/app/i18n/en.json",
		"/app/i18n/fr.json",
		"/app/i18n/fr (1).json",
	)

	got, err := newTestGenerator(fs).TargetPath("/app/i18n/en.json", "fr")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/app", "i18n", "fr (2).json"); got != want {
		t.Fatalf("target = %q, want %q", got, want)
	}
}

func TestTargetPathCollisionInLanguageFolder(t *testing.T) {
	fs := newTestFs(t,
		"/app/locales/en/common.json",
		"/app/locales/fr/common.json",
	)

	got, err := newTestGenerator(fs).TargetPath("/app/locales/en/common.json", "fr")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/app", "locales", "fr", "common (1).json"); got != want {
		t.Fatalf("target = %q, want %q", got, want)
	}
}

func TestTargetPathCollisionLimit(t *testing.T) {
	fs := newTestFs(t,
		"/app/i18n/en.json",
		"/app/i18n/fr.json",
		"/app/i18n/fr (1).json",
		"/app/i18n/fr (2).json",
	)

	_, err := newTestGenerator(fs).WithCollisionLimit(2).TargetPath("/app/i18n/en.json", "fr")
	if err == nil {
		t.Fatal("expected error after exhausting the collision limit")
	}
}
