// Package fonts finds font files for the console and overlays by fuzzy name, e.g. "inter"
// or "Google Sans" matches assets/fonts/Google_Sans/GoogleSans-Regular.ttf.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// ErrNotFound is returned by Find when no font matches.
var ErrNotFound = errors.New("font not found")

// Scan returns the font files under dir as slash-separated paths relative to dir, sorted.
// A missing dir yields no fonts.
func Scan(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(filepath.Clean(dir), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and drops spaces, dashes and underscores.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find resolves name to a font file. A name that is itself an existing file is returned as
// is; otherwise dir is scanned for paths containing the normalized name, preferring a
// "Regular" face.
func Find(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNotFound
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}

	list, err := Scan(dir)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	want := normalize(strings.TrimSuffix(name, filepath.Ext(name)))
	var matches []string
	for _, rel := range list {
		if strings.Contains(normalize(rel), want) {
			matches = append(matches, rel)
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("fonts: %q in %s: %w", name, dir, ErrNotFound)
	}
	pick := matches[0]
	for _, rel := range matches {
		if strings.Contains(strings.ToLower(rel), "regular") {
			pick = rel
			break
		}
	}
	return filepath.Join(dir, filepath.FromSlash(pick)), nil
}
