// Package assets maps logical icon names to SVG files in a resource
// directory. Resolution runs a fallback chain (exact match, inflection,
// hyphen suffix, fuzzy similarity) over a per-directory listing that is
// read once and cached for the process lifetime; the resource directory
// is assumed static at request time.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/agext/levenshtein"
	"github.com/jinzhu/inflection"

	"github.com/mathpict/mathpict/internal/i18n"
)

// similarityFloor is the minimum levenshtein similarity accepted by the
// fuzzy stage of the fallback chain.
const similarityFloor = 0.6

// MissingAssetError reports a name the whole fallback chain failed on.
type MissingAssetError struct {
	Name string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("no icon found for %q", e.Name)
}

// Translate renders the error through the localization seam.
func (e *MissingAssetError) Translate(t i18n.Translator) string {
	return t(i18n.KeyMissingAsset, map[string]any{"name": e.Name})
}

// Resolver resolves icon names against directories of .svg files.
// Aliases (from the theme) are consulted before the fallback chain.
// Safe for concurrent use; listings are cached per directory.
type Resolver struct {
	mu       sync.Mutex
	listings map[string][]string
	aliases  map[string]string
	params   *levenshtein.Params
}

// NewResolver returns a resolver with the given name aliases (may be nil).
func NewResolver(aliases map[string]string) *Resolver {
	normalized := make(map[string]string, len(aliases))
	for k, v := range aliases {
		normalized[strings.ToLower(k)] = v
	}
	return &Resolver{
		listings: make(map[string][]string),
		aliases:  normalized,
		params:   levenshtein.NewParams(),
	}
}

// Resolve returns the path of the icon file for name inside dir.
// The chain, first match wins: exact case-insensitive basename match;
// singular/plural inflection; for hyphenated names, the same two
// attempts on the suffix after the last hyphen; fuzzy similarity over
// all candidates. Total failure yields a *MissingAssetError.
func (r *Resolver) Resolve(name, dir string) (string, error) {
	files, err := r.listing(dir)
	if err != nil {
		return "", err
	}

	lookup := name
	if alias, ok := r.aliases[strings.ToLower(name)]; ok {
		lookup = alias
	}

	candidates := []string{lookup, inflection.Singular(lookup), inflection.Plural(lookup)}
	if idx := strings.LastIndexByte(lookup, '-'); idx >= 0 && idx < len(lookup)-1 {
		suffix := lookup[idx+1:]
		candidates = append(candidates, suffix, inflection.Singular(suffix), inflection.Plural(suffix))
	}
	for _, cand := range candidates {
		if file := exactMatch(files, cand); file != "" {
			return filepath.Join(dir, file), nil
		}
	}

	if file := r.fuzzyMatch(files, lookup); file != "" {
		return filepath.Join(dir, file), nil
	}
	return "", &MissingAssetError{Name: name}
}

func exactMatch(files []string, name string) string {
	for _, f := range files {
		if strings.EqualFold(baseName(f), name) {
			return f
		}
	}
	return ""
}

func (r *Resolver) fuzzyMatch(files []string, name string) string {
	lower := strings.ToLower(name)
	best := ""
	bestScore := 0.0
	for _, f := range files {
		score := levenshtein.Similarity(lower, strings.ToLower(baseName(f)), r.params)
		if score >= similarityFloor && score > bestScore {
			best, bestScore = f, score
		}
	}
	return best
}

func baseName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file))
}

// listing returns the cached .svg filenames of dir, reading the
// directory on first use only.
func (r *Resolver) listing(dir string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if files, ok := r.listings[dir]; ok {
		return files, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list icon directory %s: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".svg") {
			files = append(files, entry.Name())
		}
	}
	r.listings[dir] = files
	return files, nil
}
