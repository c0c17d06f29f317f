package profilecss

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// SourceReadError is returned when a configured source cannot be resolved or read.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read source %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// ReadSources resolves patterns against fsys and reads every file, in order.
//
// Literal paths must exist. Glob patterns (doublestar syntax) must match at least
// one file; their matches are sorted, filtered through the gitignore-style
// excludes, and appended in pattern order. A file listed twice keeps its first
// position. Either every source is read or an error is returned.
func ReadSources(fsys fs.FS, patterns []string, excludes []string) ([]SourceDocument, error) {
	paths, err := ResolveSources(fsys, patterns, excludes)
	if err != nil {
		return nil, err
	}

	docs := make([]SourceDocument, 0, len(paths))
	for i, p := range paths {
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, &SourceReadError{Path: p, Err: err}
		}
		docs = append(docs, SourceDocument{Path: p, Text: string(content), Order: i})
	}

	return docs, nil
}

// ResolveSources expands patterns into the ordered, deduplicated list of files
// ReadSources would read, without reading them.
func ResolveSources(fsys fs.FS, patterns []string, excludes []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, &SourceReadError{Path: "(none)", Err: fmt.Errorf("no sources configured")}
	}

	var excluded *ignore.GitIgnore
	if len(excludes) > 0 {
		excluded = ignore.CompileIgnoreLines(excludes...)
	}

	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, pattern := range patterns {
		clean := normalizeSourcePath(pattern)
		if !fs.ValidPath(clean) {
			return nil, &SourceReadError{Path: pattern, Err: fs.ErrInvalid}
		}

		if !hasGlobMeta(clean) {
			// Literal paths are never excluded; listing one is explicit.
			add(clean)
			continue
		}

		matches, err := doublestar.Glob(fsys, clean, doublestar.WithFilesOnly())
		if err != nil {
			return nil, &SourceReadError{Path: pattern, Err: fmt.Errorf("glob pattern: %w", err)}
		}
		sort.Strings(matches)

		matched := 0
		for _, match := range matches {
			if excluded != nil && excluded.MatchesPath(match) {
				continue
			}
			add(match)
			matched++
		}
		if matched == 0 {
			return nil, &SourceReadError{Path: pattern, Err: fs.ErrNotExist}
		}
	}

	return files, nil
}

// normalizeSourcePath converts a configured path to the slash-separated,
// unrooted form io/fs expects
func normalizeSourcePath(p string) string {
	return path.Clean(filepath.ToSlash(strings.TrimSpace(p)))
}

func hasGlobMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}
