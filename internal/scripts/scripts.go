package scripts

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

//go:embed corpus
var corpusFS embed.FS

// ErrModuleNotFound indicates that no interview script exists for the
// requested module slug. This is a configuration problem, not bad input:
// the corpus ships with the binary (or is mounted via SCRIPTS_DIR).
var ErrModuleNotFound = fmt.Errorf("interview script not found")

var slugPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Store resolves interview scripts either from the embedded corpus or,
// when dir is non-empty, from an on-disk directory laid out the same way
// (one <slug>/main.go per module).
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// List returns the slugs of all available modules, sorted.
func (s *Store) List() ([]string, error) {
	var slugs []string

	if s.dir != "" {
		entries, err := os.ReadDir(s.dir)
		if err != nil {
			return nil, fmt.Errorf("read scripts directory %s: %w", s.dir, err)
		}
		for _, e := range entries {
			if e.IsDir() && slugPattern.MatchString(e.Name()) {
				slugs = append(slugs, e.Name())
			}
		}
	} else {
		entries, err := corpusFS.ReadDir("corpus")
		if err != nil {
			return nil, fmt.Errorf("read embedded corpus: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				slugs = append(slugs, e.Name())
			}
		}
	}

	sort.Strings(slugs)
	return slugs, nil
}

// Source returns the script source for a module, or ErrModuleNotFound.
func (s *Store) Source(slug string) ([]byte, error) {
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, slug)
	}

	if s.dir != "" {
		data, err := os.ReadFile(filepath.Join(s.dir, slug, "main.go"))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, slug)
			}
			return nil, fmt.Errorf("read script for %s: %w", slug, err)
		}
		return data, nil
	}

	data, err := corpusFS.ReadFile("corpus/" + slug + "/main.go")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, slug)
	}
	return data, nil
}
