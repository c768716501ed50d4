package styles

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const styleFile = "STYLE.md"

// StyleStore provides access to custom styles.
type StyleStore interface {
	List() ([]StyleMetadata, error)
	Load(name string) (*Style, error)
	ResolveSupporting(name, relPath string) (string, error)
}

// FSStyleStore reads styles from <baseDir>/<name>/STYLE.md.
type FSStyleStore struct {
	baseDir string
}

func NewFSStyleStore(baseDir string) *FSStyleStore {
	return &FSStyleStore{baseDir: baseDir}
}

// List returns metadata for all valid styles. A missing base directory is
// not an error.
func (s *FSStyleStore) List() ([]StyleMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading styles dir")
	}

	var styles []StyleMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		stylePath := filepath.Join(s.baseDir, entry.Name(), styleFile)
		content, err := os.ReadFile(stylePath)
		if err != nil {
			continue
		}

		meta, err := ParseMetadata(string(content), stylePath)
		if err != nil {
			continue
		}

		styles = append(styles, *meta)
	}

	return styles, nil
}

func (s *FSStyleStore) Load(name string) (*Style, error) {
	if !nameRegex.MatchString(name) {
		return nil, errors.Errorf("invalid style name %q", name)
	}

	stylePath := filepath.Join(s.baseDir, name, styleFile)
	content, err := os.ReadFile(stylePath)
	if os.IsNotExist(err) {
		return nil, errors.Errorf("style not found: %s", name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading style")
	}

	return ParseStyle(string(content), stylePath)
}

// ResolveSupporting returns the absolute path of a file inside a style's
// directory. The file itself need not exist.
func (s *FSStyleStore) ResolveSupporting(name, relPath string) (string, error) {
	if !nameRegex.MatchString(name) {
		return "", errors.Errorf("invalid style name %q", name)
	}
	if err := validateRelativePath(relPath); err != nil {
		return "", err
	}

	styleDir := filepath.Join(s.baseDir, name)
	if _, err := os.Stat(filepath.Join(styleDir, styleFile)); os.IsNotExist(err) {
		return "", errors.Errorf("style not found: %s", name)
	}

	resolved, err := filepath.Abs(filepath.Join(styleDir, relPath))
	if err != nil {
		return "", errors.Wrap(err, "resolving path")
	}
	styleDirAbs, err := filepath.Abs(styleDir)
	if err != nil {
		return "", errors.Wrap(err, "resolving style dir")
	}
	if !strings.HasPrefix(resolved, styleDirAbs+string(filepath.Separator)) {
		return "", errors.New("invalid path: escapes style directory")
	}

	return resolved, nil
}

func validateRelativePath(p string) error {
	if filepath.IsAbs(p) {
		return errors.New("invalid path: must be relative")
	}
	for _, elem := range strings.Split(filepath.ToSlash(p), "/") {
		if elem == ".." {
			return errors.New("invalid path: cannot contain ..")
		}
	}
	return nil
}
