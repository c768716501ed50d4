package styles

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StyleMetadata is the frontmatter of a custom style.
type StyleMetadata struct {
	Name        string
	Description string
	// Tool is the beautifier the style belongs to, e.g. "clang-format".
	Tool string
	// Config names a supporting file next to STYLE.md, for tools that only
	// read their style from a config file.
	Config string
	Path   string
}

// Style is a custom style including its body.
type Style struct {
	StyleMetadata
	Body string
}

type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Tool        string `yaml:"tool"`
	Config      string `yaml:"config"`
}

var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ParseStyle parses STYLE.md content.
func ParseStyle(content, path string) (*Style, error) {
	meta, body, err := parse(content, path)
	if err != nil {
		return nil, err
	}
	return &Style{StyleMetadata: *meta, Body: body}, nil
}

// ParseMetadata parses only the frontmatter of STYLE.md content.
func ParseMetadata(content, path string) (*StyleMetadata, error) {
	meta, _, err := parse(content, path)
	return meta, err
}

func parse(content, path string) (*StyleMetadata, string, error) {
	fm, body, err := parseFrontmatter(content)
	if err != nil {
		return nil, "", err
	}
	if err := validateFrontmatter(fm); err != nil {
		return nil, "", err
	}
	return &StyleMetadata{
		Name:        fm.Name,
		Description: fm.Description,
		Tool:        fm.Tool,
		Config:      fm.Config,
		Path:        path,
	}, body, nil
}

func parseFrontmatter(content string) (*frontmatter, string, error) {
	if !strings.HasPrefix(content, "---") {
		return nil, "", errors.New("missing frontmatter: file must start with ---")
	}

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return nil, "", errors.New("invalid frontmatter: missing closing ---")
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return nil, "", errors.Wrap(err, "invalid yaml")
	}

	body := strings.TrimPrefix(parts[2], "\n")
	return &fm, body, nil
}

func validateFrontmatter(fm *frontmatter) error {
	if fm.Name == "" {
		return errors.New("missing required field: name")
	}
	if fm.Tool == "" {
		return errors.New("missing required field: tool")
	}
	if !nameRegex.MatchString(fm.Name) {
		return errors.Errorf("invalid name: must be lowercase alphanumeric with single hyphens, got %q", fm.Name)
	}
	if fm.Config != "" {
		if err := validateRelativePath(fm.Config); err != nil {
			return errors.Wrap(err, "config")
		}
	}
	return nil
}
