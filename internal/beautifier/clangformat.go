package beautifier

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/TheLazyLemur/beautify/internal/command"
	"github.com/TheLazyLemur/beautify/internal/invocation"
	"github.com/TheLazyLemur/beautify/internal/styles"
)

// ClangFormat drives clang-format, which always reads stdin.
type ClangFormat struct {
	styles styles.StyleStore
}

func (f *ClangFormat) Name() string { return "clang-format" }

func (f *ClangFormat) Command(s Settings) (command.Command, error) {
	if err := checkStyleChoice(s); err != nil {
		return command.Command{}, err
	}

	style := "file"
	switch {
	case s.Style != "":
		style = s.Style
	case s.CustomStyle != "":
		custom, err := loadStyle(f.styles, s.CustomStyle, f.Name())
		if err != nil {
			return command.Command{}, err
		}
		style, err = inlineStyle(custom.Body)
		if err != nil {
			return command.Command{}, errors.Wrapf(err, "style %q", s.CustomStyle)
		}
	}

	c := command.New(executable(s, f.Name()), "-style="+style)
	addOptions(&c, s.Options)
	c.AddOption("-assume-filename=" + invocation.FilePlaceholder)
	c.SetProcessing(command.PipeProcessing)
	return c, nil
}

// inlineStyle renders a .clang-format body as the one-line flow mapping
// accepted by -style.
func inlineStyle(body string) (string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(body), &doc); err != nil {
		return "", errors.Wrap(err, "invalid yaml")
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return "", errors.New("style body must be a YAML mapping")
	}

	root := doc.Content[0]
	setFlow(root)
	out, err := yaml.Marshal(root)
	if err != nil {
		return "", errors.Wrap(err, "encoding style")
	}
	// the emitter may wrap long flow mappings; a wrapped line break folds to one space
	return strings.TrimSpace(lineBreak.ReplaceAllString(string(out), " ")), nil
}

var lineBreak = regexp.MustCompile(`\r?\n[ \t]*`)

func setFlow(n *yaml.Node) {
	n.Style = yaml.FlowStyle
	n.HeadComment, n.LineComment, n.FootComment = "", "", ""
	for _, c := range n.Content {
		setFlow(c)
	}
}
