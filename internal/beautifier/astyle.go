package beautifier

import (
	"strings"

	"github.com/TheLazyLemur/beautify/internal/command"
	"github.com/TheLazyLemur/beautify/internal/invocation"
	"github.com/TheLazyLemur/beautify/internal/styles"
)

// ArtisticStyle drives astyle. In pipe mode astyle drops the final newline,
// so the command asks for it to be restored.
type ArtisticStyle struct {
	styles styles.StyleStore
}

func (a *ArtisticStyle) Name() string { return "astyle" }

func (a *ArtisticStyle) Command(s Settings) (command.Command, error) {
	if err := checkStyleChoice(s); err != nil {
		return command.Command{}, err
	}

	c := command.New(executable(s, a.Name()), "-q")
	if !s.Pipe {
		c.AddOption("-n")
	}

	switch {
	case s.Style != "":
		c.AddOption("--style=" + s.Style)
	case s.CustomStyle != "":
		style, err := loadStyle(a.styles, s.CustomStyle, a.Name())
		if err != nil {
			return command.Command{}, err
		}
		addOptions(&c, astyleOptions(style.Body))
	}
	if s.Config != "" {
		c.AddOption("--options=" + s.Config)
	}
	addOptions(&c, s.Options)

	if s.Pipe {
		c.SetProcessing(command.PipeProcessing)
		c.SetPipeAddsNewline(true)
	} else {
		c.AddOption(invocation.FilePlaceholder)
	}
	return c, nil
}

// astyleOptions converts an options-file body into command line options.
// Blank lines and # comments are skipped; long options get their "--" back.
func astyleOptions(body string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, "-") {
			line = "--" + line
		}
		out = append(out, line)
	}
	return out
}
