package beautifier

import (
	"github.com/pkg/errors"

	"github.com/TheLazyLemur/beautify/internal/command"
	"github.com/TheLazyLemur/beautify/internal/invocation"
	"github.com/TheLazyLemur/beautify/internal/styles"
)

// Uncrustify drives uncrustify. It has no predefined styles and always needs
// a config file.
type Uncrustify struct {
	styles styles.StyleStore
}

func (u *Uncrustify) Name() string { return "uncrustify" }

func (u *Uncrustify) Command(s Settings) (command.Command, error) {
	if s.Style != "" {
		return command.Command{}, errors.New("uncrustify has no predefined styles, use config or custom_style")
	}

	cfg := s.Config
	if s.CustomStyle != "" {
		style, err := loadStyle(u.styles, s.CustomStyle, u.Name())
		if err != nil {
			return command.Command{}, err
		}
		if style.Config == "" {
			return command.Command{}, errors.Errorf("style %q has no config file", s.CustomStyle)
		}
		cfg, err = u.styles.ResolveSupporting(style.Name, style.Config)
		if err != nil {
			return command.Command{}, err
		}
	}
	if cfg == "" {
		return command.Command{}, errors.New("uncrustify requires a config file")
	}

	c := command.New(executable(s, u.Name()), "-q", "-c", cfg)
	addOptions(&c, s.Options)
	if s.Pipe {
		c.AddOption("--assume")
		c.AddOption(invocation.FilePlaceholder)
		c.SetProcessing(command.PipeProcessing)
	} else {
		c.AddOption("--no-backup")
		c.AddOption(invocation.FilePlaceholder)
	}
	return c, nil
}
