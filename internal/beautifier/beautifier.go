// Package beautifier turns per-tool settings into command.Command values.
package beautifier

import (
	"log/slog"
	"sort"

	"github.com/pkg/errors"

	"github.com/TheLazyLemur/beautify/internal/command"
	"github.com/TheLazyLemur/beautify/internal/styles"
)

// Settings configures one beautifier tool.
type Settings struct {
	// Executable overrides the tool's default binary name.
	Executable string `yaml:"executable"`
	// Style is a style predefined by the tool, e.g. "allman" or "LLVM".
	Style string `yaml:"style"`
	// CustomStyle names a style in the style store. Mutually exclusive with Style.
	CustomStyle string `yaml:"custom_style"`
	// Config is a tool config file, used by tools that need one.
	Config string `yaml:"config"`
	// Pipe selects PipeProcessing where the tool supports both modes.
	Pipe bool `yaml:"pipe"`
	// Options are appended after the generated ones.
	Options []string `yaml:"options"`
}

// Tool builds invocations for one beautifier.
type Tool interface {
	Name() string
	Command(s Settings) (command.Command, error)
}

// Registry holds the known tools by name.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry returns a registry with every supported tool. store may be nil
// when no custom styles are in use.
func NewRegistry(store styles.StyleStore) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	r.Register(&ArtisticStyle{styles: store})
	r.Register(&ClangFormat{styles: store})
	r.Register(&Uncrustify{styles: store})
	return r
}

// Register adds t, replacing any tool with the same name.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

func (r *Registry) Lookup(name string) (Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, errors.Errorf("unknown tool %q", name)
	}
	return t, nil
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for n := range r.tools {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Command builds the invocation of the named tool.
func (r *Registry) Command(name string, s Settings) (command.Command, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return command.Command{}, err
	}
	cmd, err := t.Command(s)
	if err != nil {
		return command.Command{}, errors.Wrapf(err, "building %s command", name)
	}
	slog.Debug("built command", "tool", name, "executable", cmd.Executable(),
		"options", cmd.Options(), "processing", cmd.Processing())
	return cmd, nil
}

func executable(s Settings, fallback string) string {
	if s.Executable != "" {
		return s.Executable
	}
	return fallback
}

func checkStyleChoice(s Settings) error {
	if s.Style != "" && s.CustomStyle != "" {
		return errors.New("style and custom_style are mutually exclusive")
	}
	return nil
}

func loadStyle(store styles.StyleStore, name, tool string) (*styles.Style, error) {
	if store == nil {
		return nil, errors.Errorf("custom style %q requested but no style store configured", name)
	}
	style, err := store.Load(name)
	if err != nil {
		return nil, err
	}
	if style.Tool != tool {
		return nil, errors.Errorf("style %q is for %s, not %s", name, style.Tool, tool)
	}
	return style, nil
}

func addOptions(c *command.Command, options []string) {
	for _, o := range options {
		c.AddOption(o)
	}
}
