package command

import (
	"fmt"

	"github.com/pkg/errors"
)

// Processing selects how a beautifier exchanges text with the caller.
type Processing int

const (
	// FileProcessing passes a temporary file path to the tool, which rewrites it in place.
	FileProcessing Processing = iota
	// PipeProcessing feeds source on stdin and reads formatted text from stdout.
	PipeProcessing
)

func (p Processing) String() string {
	switch p {
	case FileProcessing:
		return "file"
	case PipeProcessing:
		return "pipe"
	default:
		return fmt.Sprintf("Processing(%d)", int(p))
	}
}

// MarshalText encodes the mode as "file" or "pipe".
func (p Processing) MarshalText() ([]byte, error) {
	switch p {
	case FileProcessing, PipeProcessing:
		return []byte(p.String()), nil
	default:
		return nil, errors.Errorf("unknown processing mode %d", int(p))
	}
}

func (p *Processing) UnmarshalText(text []byte) error {
	switch string(text) {
	case "file":
		*p = FileProcessing
	case "pipe":
		*p = PipeProcessing
	default:
		return errors.Errorf("unknown processing mode %q", string(text))
	}
	return nil
}

// Command describes one invocation of an external beautifier. The zero value
// is ready to use: no executable, no options, FileProcessing, and
// PipeAddsNewline false.
//
// Command has value semantics. Copies never share option storage, so
// appending to a copy leaves the original untouched. It is not safe for
// concurrent mutation.
type Command struct {
	executable      string
	options         []string
	processing      Processing
	pipeAddsNewline bool
}

// New returns a Command for executable with the given options appended in order.
func New(executable string, options ...string) Command {
	var c Command
	c.SetExecutable(executable)
	for _, o := range options {
		c.AddOption(o)
	}
	return c
}

func (c Command) Executable() string {
	return c.executable
}

func (c *Command) SetExecutable(executable string) {
	c.executable = executable
}

// Options returns a copy of the options in invocation order.
func (c Command) Options() []string {
	out := make([]string, len(c.options))
	copy(out, c.options)
	return out
}

// AddOption appends option to the argument list.
func (c *Command) AddOption(option string) {
	// cap at len so a copied Command never appends into shared backing storage
	c.options = append(c.options[:len(c.options):len(c.options)], option)
}

func (c Command) Processing() Processing {
	return c.processing
}

func (c *Command) SetProcessing(processing Processing) {
	c.processing = processing
}

// PipeAddsNewline reports whether piped output lacks the trailing newline of
// the original text. Only meaningful with PipeProcessing.
func (c Command) PipeAddsNewline() bool {
	return c.pipeAddsNewline
}

func (c *Command) SetPipeAddsNewline(pipeAddsNewline bool) {
	c.pipeAddsNewline = pipeAddsNewline
}

// Clone returns an independent copy of c.
func (c Command) Clone() Command {
	c.options = c.Options()
	return c
}
