// Package invocation derives what a process runner needs from a command.Command.
// Nothing here spawns processes or touches the filesystem.
package invocation

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/TheLazyLemur/beautify/internal/command"
)

// FilePlaceholder is replaced by the path of the file being formatted.
const FilePlaceholder = "%file"

// Plan is the resolved argument vector and stream wiring for one run.
type Plan struct {
	Executable     string             `json:"executable" yaml:"executable"`
	Args           []string           `json:"args" yaml:"args"`
	Processing     command.Processing `json:"processing" yaml:"processing"`
	UseStdin       bool               `json:"use_stdin" yaml:"use_stdin"`
	RestoreNewline bool               `json:"restore_newline" yaml:"restore_newline"`
}

// NewPlan substitutes filePath for every FilePlaceholder in cmd's options.
// PipeAddsNewline only takes effect with PipeProcessing.
func NewPlan(cmd command.Command, filePath string) Plan {
	args := cmd.Options()
	for i, a := range args {
		args[i] = strings.ReplaceAll(a, FilePlaceholder, filePath)
	}

	pipe := cmd.Processing() == command.PipeProcessing
	return Plan{
		Executable:     cmd.Executable(),
		Args:           args,
		Processing:     cmd.Processing(),
		UseStdin:       pipe,
		RestoreNewline: pipe && cmd.PipeAddsNewline(),
	}
}

// TempFileName returns a unique path in dir for a file-processing run. ext
// may be given with or without the leading dot.
func TempFileName(dir, ext string) string {
	name := "beautify-" + uuid.NewString()
	if ext != "" {
		name += "." + strings.TrimPrefix(ext, ".")
	}
	return filepath.Join(dir, name)
}

// RestoreNewline re-adds the trailing line ending of original to formatted
// output when the plan asks for it.
func RestoreNewline(p Plan, original, formatted string) string {
	if !p.RestoreNewline || strings.HasSuffix(formatted, "\n") {
		return formatted
	}
	switch {
	case strings.HasSuffix(original, "\r\n"):
		return formatted + "\r\n"
	case strings.HasSuffix(original, "\n"):
		return formatted + "\n"
	default:
		return formatted
	}
}
