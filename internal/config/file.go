package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/TheLazyLemur/beautify/internal/beautifier"
)

// File is the YAML config file layout.
type File struct {
	StylesDir   string                         `yaml:"styles_dir"`
	LogLevel    string                         `yaml:"log_level"`
	DefaultTool string                         `yaml:"default_tool"`
	Tools       map[string]beautifier.Settings `yaml:"tools"`
}

// LoadFile parses a YAML config file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening config file")
	}
	defer r.Close()

	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return &f, nil
}

func (f *File) apply(cfg *Config) error {
	cfg.StylesDir = f.StylesDir
	cfg.DefaultTool = f.DefaultTool
	if f.LogLevel != "" {
		level, err := parseLevel(f.LogLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	for name, s := range f.Tools {
		cfg.Tools[name] = s
	}
	return nil
}
