package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/TheLazyLemur/beautify/internal/beautifier"
	"github.com/TheLazyLemur/beautify/internal/command"
	"github.com/TheLazyLemur/beautify/internal/config"
	"github.com/TheLazyLemur/beautify/internal/invocation"
	"github.com/TheLazyLemur/beautify/internal/styles"
)

type app struct {
	cfg      *config.Config
	store    styles.StyleStore
	registry *beautifier.Registry
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	store := styles.NewFSStyleStore(cfg.StylesDir)
	a := &app{
		cfg:      cfg,
		store:    store,
		registry: beautifier.NewRegistry(store),
	}

	root := &cobra.Command{
		Use:           "beautify",
		Short:         "Show how a source code beautifier would be invoked",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(a.planCmd(), a.toolsCmd(), a.stylesCmd())
	return root
}

type planOutput struct {
	Tool            string `json:"tool" yaml:"tool"`
	File            string `json:"file" yaml:"file"`
	TempFile        string `json:"temp_file,omitempty" yaml:"temp_file,omitempty"`
	invocation.Plan `json:",inline" yaml:",inline"`
}

func (a *app) planCmd() *cobra.Command {
	var (
		tool, file, customStyle, output, tempDir string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the invocation for formatting a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tool == "" {
				tool = a.cfg.DefaultTool
			}
			if tool == "" {
				return errors.New("no tool given and no default_tool configured")
			}

			s := a.cfg.Settings(tool)
			if customStyle != "" {
				s.Style = ""
				s.CustomStyle = customStyle
			}
			c, err := a.registry.Command(tool, s)
			if err != nil {
				return err
			}

			out := planOutput{Tool: tool, File: file}
			target := file
			if c.Processing() == command.FileProcessing {
				out.TempFile = invocation.TempFileName(tempDir, filepath.Ext(file))
				target = out.TempFile
			}
			out.Plan = invocation.NewPlan(c, target)

			return writeOutput(cmd.OutOrStdout(), output, out)
		},
	}
	cmd.Flags().StringVar(&tool, "tool", "", "beautifier to use (defaults to default_tool)")
	cmd.Flags().StringVar(&file, "file", "", "file to format")
	cmd.Flags().StringVar(&customStyle, "style", "", "custom style name, overrides configured style")
	cmd.Flags().StringVar(&output, "output", "json", "output format: json or yaml")
	cmd.Flags().StringVar(&tempDir, "temp-dir", os.TempDir(), "directory for temporary files in file processing mode")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List supported beautifiers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range a.registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func (a *app) stylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List custom styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.store.List()
			if err != nil {
				return err
			}
			for _, s := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", s.Name, s.Tool, s.Description)
			}
			return nil
		},
	}
}

func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}
