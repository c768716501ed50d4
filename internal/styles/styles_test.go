package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	t.Run("clang-format style", func(t *testing.T) {
		content := `---
name: qt-like
description: Close to the Qt coding style.
tool: clang-format
---
BasedOnStyle: WebKit
IndentWidth: 4
`
		style, err := ParseStyle(content, "/styles/qt-like/STYLE.md")

		require.NoError(t, err)
		assert.Equal(t, "qt-like", style.Name)
		assert.Equal(t, "Close to the Qt coding style.", style.Description)
		assert.Equal(t, "clang-format", style.Tool)
		assert.Empty(t, style.Config)
		assert.Equal(t, "/styles/qt-like/STYLE.md", style.Path)
		assert.Equal(t, "BasedOnStyle: WebKit\nIndentWidth: 4\n", style.Body)
	})

	t.Run("description is optional", func(t *testing.T) {
		content := "---\nname: mini\ntool: astyle\n---\n--style=allman\n"
		style, err := ParseStyle(content, "STYLE.md")

		require.NoError(t, err)
		assert.Empty(t, style.Description)
		assert.Equal(t, "--style=allman\n", style.Body)
	})

	t.Run("config file", func(t *testing.T) {
		content := "---\nname: gnu\ntool: uncrustify\nconfig: gnu.cfg\n---\n"
		meta, err := ParseMetadata(content, "STYLE.md")

		require.NoError(t, err)
		assert.Equal(t, "gnu.cfg", meta.Config)
	})

	t.Run("config name with double dots", func(t *testing.T) {
		content := "---\nname: gnu\ntool: uncrustify\nconfig: gnu..v2.cfg\n---\n"
		meta, err := ParseMetadata(content, "STYLE.md")

		require.NoError(t, err)
		assert.Equal(t, "gnu..v2.cfg", meta.Config)
	})

	errorCases := []struct {
		name    string
		content string
		want    string
	}{
		{"missing name", "---\ntool: astyle\n---\n", "name"},
		{"missing tool", "---\nname: x\n---\n", "tool"},
		{"no frontmatter", "BasedOnStyle: LLVM", "missing frontmatter"},
		{"unclosed frontmatter", "---\nname: x\n", "missing closing"},
		{"bad yaml", "---\nname: [x\n---\n", "invalid yaml"},
		{"bad name", "---\nname: Bad_Name\ntool: astyle\n---\n", "invalid name"},
		{"escaping config", "---\nname: x\ntool: uncrustify\nconfig: ../x.cfg\n---\n", "cannot contain .."},
		{"absolute config", "---\nname: x\ntool: uncrustify\nconfig: /etc/x.cfg\n---\n", "must be relative"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStyle(tt.content, "STYLE.md")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
