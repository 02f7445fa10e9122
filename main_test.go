package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeDraft(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "post.md")
	require.NoError(t, os.WriteFile(path, []byte("Hello **there**."), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "termfolio version dev\n", out)
}

func TestEditorPreviewCommand(t *testing.T) {
	out, err := runRoot(t, "editor", "preview", writeDraft(t), "--title", "My First Post!", "--width", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "slug: my-first-post")
	assert.Contains(t, out, "My First Post!")
}

func TestEditorExportCommand(t *testing.T) {
	out, err := runRoot(t, "editor", "export", writeDraft(t),
		"--title", "Exported", "--date", "2024-03-04", "--tags", "go, cli", "-o", "-")
	require.NoError(t, err)

	var doc struct {
		Data struct {
			Title    string   `json:"title"`
			Date     string   `json:"date"`
			ReadTime string   `json:"readTime"`
			Tags     []string `json:"tags"`
		} `json:"data"`
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Exported", doc.Data.Title)
	assert.Equal(t, "2024-03-04", doc.Data.Date)
	assert.Equal(t, "5 min read", doc.Data.ReadTime)
	assert.Equal(t, []string{"go", "cli"}, doc.Data.Tags)
	assert.Equal(t, "Hello **there**.", doc.Content)
}

func TestEditorPreviewMissingFile(t *testing.T) {
	_, err := runRoot(t, "editor", "preview", filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

func TestReadPasswordLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Spaces", "correct horse battery\n", "correct horse battery"},
		{"SurroundingSpaces", "  padded secret  \n", "  padded secret  "},
		{"CRLF", "secret\r\n", "secret"},
		{"NoNewline", "secret", "secret"},
		{"OnlyFirstLine", "first line\nsecond\n", "first line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readPasswordLine(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadPasswordLineEmpty(t *testing.T) {
	_, err := readPasswordLine(strings.NewReader(""))
	assert.Error(t, err)
}
