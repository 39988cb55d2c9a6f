// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mt2hugo/internal/mtexport"
)

const cliExport = `TITLE: Hello, World!
DATE: 01/15/2010 03:30:00 PM
CATEGORY: Misc
-----
BODY:
<p>Hi.</p>
-----
--------
TITLE: Later
BASENAME: later
DATE: 2012-06-30 23:59:59
STATUS: Draft
--------
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_WrongArgCountPrintsUsage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"export.txt"},
		{"export.txt", "tech"},
		{"export.txt", "tech", "out", "extra"},
	} {
		out, err := execute(t, args...)
		require.NoError(t, err, "args %v", args)
		assert.Equal(t, usage+"\n", out, "args %v", args)
	}
}

func TestRoot_Migrate(t *testing.T) {
	tmpDir := t.TempDir()
	exportPath := filepath.Join(tmpDir, "export.txt")
	require.NoError(t, os.WriteFile(exportPath, []byte(cliExport), 0o644))
	contentDir := filepath.Join(tmpDir, "content")
	redirects := filepath.Join(tmpDir, "nginx_redirects.conf")

	out, err := execute(t, exportPath, "tech", "unused",
		"--content-dir", contentDir,
		"--redirect-file", redirects)
	require.NoError(t, err)
	assert.Contains(t, out, "Done. Markdown files written to '"+filepath.Join(contentDir, "tech")+"'")

	for _, rel := range []string{
		"tech/2010/01/posts/hello-world-.md",
		"tech/2012/06/posts/later.md",
	} {
		_, err := os.Stat(filepath.Join(contentDir, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}

	data, err := os.ReadFile(redirects)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), `^/blog/tech/2012/06/later\.html$`)
}

func TestRoot_MigrateBadDate(t *testing.T) {
	tmpDir := t.TempDir()
	exportPath := filepath.Join(tmpDir, "export.txt")
	require.NoError(t, os.WriteFile(exportPath, []byte("TITLE: X\nDATE: soon\n"), 0o644))

	out, err := execute(t, exportPath, "tech", "unused",
		"--content-dir", filepath.Join(tmpDir, "content"),
		"--redirect-file", filepath.Join(tmpDir, "r.conf"))
	assert.Error(t, err)
	assert.Contains(t, out, "0 of 1 entries written before failure (1 not converted)")
}

func TestWriteInspect(t *testing.T) {
	entries := mtexport.ParseString(cliExport)

	var out bytes.Buffer
	require.NoError(t, writeInspect(&out, entries))
	assert.True(t, strings.HasSuffix(out.String(), "# 2 entries\n"))

	var decoded []inspectEntry
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "Hello, World!", decoded[0].Title)
	assert.Equal(t, "hello-world-", decoded[0].Basename)
	assert.Equal(t, []string{"Misc"}, decoded[0].Categories)
	assert.Equal(t, []inspectBody{{Name: "BODY", Lines: 1, Bytes: len("<p>Hi.</p>")}}, decoded[0].Bodies)

	assert.Equal(t, "later", decoded[1].Basename)
	assert.Equal(t, "Draft", decoded[1].Status)
	assert.Empty(t, decoded[1].Bodies)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mt2hugo dev\n", out)
}

func TestVersion_RejectsArgs(t *testing.T) {
	_, err := execute(t, "version", "tech", "out")
	assert.Error(t, err)
}
