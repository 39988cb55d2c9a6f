// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mt2hugo/pkg/types"
)

func testPost(year, month, basename, doc string) types.Post {
	return types.Post{
		Year:     year,
		Month:    month,
		Basename: basename,
		RelPath:  year + "/" + month + "/posts/" + basename + ".md",
		Document: doc,
		Redirect: types.RedirectRule{
			Pattern: "/blog/tech/" + year + "/" + month + "/" + basename + `\.html`,
			Target:  "https://example.com/tech/" + year + "/" + month + "/posts/" + basename + "/",
		},
	}
}

func TestWritePost(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "content", "tech")
	w := NewWriter(root, filepath.Join(tmpDir, "nginx_redirects.conf"))

	path, err := w.WritePost(testPost("2010", "01", "hello", "---\n---\n\nbody"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "2010", "01", "posts", "hello.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "---\n---\n\nbody", string(data))
	assert.Len(t, w.Rules(), 1)
}

func TestWritePost_Overwrites(t *testing.T) {
	tmpDir := t.TempDir()
	w := NewWriter(tmpDir, filepath.Join(tmpDir, "r.conf"))

	_, err := w.WritePost(testPost("2010", "01", "hello", "first version that is longer"))
	require.NoError(t, err)
	path, err := w.WritePost(testPost("2010", "01", "hello", "second"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWritePost_Unwritable(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	w := NewWriter(blocker, filepath.Join(tmpDir, "r.conf"))
	_, err := w.WritePost(testPost("2010", "01", "hello", "doc"))
	assert.Error(t, err)
	assert.Empty(t, w.Rules())
}

func TestFlush(t *testing.T) {
	tmpDir := t.TempDir()
	redirects := filepath.Join(tmpDir, "nginx_redirects.conf")
	require.NoError(t, os.WriteFile(redirects, []byte("stale content\nstale\nstale\n"), 0o644))

	w := NewWriter(filepath.Join(tmpDir, "content"), redirects)
	for _, p := range []types.Post{
		testPost("2010", "01", "a", "a"),
		testPost("2011", "12", "b", "b"),
	} {
		_, err := w.WritePost(p)
		require.NoError(t, err)
	}
	require.NoError(t, w.Flush())

	data, err := os.ReadFile(redirects)
	require.NoError(t, err)
	want := `rewrite ^/blog/tech/2010/01/a\.html$ https://example.com/tech/2010/01/posts/a/ permanent;` + "\n" +
		`rewrite ^/blog/tech/2011/12/b\.html$ https://example.com/tech/2011/12/posts/b/ permanent;` + "\n"
	assert.Equal(t, want, string(data))
}

func TestFlush_NoRules(t *testing.T) {
	tmpDir := t.TempDir()
	redirects := filepath.Join(tmpDir, "nested", "r.conf")

	w := NewWriter(tmpDir, redirects)
	require.NoError(t, w.Flush())

	data, err := os.ReadFile(redirects)
	require.NoError(t, err)
	assert.Equal(t, "\n", string(data))
}

func TestRules_ReturnsCopy(t *testing.T) {
	tmpDir := t.TempDir()
	w := NewWriter(tmpDir, filepath.Join(tmpDir, "r.conf"))
	_, err := w.WritePost(testPost("2010", "01", "a", "a"))
	require.NoError(t, err)

	rules := w.Rules()
	rules[0].Target = "changed"
	assert.True(t, strings.HasPrefix(w.Rules()[0].Target, "https://"))
}
