package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_ReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestResolveResumePath(t *testing.T) {
	dir := t.TempDir()

	path, name := ResolveResumePath(dir, "My Resume.PDF")
	assert.Equal(t, "My Resume.PDF", name)
	assert.Equal(t, filepath.Join(dir, "My Resume.PDF"), path)

	// No extension gets one appended.
	_, name = ResolveResumePath(dir, "resume")
	assert.Equal(t, "resume.pdf", name)

	// Path components are stripped.
	_, name = ResolveResumePath(dir, "../../etc/resume.pdf")
	assert.Equal(t, "resume.pdf", name)
}

func TestResolveResumePath_CollisionGetsPrefix(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.pdf"), []byte("x"), 0644))

	path, name := ResolveResumePath(dir, "resume.pdf")
	assert.True(t, strings.HasSuffix(name, "_resume.pdf"), "got %s", name)
	assert.Len(t, name, len("resume.pdf")+9) // 8-char prefix plus underscore
	assert.Equal(t, filepath.Join(dir, name), path)
}
