package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/transdoc"
	"github.com/fwojciec/transdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPath(t *testing.T) {
	t.Parallel()

	t.Run("copies body into a temp file and removes it on release", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := &transdoc.Payload{Format: transdoc.FormatPDF, Body: strings.NewReader("%PDF-1.4")}

		path, release, err := fs.LocalPath(p, dir)
		require.NoError(t, err)

		assert.Equal(t, dir, filepath.Dir(path))
		assert.Equal(t, ".pdf", filepath.Ext(path))
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(b))

		release()

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err), "temp file should be removed")
		assertEmptyDir(t, dir)
	})

	t.Run("uses path payloads in place", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "doc.docx")
		require.NoError(t, os.WriteFile(src, []byte("data"), 0644))
		p := &transdoc.Payload{Format: transdoc.FormatWordProcessor, Path: src}

		path, release, err := fs.LocalPath(p, dir)
		require.NoError(t, err)
		release()

		assert.Equal(t, src, path)
		_, err = os.Stat(src)
		assert.NoError(t, err, "caller-owned file must not be removed")
	})

	t.Run("leaves nothing behind when the body fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := &transdoc.Payload{Format: transdoc.FormatPDF, Body: failingReader{}}

		_, release, err := fs.LocalPath(p, dir)

		require.Error(t, err)
		assert.Nil(t, release)
		assert.Equal(t, transdoc.EINTERNAL, transdoc.ErrorCode(err))
		assertEmptyDir(t, dir)
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		t.Parallel()

		p := &transdoc.Payload{Format: transdoc.FormatPDF, Body: strings.NewReader("x")}

		_, _, err := fs.LocalPath(p, filepath.Join(t.TempDir(), "missing"))

		require.Error(t, err)
		assert.Contains(t, transdoc.ErrorMessage(err), "temporary file")
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("upload interrupted")
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "expected %s to be empty", dir)
}
