// Package fs provides file-based helpers: scoped temporary copies of
// document payloads and on-disk audio storage.
package fs

import (
	"io"
	"os"

	"github.com/fwojciec/transdoc"
)

// LocalPath returns a path on disk holding the payload bytes, and a release
// function the caller must defer. Path payloads are used in place and their
// release is a no-op. Body payloads are copied to a new file in dir (the
// system temp directory when dir is empty), and release removes it.
//
// On error no file is left behind and release is nil.
func LocalPath(p *transdoc.Payload, dir string) (path string, release func(), err error) {
	if p.Path != "" {
		return p.Path, func() {}, nil
	}

	f, err := os.CreateTemp(dir, "transdoc-*."+p.Format.Extension())
	if err != nil {
		return "", nil, transdoc.WrapError(transdoc.EINTERNAL, err, "failed to create temporary file")
	}
	path = f.Name()
	release = func() { _ = os.Remove(path) }

	if _, err := io.Copy(f, p.Body); err != nil {
		f.Close()
		release()
		return "", nil, transdoc.WrapError(transdoc.EINTERNAL, err, "failed to write temporary file")
	}
	if err := f.Close(); err != nil {
		release()
		return "", nil, transdoc.WrapError(transdoc.EINTERNAL, err, "failed to write temporary file")
	}

	return path, release, nil
}
