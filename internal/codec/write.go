package codec

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const outputPerm = 0o644

// writeFile replaces path with data via a temporary file in the same
// directory.
func writeFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".imagecombiner-*")
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrap(err, "write temporary file")
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "sync temporary file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temporary file")
	}
	if err = os.Chmod(tmpPath, outputPerm); err != nil {
		return errors.Wrap(err, "chmod temporary file")
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "rename to %s", path)
	}
	return nil
}
