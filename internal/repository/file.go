package repository

import (
	"os"
	"path/filepath"
)

const filePerm = 0o600

// writeFile replaces the content of path. With atomic set the data goes to a
// temporary file in the same directory which is then renamed over path.
// os.CreateTemp already creates it with mode 0600.
func writeFile(path string, data []byte, atomic bool) error {
	if !atomic {
		return os.WriteFile(path, data, filePerm)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
