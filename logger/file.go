package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// DefaultFile is the log file name used when no path is configured.
// It is resolved against the working directory at construction time.
const DefaultFile = "log.log"

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// ErrClosed is returned by file writes after Close.
var ErrClosed = errors.New("logger: file stream closed")

// resolvePath turns path into an absolute path. Empty stays empty.
func resolvePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolve log file path %q", path)
	}
	return abs, nil
}

// prepareFile makes sure the parent directory and the file exist.
// An existing file is left untouched; a missing one is created empty.
func prepareFile(fs afero.Fs, path string) error {
	dir := filepath.Dir(path)
	dirExists, err := afero.DirExists(fs, dir)
	if err != nil {
		return errors.Wrapf(err, "stat log directory %s", dir)
	}
	if !dirExists {
		if err := fs.MkdirAll(dir, dirPerm); err != nil {
			return errors.Wrapf(err, "create log directory %s", dir)
		}
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return errors.Wrapf(err, "stat log file %s", path)
	}
	if exists {
		return nil
	}
	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create log file %s", path)
	}
	return errors.Wrapf(f.Close(), "close log file %s", path)
}

// openAppend opens an existing file for appending. It never creates the file.
func openAppend(fs afero.Fs, path string) (afero.File, error) {
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}
	return f, nil
}

// appendOnce performs a single append-open-write-close cycle.
func appendOnce(fs afero.Fs, path, line string) error {
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", path)
	}
	if _, err := io.WriteString(f, line); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "append to log file %s", path)
	}
	return errors.Wrapf(f.Close(), "close log file %s", path)
}
