package pathutils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FindModuleRoot walks from the current working directory upwards until
// it finds a go.mod file and returns the directory holding it.
func FindModuleRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get current working directory")
	}
	for dir := filepath.Clean(cwd); ; {
		goModPath := filepath.Join(dir, "go.mod")
		switch fi, err := os.Stat(goModPath); {
		case err == nil && !fi.IsDir():
			return dir, nil
		case err != nil && !os.IsNotExist(err):
			return "", errors.Wrapf(err, "failed to stat %s", goModPath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in directory tree")
		}
		dir = parent
	}
}
