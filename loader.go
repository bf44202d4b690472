package cardfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/etnz/cardfolio/logging"
)

// findFiles lists the files with extension 'ext' directly under 'dir', in lexical order.
// Sub folders are not visited.
func findFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(p), ext) {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

// sourceFiles returns the files of a source folder. A missing folder is not
// an error: it is logged and yields no files.
func sourceFiles(kind, dir, ext string) ([]string, error) {
	files, err := findFiles(dir, ext)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Warn().Str("dir", dir).Msgf("%s folder does not exist", kind)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not list %s folder %q: %w", kind, dir, err)
	}
	if len(files) == 0 {
		logging.Warn().Str("dir", dir).Msgf("no %s files found in %s folder", ext, kind)
	}
	return files, nil
}
