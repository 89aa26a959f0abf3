// Package scanner walks a project root and enumerates candidate Python
// source files.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/layerlint/layerlint/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	"__pycache__":  true,
	"venv":         true,
	".venv":        true,
	"node_modules": true,
	".tox":         true,
	".mypy_cache":  true,
}

// testMarker excludes test artifacts entirely: they are never classified and
// never reported.
const testMarker = "test"

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks rootPath recursively and returns the project-relative paths of
// every Python source file, in lexical order. A missing root is fatal and
// surfaces as domain.ErrPathNotFound.
func (s *FileScanner) Scan(rootPath string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPathNotFound, rootPath)
	}

	result := &domain.ScanResult{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".py") {
			return nil
		}

		relPath, err := filepath.Rel(absPath, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if strings.Contains(strings.ToLower(relPath), testMarker) {
			return nil
		}

		result.SourceFiles = append(result.SourceFiles, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", rootPath, err)
	}

	return result, nil
}
