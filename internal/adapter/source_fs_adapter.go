// Package adapter contains filesystem and persistence adapters for the
// errfold CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/errfold/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when scanning user projects. It intentionally hides
// direct `os` access so the workflow logic can be tested without touching
// the disk.
type SourceFSAdapter interface {
	// Get collects scannable source files for the provided roots,
	// skipping paths that match any of the exclude regexes.
	Get(roots []m.Path, exclude []string) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no
	// sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check
	// existence or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into
// the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// languageByExt decides which files the scanner attaches to. The engine
// itself is language-agnostic; this is purely an attach filter.
var languageByExt = map[string]m.Language{
	".js":   m.LangJavaScript,
	".jsx":  m.LangJavaScript,
	".mjs":  m.LangJavaScript,
	".ts":   m.LangTypeScript,
	".tsx":  m.LangTypeScript,
	".c":    m.LangC,
	".h":    m.LangC,
	".cc":   m.LangCPP,
	".cpp":  m.LangCPP,
	".cxx":  m.LangCPP,
	".hpp":  m.LangCPP,
	".cs":   m.LangCSharp,
	".java": m.LangJava,
	".py":   m.LangPython,
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the os
// package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects source files in supported languages for the provided roots.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, exclude []string) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := a.collect(rootPath, excludes, seen, &sources); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			return a.collect(path, excludes, seen, &sources)
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// Walk iterates over files under root, optionally descending into
// subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func (a *LocalSourceFSAdapter) collect(path string, excludes []*regexp.Regexp, seen map[string]struct{}, sources *[]m.Source) error {
	language, ok := languageByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil
	}

	for _, pattern := range excludes {
		if pattern.MatchString(path) {
			return nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if _, exists := seen[absPath]; exists {
		return nil
	}

	hash, err := a.HashFile(m.Path(absPath))
	if err != nil {
		return err
	}

	seen[absPath] = struct{}{}
	*sources = append(*sources, m.Source{
		Origin:   &m.File{Path: m.Path(absPath), Hash: hash},
		Language: language,
	})

	return nil
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, pattern)
	}

	return patterns, nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
