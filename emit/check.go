package emit

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/teranos/wrapgen/errors"
)

// CheckResult holds the result of comparing freshly generated sources with
// the ones on disk.
type CheckResult struct {
	UpToDate bool

	// Differing lists files whose content changed
	Differing []string
	// Missing lists files that would be created
	Missing []string
	// Stale lists generated files on disk that would no longer be produced
	Stale []string
}

// CompareDirectories compares every file of generatedDir with the file of
// the same name in existingDir. Files in existingDir that start with the
// generated header but have no counterpart are reported as stale.
func CompareDirectories(generatedDir, existingDir string) (*CheckResult, error) {
	res := &CheckResult{}

	generated, err := os.ReadDir(generatedDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", generatedDir)
	}

	produced := make(map[string]bool, len(generated))
	for _, e := range generated {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		produced[name] = true

		existingPath := filepath.Join(existingDir, name)
		if _, err := os.Stat(existingPath); os.IsNotExist(err) {
			res.Missing = append(res.Missing, name)
			continue
		}

		different, err := filesAreDifferent(filepath.Join(generatedDir, name), existingPath)
		if err != nil {
			return nil, err
		}
		if different {
			res.Differing = append(res.Differing, name)
		}
	}

	existing, err := os.ReadDir(existingDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to read %s", existingDir)
	}
	for _, e := range existing {
		if e.IsDir() || produced[e.Name()] {
			continue
		}
		isGenerated, err := hasGeneratedHeader(filepath.Join(existingDir, e.Name()))
		if err != nil {
			return nil, err
		}
		if isGenerated {
			res.Stale = append(res.Stale, e.Name())
		}
	}

	sort.Strings(res.Differing)
	sort.Strings(res.Missing)
	sort.Strings(res.Stale)
	res.UpToDate = len(res.Differing) == 0 && len(res.Missing) == 0 && len(res.Stale) == 0
	return res, nil
}

func filesAreDifferent(file1, file2 string) (bool, error) {
	content1, err := os.ReadFile(file1)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file1)
	}
	content2, err := os.ReadFile(file2)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file2)
	}
	return !bytes.Equal(content1, content2), nil
}

// hasGeneratedHeader reports whether the first line of path is the
// generated-file marker.
func hasGeneratedHeader(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	return scanner.Text() == GeneratedHeader, nil
}
