package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadLines reads trimmed, non-empty lines from reader. A maxLines of zero
// or less reads everything.
func ReadLines(reader io.Reader, maxLines int) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024) // 1MB buffer

	for scanner.Scan() {
		if maxLines > 0 && len(lines) >= maxLines {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("scanner error: %w", err)
	}

	return lines, nil
}

// OpenFile opens a regular file for reading
func OpenFile(path string) (*os.File, error) {
	if err := ValidateFilePath(path); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	cleanPath := filepath.Clean(path)

	// #nosec G304 - path is validated above
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	return file, nil
}

// ValidateFilePath checks that path names an existing regular file
func ValidateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return nil
}

// ReadFile reads path and runs it through the configured source
func ReadFile(path string, opts Options) (string, error) {
	file, err := OpenFile(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	return Load(file, opts)
}
