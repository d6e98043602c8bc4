package storage

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// LineFile reads and writes whole files as lines.
type LineFile interface {
	ReadAllLines(path string) ([]string, error)
	WriteAllLines(path string, lines []string) error
}

// Disk is a LineFile backed by the local filesystem.
type Disk struct{}

func (Disk) ReadAllLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (Disk) WriteAllLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
