package content

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lixenwraith/marquee/parameter"
)

var (
	ErrNoContentFiles = errors.New("no content files discovered")
	ErrEmptyContent   = errors.New("content file has no usable lines")
)

// CommentPrefixes defines the prefixes that identify comment lines
var CommentPrefixes = []string{"//", "#"}

// Manager handles discovery and loading of content files
type Manager struct {
	dataDir      string
	separator    string
	contentFiles []string
	next         int
}

// NewManager creates a manager scanning dir; empty dir uses the default assets path
func NewManager(dir string) *Manager {
	if dir == "" {
		dir = parameter.ContentDir
	}
	return &Manager{
		dataDir:   dir,
		separator: parameter.ContentSeparator,
	}
}

// SetSeparator changes the string used to join lines of one file
func (cm *Manager) SetSeparator(sep string) {
	cm.separator = sep
}

// Discover scans the data directory for .txt files, skipping hidden files.
// A missing directory is not an error, it just yields no files.
func (cm *Manager) Discover() error {
	if _, err := os.Stat(cm.dataDir); os.IsNotExist(err) {
		log.Printf("Content directory '%s' does not exist, no content files discovered", cm.dataDir)
		cm.contentFiles = nil
		return nil
	}

	entries, err := os.ReadDir(cm.dataDir)
	if err != nil {
		return fmt.Errorf("failed to read content directory: %w", err)
	}

	cm.contentFiles = cm.contentFiles[:0]
	cm.next = 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if strings.HasPrefix(fileName, ".") {
			log.Printf("Skipping hidden file: %s", fileName)
			continue
		}

		if strings.HasSuffix(fileName, ".txt") {
			cm.contentFiles = append(cm.contentFiles, filepath.Join(cm.dataDir, fileName))
		}
	}
	sort.Strings(cm.contentFiles)

	log.Printf("Discovered %d content file(s) in %s", len(cm.contentFiles), cm.dataDir)
	return nil
}

// Files returns the discovered content files
func (cm *Manager) Files() []string {
	return cm.contentFiles
}

// Load reads a content file into a unit.
// Comment and blank lines are dropped; the rest are trimmed and joined.
func (cm *Manager) Load(path string) (*Unit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if cm.isValidContentLine(line) {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyContent)
	}

	// Trailing separator keeps consecutive copies visually apart
	text := strings.Join(lines, cm.separator) + cm.separator
	return newUnit(text, path), nil
}

// Next loads the next discovered file in rotation, skipping unusable ones
func (cm *Manager) Next() (*Unit, error) {
	if len(cm.contentFiles) == 0 {
		return nil, ErrNoContentFiles
	}

	var lastErr error
	for range cm.contentFiles {
		path := cm.contentFiles[cm.next]
		cm.next = (cm.next + 1) % len(cm.contentFiles)

		unit, err := cm.Load(path)
		if err == nil {
			return unit, nil
		}
		log.Printf("Skipping content file: %v", err)
		lastErr = err
	}
	return nil, lastErr
}

// Default returns the fallback unit used when nothing else is configured
func (cm *Manager) Default() *Unit {
	return NewUnit(parameter.DefaultContentText)
}

// isCommentLine checks if a line starts with any comment prefix
func (cm *Manager) isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// isValidContentLine checks if a line is valid content (non-empty, non-comment)
func (cm *Manager) isValidContentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) > 0 && !cm.isCommentLine(line)
}
